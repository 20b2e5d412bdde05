package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techpulse/techpulse/pkg/domain"
	"github.com/techpulse/techpulse/pkg/notify"
	"github.com/techpulse/techpulse/server/mocks"
)

func testServer(t *testing.T, store Store, chat Chat, scheduler Scheduler) (*Server, *httptest.Server) {
	t.Helper()
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
	}

	srv := New(cfg, store, chat, scheduler, notify.NewNotifier(4), "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return srv, ts
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec // test URL
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func doJSON(t *testing.T, method, url, user string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestServer_Status(t *testing.T) {
	_, ts := testServer(t, &mocks.StoreMock{}, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	var status map[string]interface{}
	code := getJSON(t, ts.URL+"/api/v1/status", &status)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_ListArticles(t *testing.T) {
	store := &mocks.StoreMock{
		ListArticlesFunc: func(_ context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
			return []*domain.Article{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}, nil
		},
	}
	_, ts := testServer(t, store, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	var resp struct {
		Articles []domain.Article `json:"articles"`
	}
	code := getJSON(t, ts.URL+"/api/v1/articles?category=ai_ml&timeRange=week&page=2&limit=10", &resp)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Articles, 2)

	require.Len(t, store.ListArticlesCalls(), 1)
	filter := store.ListArticlesCalls()[0].Filter
	assert.Equal(t, domain.CategoryAIML, filter.Category)
	assert.Equal(t, domain.RangeWeek, filter.TimeRange)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 10, filter.Limit)
}

func TestServer_GetArticle(t *testing.T) {
	store := &mocks.StoreMock{
		GetArticleFunc: func(_ context.Context, id int64) (*domain.Article, error) {
			if id == 404 {
				return nil, domain.ErrNotFound
			}
			return &domain.Article{ID: id, Title: "story", ViewCount: 5}, nil
		},
		IncrementViewCountFunc: func(_ context.Context, _ int64) error { return nil },
	}
	_, ts := testServer(t, store, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	t.Run("found, views bumped", func(t *testing.T) {
		var article domain.Article
		code := getJSON(t, ts.URL+"/api/v1/articles/7", &article)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, int64(7), article.ID)
		assert.Equal(t, int64(6), article.ViewCount, "response reflects the bump")
		require.Len(t, store.IncrementViewCountCalls(), 1)
	})

	t.Run("missing", func(t *testing.T) {
		code := getJSON(t, ts.URL+"/api/v1/articles/404", nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("bad id", func(t *testing.T) {
		code := getJSON(t, ts.URL+"/api/v1/articles/abc", nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestServer_Search(t *testing.T) {
	store := &mocks.StoreMock{
		ListArticlesFunc: func(_ context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
			assert.Equal(t, "quantum", filter.Search)
			return []*domain.Article{{ID: 3}}, nil
		},
	}
	_, ts := testServer(t, store, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	code := getJSON(t, ts.URL+"/api/v1/search?q=quantum", nil)
	assert.Equal(t, http.StatusOK, code)

	code = getJSON(t, ts.URL+"/api/v1/search", nil)
	assert.Equal(t, http.StatusBadRequest, code, "missing query")
}

func TestServer_Bookmarks(t *testing.T) {
	store := &mocks.StoreMock{
		CreateBookmarkFunc: func(_ context.Context, userID string, articleID int64) error {
			switch articleID {
			case 409:
				return domain.ErrDuplicateBookmark
			case 404:
				return domain.ErrNotFound
			}
			return nil
		},
		DeleteBookmarkFunc: func(_ context.Context, _ string, articleID int64) error {
			if articleID == 404 {
				return domain.ErrNotFound
			}
			return nil
		},
		ListBookmarksFunc: func(_ context.Context, userID string) ([]*domain.Article, error) {
			return []*domain.Article{{ID: 1}}, nil
		},
	}
	_, ts := testServer(t, store, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	t.Run("create", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/bookmarks/1", "u1", nil, nil)
		assert.Equal(t, http.StatusCreated, code)
		require.Len(t, store.CreateBookmarkCalls(), 1)
		assert.Equal(t, "u1", store.CreateBookmarkCalls()[0].UserID)
	})

	t.Run("duplicate conflicts", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/bookmarks/409", "u1", nil, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("missing article", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/bookmarks/404", "u1", nil, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("anonymous default identity", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/bookmarks/2", "", nil, nil)
		assert.Equal(t, http.StatusCreated, code)
		calls := store.CreateBookmarkCalls()
		assert.Equal(t, "anonymous", calls[len(calls)-1].UserID)
	})

	t.Run("delete", func(t *testing.T) {
		code := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/bookmarks/1", "u1", nil, nil)
		assert.Equal(t, http.StatusOK, code)

		code = doJSON(t, http.MethodDelete, ts.URL+"/api/v1/bookmarks/404", "u1", nil, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("list", func(t *testing.T) {
		code := doJSON(t, http.MethodGet, ts.URL+"/api/v1/bookmarks", "u1", nil, nil)
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestServer_ChatMessage(t *testing.T) {
	chat := &mocks.ChatMock{
		SendMessageFunc: func(_ context.Context, userID string, articleID int64, text string) (*domain.ConversationEntry, error) {
			switch articleID {
			case 404:
				return nil, domain.ErrNotFound
			case 504:
				return nil, &domain.AIError{Kind: domain.AIErrTimeout, Err: errors.New("deadline")}
			case 502:
				return nil, &domain.AIError{Kind: domain.AIErrRejected, Err: errors.New("quota")}
			}
			return &domain.ConversationEntry{Role: domain.RoleAssistant, Message: "reply to " + text}, nil
		},
	}
	_, ts := testServer(t, &mocks.StoreMock{}, chat, &mocks.SchedulerMock{})

	t.Run("ok", func(t *testing.T) {
		var entry domain.ConversationEntry
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/message", "u1",
			map[string]interface{}{"article_id": 1, "message": "hi"}, &entry)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "reply to hi", entry.Message)
	})

	t.Run("empty message", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/message", "u1",
			map[string]interface{}{"article_id": 1, "message": ""}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("missing article", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/message", "u1",
			map[string]interface{}{"article_id": 404, "message": "hi"}, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("ai timeout maps to 504", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/message", "u1",
			map[string]interface{}{"article_id": 504, "message": "hi"}, nil)
		assert.Equal(t, http.StatusGatewayTimeout, code)
	})

	t.Run("ai rejection maps to 502", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/message", "u1",
			map[string]interface{}{"article_id": 502, "message": "hi"}, nil)
		assert.Equal(t, http.StatusBadGateway, code)
	})
}

func TestServer_ChatSummarize(t *testing.T) {
	chat := &mocks.ChatMock{
		SummarizeFunc: func(_ context.Context, _ string, _ int64, mode domain.SummaryMode) (*domain.ConversationEntry, error) {
			return &domain.ConversationEntry{Role: domain.RoleAssistant, Message: "summary", Summary: true}, nil
		},
	}
	_, ts := testServer(t, &mocks.StoreMock{}, chat, &mocks.SchedulerMock{})

	code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/summarize", "u1",
		map[string]interface{}{"article_id": 1, "mode": "short"}, nil)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, chat.SummarizeCalls(), 1)
	assert.Equal(t, domain.SummaryShort, chat.SummarizeCalls()[0].Mode)

	t.Run("default mode is medium", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/summarize", "u1",
			map[string]interface{}{"article_id": 1}, nil)
		assert.Equal(t, http.StatusOK, code)
		calls := chat.SummarizeCalls()
		assert.Equal(t, domain.SummaryMedium, calls[len(calls)-1].Mode)
	})

	t.Run("invalid mode", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/summarize", "u1",
			map[string]interface{}{"article_id": 1, "mode": "gigantic"}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestServer_ChatCompareAndHistory(t *testing.T) {
	chat := &mocks.ChatMock{
		CompareFunc: func(_ context.Context, _ string, ids []int64) (string, error) {
			return fmt.Sprintf("compared %d articles", len(ids)), nil
		},
		HistoryFunc: func(_ context.Context, _ string, articleID int64) ([]*domain.ConversationEntry, error) {
			if articleID == 404 {
				return nil, domain.ErrNotFound
			}
			return nil, nil
		},
	}
	_, ts := testServer(t, &mocks.StoreMock{}, chat, &mocks.SchedulerMock{})

	t.Run("compare", func(t *testing.T) {
		var resp map[string]string
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/compare", "u1",
			map[string]interface{}{"article_ids": []int64{1, 2, 3}}, &resp)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "compared 3 articles", resp["comparison"])
	})

	t.Run("compare needs two", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/v1/chat/compare", "u1",
			map[string]interface{}{"article_ids": []int64{1}}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("empty history is an empty list", func(t *testing.T) {
		var resp struct {
			Messages []domain.ConversationEntry `json:"messages"`
		}
		code := doJSON(t, http.MethodGet, ts.URL+"/api/v1/chat/1/history", "u1", nil, &resp)
		assert.Equal(t, http.StatusOK, code)
		assert.NotNil(t, resp.Messages)
		assert.Empty(t, resp.Messages)
	})

	t.Run("history for missing article", func(t *testing.T) {
		code := doJSON(t, http.MethodGet, ts.URL+"/api/v1/chat/404/history", "u1", nil, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestServer_Trending(t *testing.T) {
	store := &mocks.StoreMock{
		ListTopicsFunc: func(_ context.Context, window domain.Window) ([]*domain.TrendingTopic, error) {
			return []*domain.TrendingTopic{{Topic: "llm", Count: 12, Window: window}}, nil
		},
	}
	_, ts := testServer(t, store, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	var resp struct {
		Range  string                 `json:"range"`
		Topics []domain.TrendingTopic `json:"topics"`
	}
	code := getJSON(t, ts.URL+"/api/v1/trending?range=week", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "week", resp.Range)
	require.Len(t, resp.Topics, 1)

	t.Run("default range is today", func(t *testing.T) {
		code := getJSON(t, ts.URL+"/api/v1/trending", nil)
		assert.Equal(t, http.StatusOK, code)
		calls := store.ListTopicsCalls()
		assert.Equal(t, domain.WindowToday, calls[len(calls)-1].Window)
	})

	t.Run("invalid range", func(t *testing.T) {
		code := getJSON(t, ts.URL+"/api/v1/trending?range=year", nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestServer_SourcesAndRefresh(t *testing.T) {
	store := &mocks.StoreMock{
		ListSourcesFunc: func(_ context.Context, activeOnly bool) ([]*domain.Source, error) {
			assert.True(t, activeOnly)
			return []*domain.Source{{ID: 1, Name: "wire"}}, nil
		},
	}
	scheduler := &mocks.SchedulerMock{
		RefreshNowFunc: func(_ context.Context) (int, error) { return 3, nil },
	}
	_, ts := testServer(t, store, &mocks.ChatMock{}, scheduler)

	code := getJSON(t, ts.URL+"/api/v1/sources", nil)
	assert.Equal(t, http.StatusOK, code)

	var resp map[string]interface{}
	code = doJSON(t, http.MethodPost, ts.URL+"/api/v1/refresh", "", nil, &resp)
	assert.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, true, resp["refreshing"])

	// cycles run detached from the request, the 202 may beat the call
	require.Eventually(t, func() bool {
		return len(scheduler.RefreshNowCalls()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestServer_RefreshSurvivesDisconnect(t *testing.T) {
	refreshCtx := make(chan context.Context, 1)
	scheduler := &mocks.SchedulerMock{
		RefreshNowFunc: func(ctx context.Context) (int, error) {
			refreshCtx <- ctx
			return 1, nil
		},
	}
	_, ts := testServer(t, &mocks.StoreMock{}, &mocks.ChatMock{}, scheduler)

	reqCtx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, ts.URL+"/api/v1/refresh", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	cancel() // client goes away right after the ack

	select {
	case ctx := <-refreshCtx:
		assert.NoError(t, ctx.Err(), "refresh context must not be canceled with the request")
	case <-time.After(time.Second):
		t.Fatal("refresh never started")
	}
}

func TestServer_Events(t *testing.T) {
	srv, ts := testServer(t, &mocks.StoreMock{}, &mocks.ChatMock{}, &mocks.SchedulerMock{})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/events", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// wait until the handler registered its subscription, then publish
	require.Eventually(t, func() bool {
		return srv.notifier.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)
	srv.notifier.(*notify.Notifier).Publish(domain.Event{Type: domain.EventNewArticle, Payload: "a1"})

	reader := bufio.NewReader(resp.Body)
	var eventLine, dataLine string
	deadline := time.After(2 * time.Second)
	lines := make(chan string, 4)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			lines <- strings.TrimRight(line, "\n")
		}
	}()
	for eventLine == "" || dataLine == "" {
		select {
		case line := <-lines:
			if strings.HasPrefix(line, "event: ") {
				eventLine = line
			}
			if strings.HasPrefix(line, "data: ") {
				dataLine = line
			}
		case <-deadline:
			t.Fatal("no SSE event received")
		}
	}

	assert.Equal(t, "event: new-article", eventLine)
	var event domain.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(dataLine, "data: ")), &event))
	assert.Equal(t, domain.EventNewArticle, event.Type)
	assert.Equal(t, "a1", event.Payload)
}
