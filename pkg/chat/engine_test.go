package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techpulse/techpulse/pkg/ai"
	"github.com/techpulse/techpulse/pkg/chat/mocks"
	"github.com/techpulse/techpulse/pkg/domain"
)

// memStore is an in-memory HistoryStore with the same append-only ordering
// semantics as the real repository
type memStore struct {
	mu      sync.Mutex
	entries []*domain.ConversationEntry
	nextID  int64
}

func (s *memStore) Append(_ context.Context, entry *domain.ConversationEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	entry.ID = s.nextID
	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

func (s *memStore) History(_ context.Context, userID string, articleID int64) ([]*domain.ConversationEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.ConversationEntry
	for _, e := range s.entries {
		if e.UserID == userID && e.ArticleID == articleID {
			out = append(out, e)
		}
	}
	return out, nil
}

func testArticles(t *testing.T) *mocks.ArticleGetterMock {
	t.Helper()
	return &mocks.ArticleGetterMock{
		GetArticleFunc: func(_ context.Context, id int64) (*domain.Article, error) {
			if id == 404 {
				return nil, domain.ErrNotFound
			}
			return &domain.Article{
				ID:      id,
				Title:   fmt.Sprintf("Article %d", id),
				Content: fmt.Sprintf("content of article %d", id),
			}, nil
		},
	}
}

func TestEngine_SendMessage(t *testing.T) {
	store := &memStore{}
	completer := &mocks.CompleterMock{
		CompleteFunc: func(_ context.Context, _ string, messages []ai.Message) (string, error) {
			return fmt.Sprintf("reply to %q", messages[len(messages)-1].Content), nil
		},
	}
	engine := NewEngine(completer, testArticles(t), store)
	ctx := context.Background()

	reply, err := engine.SendMessage(ctx, "u1", 1, "what happened?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, reply.Role)
	assert.Equal(t, `reply to "what happened?"`, reply.Message)

	history, err := engine.History(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "what happened?", history[0].Message)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)

	// second message carries the prior transcript to the AI
	_, err = engine.SendMessage(ctx, "u1", 1, "and then?")
	require.NoError(t, err)

	calls := completer.CompleteCalls()
	require.Len(t, calls, 2)
	assert.Len(t, calls[1].Messages, 3, "prior two entries plus new message")
	assert.Contains(t, calls[1].SystemPrompt, "Article 1")
	assert.Contains(t, calls[1].SystemPrompt, "content of article 1")
}

func TestEngine_SendMessageAIFailure(t *testing.T) {
	store := &memStore{}
	completer := &mocks.CompleterMock{
		CompleteFunc: func(_ context.Context, _ string, _ []ai.Message) (string, error) {
			return "", &domain.AIError{Kind: domain.AIErrTimeout, Err: context.DeadlineExceeded}
		},
	}
	engine := NewEngine(completer, testArticles(t), store)
	ctx := context.Background()

	_, err := engine.SendMessage(ctx, "u1", 1, "hello?")
	var aiErr *domain.AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, domain.AIErrTimeout, aiErr.Kind)

	// the user entry survives, no assistant entry is written
	history, err := engine.History(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "hello?", history[0].Message)
}

func TestEngine_SendMessageMissingArticle(t *testing.T) {
	engine := NewEngine(&mocks.CompleterMock{}, testArticles(t), &memStore{})

	_, err := engine.SendMessage(context.Background(), "u1", 404, "hi")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = engine.History(context.Background(), "u1", 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_ConversationsAreIsolated(t *testing.T) {
	store := &memStore{}
	completer := &mocks.CompleterMock{
		CompleteFunc: func(_ context.Context, _ string, _ []ai.Message) (string, error) {
			return "ok", nil
		},
	}
	engine := NewEngine(completer, testArticles(t), store)
	ctx := context.Background()

	_, err := engine.SendMessage(ctx, "u1", 1, "first")
	require.NoError(t, err)
	_, err = engine.SendMessage(ctx, "u2", 1, "second")
	require.NoError(t, err)
	_, err = engine.SendMessage(ctx, "u1", 2, "third")
	require.NoError(t, err)

	history, err := engine.History(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Message)
}

func TestEngine_ConcurrentSendsOnOnePair(t *testing.T) {
	store := &memStore{}
	completer := &mocks.CompleterMock{
		CompleteFunc: func(_ context.Context, _ string, messages []ai.Message) (string, error) {
			return "reply", nil
		},
	}
	engine := NewEngine(completer, testArticles(t), store)
	ctx := context.Background()

	const senders = 10
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := engine.SendMessage(ctx, "u1", 1, fmt.Sprintf("msg %d", n))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history, err := engine.History(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, history, 2*senders)

	// serialized sends mean every user message is directly followed by its reply
	for i := 0; i < len(history); i += 2 {
		assert.Equal(t, domain.RoleUser, history[i].Role)
		assert.Equal(t, domain.RoleAssistant, history[i+1].Role)
	}
}

func TestEngine_Summarize(t *testing.T) {
	store := &memStore{}
	completer := &mocks.CompleterMock{
		CompleteFunc: func(_ context.Context, _ string, messages []ai.Message) (string, error) {
			return "a summary", nil
		},
	}
	engine := NewEngine(completer, testArticles(t), store)
	ctx := context.Background()

	entry, err := engine.Summarize(ctx, "u1", 1, domain.SummaryShort)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, entry.Role)
	assert.True(t, entry.Summary)
	assert.Equal(t, "a summary", entry.Message)

	calls := completer.CompleteCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[0].Content, "2-3 sentences")

	t.Run("mode selects prompt", func(t *testing.T) {
		_, err := engine.Summarize(ctx, "u1", 1, domain.SummaryLong)
		require.NoError(t, err)
		calls := completer.CompleteCalls()
		assert.Contains(t, calls[len(calls)-1].Messages[0].Content, "detailed summary")
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := engine.Summarize(ctx, "u1", 1, domain.SummaryMode("gigantic"))
		assert.Error(t, err)
	})
}

func TestEngine_Compare(t *testing.T) {
	store := &memStore{}
	completer := &mocks.CompleterMock{
		CompleteFunc: func(_ context.Context, _ string, messages []ai.Message) (string, error) {
			return "comparison result", nil
		},
	}
	engine := NewEngine(completer, testArticles(t), store)
	ctx := context.Background()

	result, err := engine.Compare(ctx, "u1", []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "comparison result", result)

	calls := completer.CompleteCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[0].Content, "Article 1")
	assert.Contains(t, calls[0].Messages[0].Content, "Article 2")

	// comparisons never touch stored transcripts
	history, err := engine.History(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Empty(t, history)

	t.Run("needs two articles", func(t *testing.T) {
		_, err := engine.Compare(ctx, "u1", []int64{1})
		assert.Error(t, err)
	})

	t.Run("missing article", func(t *testing.T) {
		_, err := engine.Compare(ctx, "u1", []int64{1, 404})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
