package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/techpulse/techpulse/pkg/domain"
)

// anonymousUser is used when the caller sends no identity header. Auth is
// expected to happen upstream; the header is trusted as-is.
const anonymousUser = "anonymous"

func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return anonymousUser
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":      "ok",
		"version":     s.version,
		"time":        time.Now().UTC(),
		"subscribers": s.notifier.SubscriberCount(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listArticlesHandler returns articles filtered by category, time range and
// search query, newest first
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ArticleFilter{
		Category:  domain.Category(r.URL.Query().Get("category")),
		TimeRange: domain.TimeRange(r.URL.Query().Get("timeRange")),
		Search:    r.URL.Query().Get("search"),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = limit
	}

	articles, err := s.store.ListArticles(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": articles, "page": filter.Page})
}

// getArticleHandler returns one article and bumps its view counter
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	article, err := s.store.GetArticle(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] get article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.store.IncrementViewCount(r.Context(), id); err != nil {
		lgr.Printf("[WARN] increment views for %d: %v", id, err)
	} else {
		article.ViewCount++
	}

	renderJSON(w, r, http.StatusOK, article)
}

// searchHandler is a thin alias over the article listing with a query
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		renderError(w, r, fmt.Errorf("missing q parameter"), http.StatusBadRequest)
		return
	}

	articles, err := s.store.ListArticles(r.Context(), domain.ArticleFilter{Search: query})
	if err != nil {
		lgr.Printf("[ERROR] search %q: %v", query, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": articles, "query": query})
}

// categoriesHandler returns article counts per category
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountByCategory(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] count categories: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, counts)
}

// listBookmarksHandler returns the caller's bookmarked articles
func (s *Server) listBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := s.store.ListBookmarks(r.Context(), userID(r))
	if err != nil {
		lgr.Printf("[ERROR] list bookmarks: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": articles})
}

// createBookmarkHandler bookmarks an article for the caller. Repeating the
// request conflicts instead of silently succeeding.
func (s *Server) createBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	switch err := s.store.CreateBookmark(r.Context(), userID(r), id); {
	case errors.Is(err, domain.ErrDuplicateBookmark):
		renderError(w, r, err, http.StatusConflict)
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case err != nil:
		lgr.Printf("[ERROR] create bookmark: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusCreated, rest.JSON{"bookmarked": true, "article_id": id})
	}
}

// deleteBookmarkHandler removes a bookmark
func (s *Server) deleteBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	switch err := s.store.DeleteBookmark(r.Context(), userID(r), id); {
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case err != nil:
		lgr.Printf("[ERROR] delete bookmark: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, rest.JSON{"bookmarked": false, "article_id": id})
	}
}

type chatMessageRequest struct {
	ArticleID int64  `json:"article_id"`
	Message   string `json:"message"`
}

// chatMessageHandler sends a user message to the per-article conversation
func (s *Server) chatMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		renderError(w, r, fmt.Errorf("empty message"), http.StatusBadRequest)
		return
	}

	entry, err := s.chat.SendMessage(r.Context(), userID(r), req.ArticleID, req.Message)
	if err != nil {
		s.renderChatError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, entry)
}

type chatSummarizeRequest struct {
	ArticleID int64  `json:"article_id"`
	Mode      string `json:"mode"`
}

// chatSummarizeHandler requests an article summary in the given mode
func (s *Server) chatSummarizeHandler(w http.ResponseWriter, r *http.Request) {
	var req chatSummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	mode := domain.SummaryMode(req.Mode)
	if req.Mode == "" {
		mode = domain.SummaryMedium
	}
	if !mode.Valid() {
		renderError(w, r, fmt.Errorf("invalid summary mode %q", req.Mode), http.StatusBadRequest)
		return
	}

	entry, err := s.chat.Summarize(r.Context(), userID(r), req.ArticleID, mode)
	if err != nil {
		s.renderChatError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, entry)
}

type chatCompareRequest struct {
	ArticleIDs []int64 `json:"article_ids"`
}

// chatCompareHandler compares two or more articles
func (s *Server) chatCompareHandler(w http.ResponseWriter, r *http.Request) {
	var req chatCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.ArticleIDs) < 2 {
		renderError(w, r, fmt.Errorf("comparison needs at least 2 article IDs"), http.StatusBadRequest)
		return
	}

	result, err := s.chat.Compare(r.Context(), userID(r), req.ArticleIDs)
	if err != nil {
		s.renderChatError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"comparison": result})
}

// chatHistoryHandler returns the caller's transcript for one article
func (s *Server) chatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	history, err := s.chat.History(r.Context(), userID(r), id)
	if errors.Is(err, domain.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] chat history for %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []*domain.ConversationEntry{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"messages": history})
}

// renderChatError maps chat engine failures to HTTP codes: missing articles
// are 404, AI timeouts 504, everything else from the AI boundary 502
func (s *Server) renderChatError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	var aiErr *domain.AIError
	if errors.As(err, &aiErr) {
		code := http.StatusBadGateway
		if aiErr.Kind == domain.AIErrTimeout {
			code = http.StatusGatewayTimeout
		}
		lgr.Printf("[WARN] ai boundary failure: %v", err)
		renderError(w, r, err, code)
		return
	}
	lgr.Printf("[ERROR] chat: %v", err)
	renderError(w, r, err, http.StatusInternalServerError)
}

// trendingHandler returns the stored trending snapshot for a window
func (s *Server) trendingHandler(w http.ResponseWriter, r *http.Request) {
	window := domain.Window(r.URL.Query().Get("range"))
	if window == "" {
		window = domain.WindowToday
	}
	if !window.Valid() {
		renderError(w, r, fmt.Errorf("invalid range %q", window), http.StatusBadRequest)
		return
	}

	topics, err := s.store.ListTopics(r.Context(), window)
	if err != nil {
		lgr.Printf("[ERROR] trending %s: %v", window, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if topics == nil {
		topics = []*domain.TrendingTopic{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"range": window, "topics": topics})
}

// sourcesHandler lists active feed sources
func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.ListSources(r.Context(), true)
	if err != nil {
		lgr.Printf("[ERROR] list sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"sources": sources})
}

// refreshHandler triggers an immediate fetch cycle for all sources. The
// cycles run detached from the request so a slow feed or a client disconnect
// can't interrupt them; the 202 only acknowledges the trigger.
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	go func() {
		started, err := s.scheduler.RefreshNow(context.Background())
		if err != nil {
			lgr.Printf("[ERROR] manual refresh: %v", err)
			return
		}
		lgr.Printf("[INFO] manual refresh started %d cycles", started)
	}()
	renderJSON(w, r, http.StatusAccepted, rest.JSON{"refreshing": true})
}

// renderJSON sends data as JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
