// Package server exposes the platform's REST API plus a server-sent events
// stream of live notifications.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/techpulse/techpulse/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/chat.go -pkg mocks -skip-ensure -fmt goimports . Chat
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	chat      Chat
	scheduler Scheduler
	notifier  Notifier
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store is the storage surface the API reads and writes
type Store interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)
	IncrementViewCount(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context) (map[domain.Category]int, error)

	CreateBookmark(ctx context.Context, userID string, articleID int64) error
	DeleteBookmark(ctx context.Context, userID string, articleID int64) error
	ListBookmarks(ctx context.Context, userID string) ([]*domain.Article, error)

	ListSources(ctx context.Context, activeOnly bool) ([]*domain.Source, error)
	ListTopics(ctx context.Context, window domain.Window) ([]*domain.TrendingTopic, error)
}

// Chat is the conversation engine surface
type Chat interface {
	History(ctx context.Context, userID string, articleID int64) ([]*domain.ConversationEntry, error)
	SendMessage(ctx context.Context, userID string, articleID int64, text string) (*domain.ConversationEntry, error)
	Summarize(ctx context.Context, userID string, articleID int64, mode domain.SummaryMode) (*domain.ConversationEntry, error)
	Compare(ctx context.Context, userID string, articleIDs []int64) (string, error)
}

// Scheduler triggers on-demand ingestion
type Scheduler interface {
	RefreshNow(ctx context.Context) (int, error)
}

// Notifier is the live event hub the SSE endpoint drains
type Notifier interface {
	Subscribe() chan domain.Event
	Unsubscribe(ch chan domain.Event)
	SubscriberCount() int
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, chat Chat, scheduler Scheduler, notifier Notifier, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		chat:      chat,
		scheduler: scheduler,
		notifier:  notifier,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: 0, // SSE connections stay open indefinitely
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("techpulse", "techpulse", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)

		r.HandleFunc("GET /bookmarks", s.listBookmarksHandler)
		r.HandleFunc("POST /bookmarks/{id}", s.createBookmarkHandler)
		r.HandleFunc("DELETE /bookmarks/{id}", s.deleteBookmarkHandler)

		r.HandleFunc("POST /chat/message", s.chatMessageHandler)
		r.HandleFunc("POST /chat/summarize", s.chatSummarizeHandler)
		r.HandleFunc("POST /chat/compare", s.chatCompareHandler)
		r.HandleFunc("GET /chat/{id}/history", s.chatHistoryHandler)

		r.HandleFunc("GET /trending", s.trendingHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)

		r.HandleFunc("GET /events", s.eventsHandler)
	})
}
