package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schema string

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// backoff tunables for write retries on SQLite lock errors, zero values
	// fall back to 5 attempts, 100ms initial and 2s maximum delay
	RetryAttempts     int
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
}

// Repositories contains all repository instances sharing one connection pool
type Repositories struct {
	Source       *SourceRepository
	Article      *ArticleRepository
	Bookmark     *BookmarkRepository
	Trending     *TrendingRepository
	Conversation *ConversationRepository

	db *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:techpulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000", // 64MB cache
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// initialize schema
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	repos := &Repositories{
		Source:       NewSourceRepository(db),
		Article:      NewArticleRepository(db),
		Bookmark:     NewBookmarkRepository(db),
		Trending:     NewTrendingRepository(db),
		Conversation: NewConversationRepository(db),
		db:           db,
	}

	// all repositories share one backoff policy for lock errors
	retry := retryPolicy{
		attempts:     cfg.RetryAttempts,
		initialDelay: cfg.RetryInitialDelay,
		maxDelay:     cfg.RetryMaxDelay,
	}.normalized()
	repos.Source.retry = retry
	repos.Article.retry = retry
	repos.Bookmark.retry = retry
	repos.Trending.retry = retry
	repos.Conversation.retry = retry

	return repos, nil
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the shared database connection
func (r *Repositories) Close() error {
	return r.db.Close()
}
