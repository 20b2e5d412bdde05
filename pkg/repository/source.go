package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/techpulse/techpulse/pkg/domain"
)

// SourceRepository handles source registry operations
type SourceRepository struct {
	db    *sqlx.DB
	retry retryPolicy
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db, retry: retryPolicy{}.normalized()}
}

// Register inserts a source or updates its settings if the feed URL is
// already known. Used at startup to mirror configured sources into storage;
// never deletes, only toggles the active flag.
func (r *SourceRepository) Register(ctx context.Context, src *domain.Source) error {
	query := `
		INSERT INTO sources (name, url, feed_url, active, fetch_interval)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(feed_url) DO UPDATE SET
			name = excluded.name,
			url = excluded.url,
			active = excluded.active,
			fetch_interval = excluded.fetch_interval
	`
	_, err := r.db.ExecContext(ctx, query,
		src.Name, src.URL, src.FeedURL, src.Active, int64(src.FetchInterval.Seconds()))
	if err != nil {
		return fmt.Errorf("register source: %w", err)
	}

	// fetch the assigned id
	var id int64
	if err := r.db.GetContext(ctx, &id, "SELECT id FROM sources WHERE feed_url = ?", src.FeedURL); err != nil {
		return fmt.Errorf("get source id: %w", err)
	}
	src.ID = id
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var row sourceRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return row.toDomain(), nil
}

// ListSources retrieves all sources, optionally only active ones
func (r *SourceRepository) ListSources(ctx context.Context, activeOnly bool) ([]*domain.Source, error) {
	query := "SELECT * FROM sources ORDER BY id"
	if activeOnly {
		query = "SELECT * FROM sources WHERE active = 1 ORDER BY id"
	}

	var rows []sourceRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	sources := make([]*domain.Source, len(rows))
	for i, row := range rows {
		sources[i] = row.toDomain()
	}
	return sources, nil
}

// UpdateLastFetch records a completed fetch for the source. The scheduler is
// the only caller.
func (r *SourceRepository) UpdateLastFetch(ctx context.Context, sourceID int64, at time.Time) error {
	return r.retry.do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE sources SET last_fetch_at = ? WHERE id = ?", at.UTC(), sourceID)
		if err != nil {
			return fmt.Errorf("update last fetch: %w", err)
		}
		return nil
	})
}

// Deactivate soft-disables sources whose feed URL is not in the keep list.
// Sources referenced by articles are never deleted.
func (r *SourceRepository) Deactivate(ctx context.Context, keepFeedURLs []string) error {
	if len(keepFeedURLs) == 0 {
		if _, err := r.db.ExecContext(ctx, "UPDATE sources SET active = 0"); err != nil {
			return fmt.Errorf("deactivate sources: %w", err)
		}
		return nil
	}

	query, args, err := sqlx.In("UPDATE sources SET active = 0 WHERE feed_url NOT IN (?)", keepFeedURLs)
	if err != nil {
		return fmt.Errorf("build deactivate query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("deactivate sources: %w", err)
	}
	return nil
}
