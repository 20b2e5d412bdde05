package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/techpulse/techpulse/pkg/domain"
)

// TrendingRepository stores trending topic snapshots per time window
type TrendingRepository struct {
	db    *sqlx.DB
	retry retryPolicy
}

// NewTrendingRepository creates a new trending repository
func NewTrendingRepository(db *sqlx.DB) *TrendingRepository {
	return &TrendingRepository{db: db, retry: retryPolicy{}.normalized()}
}

// ReplaceTopics atomically replaces the stored snapshot for a window with a
// new set of topics. Readers never observe a partially updated window.
func (r *TrendingRepository) ReplaceTopics(ctx context.Context, window domain.Window, topics []*domain.TrendingTopic) error {
	return r.retry.do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err = tx.ExecContext(ctx, "DELETE FROM trending_topics WHERE window = ?", string(window)); err != nil {
			return fmt.Errorf("clear window %s: %w", window, err)
		}

		for _, t := range topics {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO trending_topics (window, date, topic, count, category, growth_rate)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				string(window), t.Date.UTC(), t.Topic, t.Count, string(t.Category), t.GrowthRate)
			if err != nil {
				return fmt.Errorf("insert topic %q: %w", t.Topic, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}

// ListTopics retrieves the stored snapshot for a window, highest count first
// with ties broken alphabetically
func (r *TrendingRepository) ListTopics(ctx context.Context, window domain.Window) ([]*domain.TrendingTopic, error) {
	var rows []trendingRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM trending_topics WHERE window = ? ORDER BY count DESC, topic ASC", string(window))
	if err != nil {
		return nil, fmt.Errorf("list topics for %s: %w", window, err)
	}

	topics := make([]*domain.TrendingTopic, len(rows))
	for i, row := range rows {
		topics[i] = row.toDomain()
	}
	return topics, nil
}
