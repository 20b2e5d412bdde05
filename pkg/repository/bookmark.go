package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/techpulse/techpulse/pkg/domain"
)

// BookmarkRepository handles per-user bookmark persistence
type BookmarkRepository struct {
	db    *sqlx.DB
	retry retryPolicy
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *sqlx.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db, retry: retryPolicy{}.normalized()}
}

// Create marks an article as bookmarked by a user. Bookmarking an already
// bookmarked article returns domain.ErrDuplicateBookmark, bookmarking a
// missing article returns domain.ErrNotFound.
func (r *BookmarkRepository) Create(ctx context.Context, userID string, articleID int64) error {
	return r.retry.do(ctx, func() error {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)", articleID); err != nil {
			return fmt.Errorf("check article %d: %w", articleID, err)
		}
		if !exists {
			return fmt.Errorf("article %d: %w", articleID, domain.ErrNotFound)
		}

		_, err := r.db.ExecContext(ctx,
			"INSERT INTO bookmarks (user_id, article_id) VALUES (?, ?)", userID, articleID)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
				strings.Contains(err.Error(), "constraint failed: bookmarks") {
				return fmt.Errorf("bookmark for article %d: %w", articleID, domain.ErrDuplicateBookmark)
			}
			return fmt.Errorf("create bookmark: %w", err)
		}
		return nil
	})
}

// Delete removes a bookmark, returns domain.ErrNotFound if it doesn't exist
func (r *BookmarkRepository) Delete(ctx context.Context, userID string, articleID int64) error {
	return r.retry.do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"DELETE FROM bookmarks WHERE user_id = ? AND article_id = ?", userID, articleID)
		if err != nil {
			return fmt.Errorf("delete bookmark: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("bookmark for article %d: %w", articleID, domain.ErrNotFound)
		}
		return nil
	})
}

// IsBookmarked reports whether a user has bookmarked an article
func (r *BookmarkRepository) IsBookmarked(ctx context.Context, userID string, articleID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = ? AND article_id = ?)", userID, articleID)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return exists, nil
}

// ListByUser retrieves a user's bookmarked articles, most recently
// bookmarked first
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Article, error) {
	var rows []articleRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT a.* FROM articles a
		 JOIN bookmarks b ON b.article_id = a.id
		 WHERE b.user_id = ?
		 ORDER BY b.created_at DESC, a.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i, row := range rows {
		articles[i] = row.toDomain()
	}
	return articles, nil
}
