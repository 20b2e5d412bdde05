package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/techpulse/techpulse/pkg/domain"
)

// ArticleRepository handles article persistence and deduplication
type ArticleRepository struct {
	db    *sqlx.DB
	retry retryPolicy
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db, retry: retryPolicy{}.normalized()}
}

// contentHash fingerprints the mutable part of an article; identical hash on
// re-fetch means the upsert is a no-op
func contentHash(a *domain.Article) string {
	h := sha256.New()
	h.Write([]byte(a.Title))
	h.Write([]byte{0})
	h.Write([]byte(a.Content))
	h.Write([]byte{0})
	h.Write([]byte(a.Snippet))
	return hex.EncodeToString(h.Sum(nil))
}

// Upsert inserts or refreshes an article keyed by canonical URL and reports
// what happened. A republish with identical content yields UpsertUnchanged;
// an update refreshes content, snippet, category and sentiment but preserves
// the original creation time and accumulated view counter. The UNIQUE
// constraint on url guarantees at most one row per URL under concurrent
// cycles; lost insert races fall through to the update path.
func (r *ArticleRepository) Upsert(ctx context.Context, a *domain.Article) (domain.UpsertResult, error) {
	hash := contentHash(a)
	a.ContentHash = hash

	result := domain.UpsertUnchanged
	err := r.retry.do(ctx, func() error {
		var existing articleRow
		err := r.db.GetContext(ctx, &existing,
			"SELECT id, content_hash, view_count, created_at FROM articles WHERE url = ?", a.URL)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			insert := `
				INSERT INTO articles (
					source_id, title, url, content, snippet, category,
					sentiment, sentiment_score, content_hash, published, fetched_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
				ON CONFLICT(url) DO NOTHING
			`
			res, insErr := r.db.ExecContext(ctx, insert,
				a.SourceID, a.Title, a.URL, a.Content, a.Snippet, string(a.Category),
				string(a.Sentiment), a.SentimentScore, hash, nullableTime(a))
			if insErr != nil {
				return fmt.Errorf("insert article: %w", insErr)
			}
			affected, _ := res.RowsAffected()
			if affected == 0 {
				// concurrent cycle inserted the same URL first; treat as republish
				return r.refresh(ctx, a, hash, &result)
			}
			id, idErr := res.LastInsertId()
			if idErr != nil {
				return fmt.Errorf("get insert id: %w", idErr)
			}
			a.ID = id
			result = domain.UpsertCreated
			return nil

		case err != nil:
			return fmt.Errorf("lookup article by url: %w", err)

		default:
			a.ID = existing.ID
			a.ViewCount = existing.ViewCount
			if existing.ContentHash == hash {
				result = domain.UpsertUnchanged
				return nil
			}
			return r.refresh(ctx, a, hash, &result)
		}
	})
	if err != nil {
		return domain.UpsertUnchanged, err
	}
	return result, nil
}

// refresh updates the mutable columns of an existing row, leaving created_at
// and view_count untouched
func (r *ArticleRepository) refresh(ctx context.Context, a *domain.Article, hash string, result *domain.UpsertResult) error {
	query := `
		UPDATE articles
		SET title = ?, content = ?, snippet = ?, category = ?,
		    sentiment = ?, sentiment_score = ?, content_hash = ?,
		    published = ?, fetched_at = datetime('now'), updated_at = datetime('now')
		WHERE url = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		a.Title, a.Content, a.Snippet, string(a.Category),
		string(a.Sentiment), a.SentimentScore, hash, nullableTime(a), a.URL)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	if a.ID == 0 {
		if err := r.db.GetContext(ctx, &a.ID, "SELECT id FROM articles WHERE url = ?", a.URL); err != nil {
			return fmt.Errorf("get article id: %w", err)
		}
	}
	*result = domain.UpsertUpdated
	return nil
}

func nullableTime(a *domain.Article) interface{} {
	if a.Published.IsZero() {
		return nil
	}
	return a.Published.UTC()
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var row articleRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return row.toDomain(), nil
}

// GetArticleByURL retrieves an article by its canonical URL
func (r *ArticleRepository) GetArticleByURL(ctx context.Context, url string) (*domain.Article, error) {
	var row articleRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article by url: %w", err)
	}
	return row.toDomain(), nil
}

// ListArticles retrieves articles matching the filter, newest first
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	var conditions []string
	var args []interface{}

	if filter.Category != "" && filter.Category != "all" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.TimeRange != "" {
		switch filter.TimeRange {
		case domain.RangeToday:
			conditions = append(conditions, "published >= datetime('now', 'start of day')")
		case domain.RangeWeek:
			conditions = append(conditions, "published >= datetime('now', '-7 days')")
		case domain.RangeMonth:
			conditions = append(conditions, "published >= datetime('now', '-30 days')")
		}
	}
	if filter.Search != "" {
		conditions = append(conditions, "(title LIKE ? OR snippet LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	query := "SELECT * FROM articles"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY published DESC, id DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, (page-1)*limit)

	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i, row := range rows {
		articles[i] = row.toDomain()
	}
	return articles, nil
}

// ListPublishedBetween retrieves articles published in [from, to), used by
// the trending aggregator
func (r *ArticleRepository) ListPublishedBetween(ctx context.Context, from, to time.Time) ([]*domain.Article, error) {
	var rows []articleRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM articles WHERE published >= ? AND published < ? ORDER BY published, id",
		from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("list published between: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i, row := range rows {
		articles[i] = row.toDomain()
	}
	return articles, nil
}

// IncrementViewCount bumps the view counter; called only on the article
// detail read path
func (r *ArticleRepository) IncrementViewCount(ctx context.Context, id int64) error {
	return r.retry.do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE articles SET view_count = view_count + 1 WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("increment view count: %w", err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// CountByCategory returns article counts grouped by category
func (r *ArticleRepository) CountByCategory(ctx context.Context) (map[domain.Category]int, error) {
	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT category, COUNT(*) AS count FROM articles GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	counts := make(map[domain.Category]int, len(rows))
	for _, row := range rows {
		counts[domain.Category(row.Category)] = row.Count
	}
	return counts, nil
}
