package repository

import (
	"database/sql"
	"time"

	"github.com/techpulse/techpulse/pkg/domain"
)

// row types mirror table columns; conversion to domain types happens in the
// repositories so sql.Null* never leaks out of this package

type sourceRow struct {
	ID            int64        `db:"id"`
	Name          string       `db:"name"`
	URL           string       `db:"url"`
	FeedURL       string       `db:"feed_url"`
	Active        bool         `db:"active"`
	FetchInterval int64        `db:"fetch_interval"` // seconds
	LastFetchAt   sql.NullTime `db:"last_fetch_at"`
	CreatedAt     time.Time    `db:"created_at"`
}

func (r *sourceRow) toDomain() *domain.Source {
	src := &domain.Source{
		ID:            r.ID,
		Name:          r.Name,
		URL:           r.URL,
		FeedURL:       r.FeedURL,
		Active:        r.Active,
		FetchInterval: time.Duration(r.FetchInterval) * time.Second,
		CreatedAt:     r.CreatedAt,
	}
	if r.LastFetchAt.Valid {
		t := r.LastFetchAt.Time
		src.LastFetchAt = &t
	}
	return src
}

type articleRow struct {
	ID             int64        `db:"id"`
	SourceID       int64        `db:"source_id"`
	Title          string       `db:"title"`
	URL            string       `db:"url"`
	Content        string       `db:"content"`
	Snippet        string       `db:"snippet"`
	Category       string       `db:"category"`
	Sentiment      string       `db:"sentiment"`
	SentimentScore float64      `db:"sentiment_score"`
	ContentHash    string       `db:"content_hash"`
	Published      sql.NullTime `db:"published"`
	FetchedAt      time.Time    `db:"fetched_at"`
	ViewCount      int64        `db:"view_count"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

func (r *articleRow) toDomain() *domain.Article {
	a := &domain.Article{
		ID:             r.ID,
		SourceID:       r.SourceID,
		Title:          r.Title,
		URL:            r.URL,
		Content:        r.Content,
		Snippet:        r.Snippet,
		Category:       domain.Category(r.Category),
		Sentiment:      domain.Sentiment(r.Sentiment),
		SentimentScore: r.SentimentScore,
		ContentHash:    r.ContentHash,
		FetchedAt:      r.FetchedAt,
		ViewCount:      r.ViewCount,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Published.Valid {
		a.Published = r.Published.Time
	}
	return a
}

type trendingRow struct {
	ID         int64           `db:"id"`
	Window     string          `db:"window"`
	Date       time.Time       `db:"date"`
	Topic      string          `db:"topic"`
	Count      int             `db:"count"`
	Category   string          `db:"category"`
	GrowthRate sql.NullFloat64 `db:"growth_rate"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (r *trendingRow) toDomain() *domain.TrendingTopic {
	t := &domain.TrendingTopic{
		ID:        r.ID,
		Window:    domain.Window(r.Window),
		Date:      r.Date,
		Topic:     r.Topic,
		Count:     r.Count,
		Category:  domain.Category(r.Category),
		CreatedAt: r.CreatedAt,
	}
	if r.GrowthRate.Valid {
		g := r.GrowthRate.Float64
		t.GrowthRate = &g
	}
	return t
}

type conversationRow struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	ArticleID int64     `db:"article_id"`
	Role      string    `db:"role"`
	Message   string    `db:"message"`
	Summary   bool      `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *conversationRow) toDomain() *domain.ConversationEntry {
	return &domain.ConversationEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		ArticleID: r.ArticleID,
		Role:      domain.Role(r.Role),
		Message:   r.Message,
		Summary:   r.Summary,
		CreatedAt: r.CreatedAt,
	}
}
