package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/techpulse/techpulse/pkg/domain"
)

// ConversationRepository persists per-(user, article) chat transcripts
type ConversationRepository struct {
	db    *sqlx.DB
	retry retryPolicy
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *sqlx.DB) *ConversationRepository {
	return &ConversationRepository{db: db, retry: retryPolicy{}.normalized()}
}

// Append adds an entry to a conversation and fills in its ID and timestamp
func (r *ConversationRepository) Append(ctx context.Context, entry *domain.ConversationEntry) error {
	return r.retry.do(ctx, func() error {
		now := time.Now().UTC()
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO conversations (user_id, article_id, role, message, summary, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			entry.UserID, entry.ArticleID, string(entry.Role), entry.Message, entry.Summary, now)
		if err != nil {
			return fmt.Errorf("append conversation entry: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		entry.ID = id
		entry.CreatedAt = now
		return nil
	})
}

// History retrieves a conversation in chronological order
func (r *ConversationRepository) History(ctx context.Context, userID string, articleID int64) ([]*domain.ConversationEntry, error) {
	var rows []conversationRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM conversations WHERE user_id = ? AND article_id = ?
		 ORDER BY created_at, id`, userID, articleID)
	if err != nil {
		return nil, fmt.Errorf("conversation history: %w", err)
	}

	entries := make([]*domain.ConversationEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}
