// Package chat runs per-(user, article) AI conversations backed by the
// article content and the stored transcript.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/techpulse/techpulse/pkg/ai"
	"github.com/techpulse/techpulse/pkg/domain"
)

//go:generate moq -out mocks/completer.go -pkg mocks -skip-ensure -fmt goimports . Completer
//go:generate moq -out mocks/article_getter.go -pkg mocks -skip-ensure -fmt goimports . ArticleGetter
//go:generate moq -out mocks/history_store.go -pkg mocks -skip-ensure -fmt goimports . HistoryStore

// Completer is the AI boundary used for responses
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, messages []ai.Message) (string, error)
}

// ArticleGetter loads the article a conversation is about
type ArticleGetter interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
}

// HistoryStore persists conversation transcripts
type HistoryStore interface {
	Append(ctx context.Context, entry *domain.ConversationEntry) error
	History(ctx context.Context, userID string, articleID int64) ([]*domain.ConversationEntry, error)
}

// Engine serializes writes per (user, article) pair; different pairs
// proceed concurrently. AI failures never leave a dangling assistant entry.
type Engine struct {
	completer Completer
	articles  ArticleGetter
	store     HistoryStore

	mu    sync.Mutex
	locks map[pairKey]*sync.Mutex
}

type pairKey struct {
	userID    string
	articleID int64
}

// NewEngine creates a conversation engine
func NewEngine(completer Completer, articles ArticleGetter, store HistoryStore) *Engine {
	return &Engine{
		completer: completer,
		articles:  articles,
		store:     store,
		locks:     make(map[pairKey]*sync.Mutex),
	}
}

// pairLock returns the mutex for a (user, article) pair, creating it on
// first use. Locks are never removed; the pair space is bounded by active
// users times articles they chat about.
func (e *Engine) pairLock(userID string, articleID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := pairKey{userID: userID, articleID: articleID}
	l, ok := e.locks[key]
	if !ok {
		l = &sync.Mutex{}
		e.locks[key] = l
	}
	return l
}

// History returns the stored transcript for a pair, oldest first. An article
// that doesn't exist yields domain.ErrNotFound even when no messages were
// ever sent.
func (e *Engine) History(ctx context.Context, userID string, articleID int64) ([]*domain.ConversationEntry, error) {
	if _, err := e.articles.GetArticle(ctx, articleID); err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}
	return e.store.History(ctx, userID, articleID)
}

// SendMessage appends the user's message, asks the AI with the article and
// full prior transcript as context, appends and returns the assistant reply.
// On AI failure the user entry stays, no assistant entry is written, and the
// typed error is returned.
func (e *Engine) SendMessage(ctx context.Context, userID string, articleID int64, text string) (*domain.ConversationEntry, error) {
	article, err := e.articles.GetArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}

	lock := e.pairLock(userID, articleID)
	lock.Lock()
	defer lock.Unlock()

	history, err := e.store.History(ctx, userID, articleID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	userEntry := &domain.ConversationEntry{
		UserID:    userID,
		ArticleID: articleID,
		Role:      domain.RoleUser,
		Message:   text,
	}
	if err := e.store.Append(ctx, userEntry); err != nil {
		return nil, fmt.Errorf("append user entry: %w", err)
	}

	messages := make([]ai.Message, 0, len(history)+1)
	for _, entry := range history {
		messages = append(messages, ai.Message{Role: entry.Role, Content: entry.Message})
	}
	messages = append(messages, ai.Message{Role: domain.RoleUser, Content: text})

	reply, err := e.completer.Complete(ctx, articleSystemPrompt(article), messages)
	if err != nil {
		return nil, err
	}

	assistantEntry := &domain.ConversationEntry{
		UserID:    userID,
		ArticleID: articleID,
		Role:      domain.RoleAssistant,
		Message:   reply,
	}
	if err := e.store.Append(ctx, assistantEntry); err != nil {
		return nil, fmt.Errorf("append assistant entry: %w", err)
	}
	return assistantEntry, nil
}

// Summarize asks the AI for a mode-specific summary of the article and
// appends it to the transcript as a flagged assistant entry
func (e *Engine) Summarize(ctx context.Context, userID string, articleID int64, mode domain.SummaryMode) (*domain.ConversationEntry, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown summary mode %q", mode)
	}
	article, err := e.articles.GetArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}

	lock := e.pairLock(userID, articleID)
	lock.Lock()
	defer lock.Unlock()

	reply, err := e.completer.Complete(ctx, articleSystemPrompt(article), []ai.Message{
		{Role: domain.RoleUser, Content: summaryPrompt(mode)},
	})
	if err != nil {
		return nil, err
	}

	entry := &domain.ConversationEntry{
		UserID:    userID,
		ArticleID: articleID,
		Role:      domain.RoleAssistant,
		Message:   reply,
		Summary:   true,
	}
	if err := e.store.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append summary entry: %w", err)
	}
	return entry, nil
}

// Compare asks the AI to contrast two or more articles. The result is
// returned directly and never written to any per-article transcript.
func (e *Engine) Compare(ctx context.Context, userID string, articleIDs []int64) (string, error) {
	if len(articleIDs) < 2 {
		return "", fmt.Errorf("comparison needs at least 2 articles, got %d", len(articleIDs))
	}

	var b strings.Builder
	for i, id := range articleIDs {
		article, err := e.articles.GetArticle(ctx, id)
		if err != nil {
			return "", fmt.Errorf("load article %d: %w", id, err)
		}
		fmt.Fprintf(&b, "Article %d: %s\n%s\n\n", i+1, article.Title, articleText(article))
	}

	return e.completer.Complete(ctx, comparePrompt, []ai.Message{
		{Role: domain.RoleUser, Content: b.String()},
	})
}

const comparePrompt = `You are a tech news analyst. Compare the articles provided by the user: ` +
	`common themes, key differences, and which covers the topic in more depth. Be concise and specific.`

// articleSystemPrompt grounds the AI in the article under discussion
func articleSystemPrompt(a *domain.Article) string {
	return fmt.Sprintf(`You are a helpful assistant answering questions about a single news article. `+
		`Base your answers only on the article content below; say so when the article does not cover something.

Title: %s

%s`, a.Title, articleText(a))
}

// articleText prefers extracted content, falls back to the feed snippet
func articleText(a *domain.Article) string {
	if a.Content != "" {
		return a.Content
	}
	return a.Snippet
}

func summaryPrompt(mode domain.SummaryMode) string {
	switch mode {
	case domain.SummaryShort:
		return "Summarize this article in 2-3 sentences."
	case domain.SummaryLong:
		return "Write a detailed summary of this article covering all key points, roughly 3 paragraphs."
	default:
		return "Summarize this article in one paragraph."
	}
}
