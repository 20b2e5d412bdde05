package server

import (
	"context"

	"github.com/techpulse/techpulse/pkg/domain"
	"github.com/techpulse/techpulse/pkg/repository"
)

// RepositoryStore adapts the repository set to the flat Store surface the
// handlers consume
type RepositoryStore struct {
	repos *repository.Repositories
}

// NewRepositoryStore creates a store backed by the shared repositories
func NewRepositoryStore(repos *repository.Repositories) *RepositoryStore {
	return &RepositoryStore{repos: repos}
}

// GetArticle retrieves an article by ID
func (s *RepositoryStore) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.repos.Article.GetArticle(ctx, id)
}

// ListArticles retrieves articles matching the filter
func (s *RepositoryStore) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return s.repos.Article.ListArticles(ctx, filter)
}

// IncrementViewCount bumps an article's view counter
func (s *RepositoryStore) IncrementViewCount(ctx context.Context, id int64) error {
	return s.repos.Article.IncrementViewCount(ctx, id)
}

// CountByCategory returns article counts grouped by category
func (s *RepositoryStore) CountByCategory(ctx context.Context) (map[domain.Category]int, error) {
	return s.repos.Article.CountByCategory(ctx)
}

// CreateBookmark bookmarks an article for a user
func (s *RepositoryStore) CreateBookmark(ctx context.Context, userID string, articleID int64) error {
	return s.repos.Bookmark.Create(ctx, userID, articleID)
}

// DeleteBookmark removes a user's bookmark
func (s *RepositoryStore) DeleteBookmark(ctx context.Context, userID string, articleID int64) error {
	return s.repos.Bookmark.Delete(ctx, userID, articleID)
}

// ListBookmarks retrieves a user's bookmarked articles
func (s *RepositoryStore) ListBookmarks(ctx context.Context, userID string) ([]*domain.Article, error) {
	return s.repos.Bookmark.ListByUser(ctx, userID)
}

// ListSources retrieves feed sources
func (s *RepositoryStore) ListSources(ctx context.Context, activeOnly bool) ([]*domain.Source, error) {
	return s.repos.Source.ListSources(ctx, activeOnly)
}

// ListTopics retrieves the trending snapshot for a window
func (s *RepositoryStore) ListTopics(ctx context.Context, window domain.Window) ([]*domain.TrendingTopic, error) {
	return s.repos.Trending.ListTopics(ctx, window)
}
