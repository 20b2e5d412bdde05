package trending

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techpulse/techpulse/pkg/config"
	"github.com/techpulse/techpulse/pkg/domain"
	"github.com/techpulse/techpulse/pkg/trending/mocks"
)

// fixedTopics is a deterministic extractor that reads topics from the title,
// one per comma-separated token
type fixedTopics struct{}

func (fixedTopics) Topics(title, _ string) []string {
	var topics []string
	start := 0
	for i := 0; i <= len(title); i++ {
		if i == len(title) || title[i] == ',' {
			if i > start {
				topics = append(topics, title[start:i])
			}
			start = i + 1
		}
	}
	return topics
}

// articlesWithTopic builds n articles each mentioning the topic once
func articlesWithTopic(topic string, n int, category domain.Category, published time.Time) []*domain.Article {
	articles := make([]*domain.Article, n)
	for i := range articles {
		articles[i] = &domain.Article{
			ID:        int64(i + 1),
			Title:     topic,
			URL:       fmt.Sprintf("https://x.com/%s-%d", topic, i),
			Category:  category,
			Published: published,
		}
	}
	return articles
}

func TestAggregator_Run(t *testing.T) {
	now := time.Date(2025, 5, 2, 15, 0, 0, 0, time.UTC)
	dayStart := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("growth rate doubles when mentions double", func(t *testing.T) {
		// 12 mentions today vs 6 the day before
		lister := &mocks.ArticleListerMock{
			ListPublishedBetweenFunc: func(_ context.Context, from, _ time.Time) ([]*domain.Article, error) {
				if from.Equal(dayStart) {
					return articlesWithTopic("llm", 12, domain.CategoryAIML, now), nil
				}
				return articlesWithTopic("llm", 6, domain.CategoryAIML, now.Add(-24*time.Hour)), nil
			},
		}
		store := &mocks.TopicStoreMock{
			ReplaceTopicsFunc: func(_ context.Context, _ domain.Window, _ []*domain.TrendingTopic) error {
				return nil
			},
		}

		agg := NewAggregator(lister, store, fixedTopics{}, config.TrendingConfig{})
		agg.now = func() time.Time { return now }

		topics, err := agg.Run(context.Background(), domain.WindowToday)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "llm", topics[0].Topic)
		assert.Equal(t, 12, topics[0].Count)
		assert.Equal(t, domain.CategoryAIML, topics[0].Category)
		require.NotNil(t, topics[0].GrowthRate)
		assert.InDelta(t, 100.0, *topics[0].GrowthRate, 0.001)

		require.Len(t, store.ReplaceTopicsCalls(), 1)
		assert.Equal(t, domain.WindowToday, store.ReplaceTopicsCalls()[0].Window)
	})

	t.Run("no prior mentions means no growth rate", func(t *testing.T) {
		lister := &mocks.ArticleListerMock{
			ListPublishedBetweenFunc: func(_ context.Context, from, _ time.Time) ([]*domain.Article, error) {
				if from.Equal(dayStart) {
					return articlesWithTopic("quantum", 4, domain.CategoryOthers, now), nil
				}
				return nil, nil
			},
		}
		store := &mocks.TopicStoreMock{
			ReplaceTopicsFunc: func(_ context.Context, _ domain.Window, _ []*domain.TrendingTopic) error {
				return nil
			},
		}

		agg := NewAggregator(lister, store, fixedTopics{}, config.TrendingConfig{})
		agg.now = func() time.Time { return now }

		topics, err := agg.Run(context.Background(), domain.WindowToday)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Nil(t, topics[0].GrowthRate)
	})

	t.Run("min mentions filter and ordering", func(t *testing.T) {
		current := articlesWithTopic("alpha", 5, domain.CategoryStartups, now)
		current = append(current, articlesWithTopic("zeta", 5, domain.CategoryWeb3, now)...)
		current = append(current, articlesWithTopic("rare", 1, domain.CategoryOthers, now)...)
		current = append(current, articlesWithTopic("beta", 7, domain.CategoryMobile, now)...)

		lister := &mocks.ArticleListerMock{
			ListPublishedBetweenFunc: func(_ context.Context, from, _ time.Time) ([]*domain.Article, error) {
				if from.Equal(dayStart) {
					return current, nil
				}
				return nil, nil
			},
		}
		store := &mocks.TopicStoreMock{
			ReplaceTopicsFunc: func(_ context.Context, _ domain.Window, _ []*domain.TrendingTopic) error {
				return nil
			},
		}

		agg := NewAggregator(lister, store, fixedTopics{}, config.TrendingConfig{MinMentions: 2})
		agg.now = func() time.Time { return now }

		topics, err := agg.Run(context.Background(), domain.WindowToday)
		require.NoError(t, err)
		require.Len(t, topics, 3, "single-mention topic dropped")
		assert.Equal(t, "beta", topics[0].Topic)
		assert.Equal(t, "alpha", topics[1].Topic, "ties break alphabetically")
		assert.Equal(t, "zeta", topics[2].Topic)
	})

	t.Run("max topics cap", func(t *testing.T) {
		var current []*domain.Article
		for i := 0; i < 5; i++ {
			current = append(current, articlesWithTopic(fmt.Sprintf("topic%d", i), 3, domain.CategoryOthers, now)...)
		}
		lister := &mocks.ArticleListerMock{
			ListPublishedBetweenFunc: func(_ context.Context, from, _ time.Time) ([]*domain.Article, error) {
				if from.Equal(dayStart) {
					return current, nil
				}
				return nil, nil
			},
		}
		store := &mocks.TopicStoreMock{
			ReplaceTopicsFunc: func(_ context.Context, _ domain.Window, _ []*domain.TrendingTopic) error {
				return nil
			},
		}

		agg := NewAggregator(lister, store, fixedTopics{}, config.TrendingConfig{MaxTopics: 2})
		agg.now = func() time.Time { return now }

		topics, err := agg.Run(context.Background(), domain.WindowToday)
		require.NoError(t, err)
		assert.Len(t, topics, 2)
	})

	t.Run("idempotent reruns", func(t *testing.T) {
		lister := &mocks.ArticleListerMock{
			ListPublishedBetweenFunc: func(_ context.Context, from, _ time.Time) ([]*domain.Article, error) {
				if from.Equal(dayStart) {
					return articlesWithTopic("stable", 3, domain.CategoryOthers, now), nil
				}
				return articlesWithTopic("stable", 2, domain.CategoryOthers, now.Add(-24*time.Hour)), nil
			},
		}
		store := &mocks.TopicStoreMock{
			ReplaceTopicsFunc: func(_ context.Context, _ domain.Window, _ []*domain.TrendingTopic) error {
				return nil
			},
		}

		agg := NewAggregator(lister, store, fixedTopics{}, config.TrendingConfig{})
		agg.now = func() time.Time { return now }

		first, err := agg.Run(context.Background(), domain.WindowToday)
		require.NoError(t, err)
		second, err := agg.Run(context.Background(), domain.WindowToday)
		require.NoError(t, err)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].Count, second[0].Count)
		assert.InDelta(t, *first[0].GrowthRate, *second[0].GrowthRate, 0.001)
	})

	t.Run("unknown window rejected", func(t *testing.T) {
		agg := NewAggregator(&mocks.ArticleListerMock{}, &mocks.TopicStoreMock{}, fixedTopics{}, config.TrendingConfig{})
		_, err := agg.Run(context.Background(), domain.Window("fortnight"))
		assert.Error(t, err)
	})
}

func TestWindowBounds(t *testing.T) {
	now := time.Date(2025, 5, 2, 15, 30, 0, 0, time.UTC)

	from, to, prevFrom, prevTo := domain.WindowToday.Bounds(now)
	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), to)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), prevFrom)
	assert.Equal(t, from, prevTo)

	from, to, prevFrom, prevTo = domain.WindowWeek.Bounds(now)
	assert.Equal(t, now, to)
	assert.Equal(t, now.Add(-7*24*time.Hour), from)
	assert.Equal(t, from, prevTo)
	assert.Equal(t, now.Add(-14*24*time.Hour), prevFrom)
}
