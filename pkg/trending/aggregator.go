package trending

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/techpulse/techpulse/pkg/config"
	"github.com/techpulse/techpulse/pkg/domain"
)

//go:generate moq -out mocks/article_lister.go -pkg mocks -skip-ensure -fmt goimports . ArticleLister
//go:generate moq -out mocks/topic_store.go -pkg mocks -skip-ensure -fmt goimports . TopicStore

// ArticleLister provides the aggregation input
type ArticleLister interface {
	ListPublishedBetween(ctx context.Context, from, to time.Time) ([]*domain.Article, error)
}

// TopicStore persists window snapshots
type TopicStore interface {
	ReplaceTopics(ctx context.Context, window domain.Window, topics []*domain.TrendingTopic) error
}

// Aggregator recomputes the trending snapshot for a window from scratch.
// Runs are idempotent: same articles in, same snapshot out.
type Aggregator struct {
	articles    ArticleLister
	store       TopicStore
	extractor   TopicExtractor
	minMentions int
	maxTopics   int
	now         func() time.Time
}

// NewAggregator creates an aggregator with the given extractor and tunables
func NewAggregator(articles ArticleLister, store TopicStore, extractor TopicExtractor, cfg config.TrendingConfig) *Aggregator {
	minMentions := cfg.MinMentions
	if minMentions <= 0 {
		minMentions = 2
	}
	maxTopics := cfg.MaxTopics
	if maxTopics <= 0 {
		maxTopics = 20
	}
	return &Aggregator{
		articles:    articles,
		store:       store,
		extractor:   extractor,
		minMentions: minMentions,
		maxTopics:   maxTopics,
		now:         time.Now,
	}
}

// Run recomputes and stores the snapshot for a window, returning the stored
// topics ranked by count desc then topic asc
func (a *Aggregator) Run(ctx context.Context, window domain.Window) ([]*domain.TrendingTopic, error) {
	if !window.Valid() {
		return nil, fmt.Errorf("unknown trending window %q", window)
	}

	from, to, prevFrom, prevTo := window.Bounds(a.now())

	current, err := a.tally(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("tally window %s: %w", window, err)
	}
	prior, err := a.tally(ctx, prevFrom, prevTo)
	if err != nil {
		return nil, fmt.Errorf("tally prior window %s: %w", window, err)
	}

	var topics []*domain.TrendingTopic
	for topic, t := range current {
		if t.count < a.minMentions {
			continue
		}
		entry := &domain.TrendingTopic{
			Window:   window,
			Date:     from,
			Topic:    topic,
			Count:    t.count,
			Category: t.topCategory(),
		}
		if p, ok := prior[topic]; ok && p.count > 0 {
			growth := float64(t.count-p.count) / float64(p.count) * 100
			entry.GrowthRate = &growth
		}
		topics = append(topics, entry)
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Topic < topics[j].Topic
	})
	if len(topics) > a.maxTopics {
		topics = topics[:a.maxTopics]
	}

	if err := a.store.ReplaceTopics(ctx, window, topics); err != nil {
		return nil, fmt.Errorf("store topics for %s: %w", window, err)
	}

	lgr.Printf("[DEBUG] trending window %s recomputed, %d topics", window, len(topics))
	return topics, nil
}

// tallied collects mention and per-category counts for one topic
type tallied struct {
	count      int
	categories map[domain.Category]int
}

// topCategory picks the category most of the mentioning articles carry, with
// alphabetical tie-break for determinism
func (t *tallied) topCategory() domain.Category {
	var best domain.Category
	bestCount := -1
	for cat, n := range t.categories {
		if n > bestCount || (n == bestCount && cat < best) {
			best, bestCount = cat, n
		}
	}
	return best
}

func (a *Aggregator) tally(ctx context.Context, from, to time.Time) (map[string]*tallied, error) {
	articles, err := a.articles.ListPublishedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]*tallied)
	for _, article := range articles {
		for _, topic := range a.extractor.Topics(article.Title, article.Snippet) {
			t, ok := counts[topic]
			if !ok {
				t = &tallied{categories: make(map[domain.Category]int)}
				counts[topic] = t
			}
			t.count++
			t.categories[article.Category]++
		}
	}
	return counts, nil
}
