// Package scheduler drives the ingestion pipeline: per-source timers fire
// fetch cycles that parse, classify and persist articles, and an independent
// ticker keeps trending snapshots fresh.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/techpulse/techpulse/pkg/classify"
	"github.com/techpulse/techpulse/pkg/domain"
)

//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/trending_runner.go -pkg mocks -skip-ensure -fmt goimports . TrendingRunner
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Parser fetches and normalizes one feed
type Parser interface {
	Fetch(ctx context.Context, src *domain.Source) ([]domain.Candidate, error)
}

// Extractor pulls full article text from the origin page
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// Classifier assigns category and sentiment to an article
type Classifier interface {
	Classify(title, content string) classify.Result
}

// SourceStore provides the sources to schedule
type SourceStore interface {
	ListSources(ctx context.Context, activeOnly bool) ([]*domain.Source, error)
	UpdateLastFetch(ctx context.Context, sourceID int64, at time.Time) error
}

// ArticleStore persists fetched articles
type ArticleStore interface {
	Upsert(ctx context.Context, article *domain.Article) (domain.UpsertResult, error)
}

// TrendingRunner recomputes one trending window
type TrendingRunner interface {
	Run(ctx context.Context, window domain.Window) ([]*domain.TrendingTopic, error)
}

// Publisher broadcasts live events
type Publisher interface {
	Publish(event domain.Event)
}

// SourceState is the observable stage of a source's cycle
type SourceState string

// cycle stages
const (
	StateIdle        SourceState = "idle"
	StateFetching    SourceState = "fetching"
	StateClassifying SourceState = "classifying"
	StatePersisting  SourceState = "persisting"
)

// Params holds scheduler dependencies and tunables
type Params struct {
	Sources    SourceStore
	Articles   ArticleStore
	Parser     Parser
	Extractor  Extractor // optional, nil disables full-text extraction
	Classifier Classifier
	Trending   TrendingRunner
	Publisher  Publisher

	TrendingInterval time.Duration
	MaxWorkers       int
}

// Scheduler owns one timer per active source plus a trending ticker.
// Start launches the loops, Stop waits for them to drain.
type Scheduler struct {
	sources    SourceStore
	articles   ArticleStore
	parser     Parser
	extractor  Extractor
	classifier Classifier
	trending   TrendingRunner
	publisher  Publisher

	trendingInterval time.Duration
	maxWorkers       int

	mu     sync.Mutex
	states map[int64]SourceState

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler from params, applying defaults
func NewScheduler(p Params) *Scheduler {
	if p.TrendingInterval == 0 {
		p.TrendingInterval = 15 * time.Minute
	}
	if p.MaxWorkers == 0 {
		p.MaxWorkers = 5
	}
	return &Scheduler{
		sources:          p.Sources,
		articles:         p.Articles,
		parser:           p.Parser,
		extractor:        p.Extractor,
		classifier:       p.Classifier,
		trending:         p.Trending,
		publisher:        p.Publisher,
		trendingInterval: p.TrendingInterval,
		maxWorkers:       p.MaxWorkers,
		states:           make(map[int64]SourceState),
	}
}

// Start launches one loop per active source and the trending loop. Returns
// an error when no sources can be listed; individual cycle failures only log.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	sources, err := s.sources.ListSources(ctx, true)
	if err != nil {
		cancel()
		return fmt.Errorf("list sources: %w", err)
	}

	lgr.Printf("[INFO] scheduler starting with %d sources, trending every %v", len(sources), s.trendingInterval)

	for _, src := range sources {
		s.wg.Add(1)
		go func(src *domain.Source) {
			defer s.wg.Done()
			s.sourceLoop(ctx, src)
		}(src)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.trendingLoop(ctx)
	}()

	return nil
}

// Stop cancels all loops and waits for in-flight cycles to finish
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RefreshNow triggers an immediate cycle for every active source. Sources
// with a cycle already in flight are skipped, making concurrent triggers
// safe. Returns the number of cycles actually started.
func (s *Scheduler) RefreshNow(ctx context.Context) (int, error) {
	sources, err := s.sources.ListSources(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("list sources: %w", err)
	}

	started := 0
	for _, src := range sources {
		if s.runCycle(ctx, src) {
			started++
		}
	}
	lgr.Printf("[INFO] manual refresh, %d of %d sources cycled", started, len(sources))
	return started, nil
}

// States returns a snapshot of per-source cycle states keyed by source ID
func (s *Scheduler) States() map[int64]SourceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[int64]SourceState, len(s.states))
	for id, st := range s.states {
		snapshot[id] = st
	}
	return snapshot
}

// sourceLoop runs one fetch cycle immediately, then on every interval tick
func (s *Scheduler) sourceLoop(ctx context.Context, src *domain.Source) {
	interval := src.FetchInterval
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	s.runCycle(ctx, src)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx, src)
		}
	}
}

// runCycle executes one fetch→classify→persist cycle for a source. Returns
// false when a cycle for this source is already in flight.
func (s *Scheduler) runCycle(ctx context.Context, src *domain.Source) bool {
	if !s.transition(src.ID, StateIdle, StateFetching) {
		lgr.Printf("[DEBUG] source %d cycle already in flight, skipping", src.ID)
		return false
	}
	defer s.setState(src.ID, StateIdle)

	candidates, err := s.parser.Fetch(ctx, src)
	if err != nil {
		// unreachable or malformed feeds recover on the next tick
		lgr.Printf("[WARN] fetch %s failed: %v", src.FeedURL, err)
		return true
	}

	s.setState(src.ID, StateClassifying)
	articles := s.classifyAll(ctx, candidates)

	s.setState(src.ID, StatePersisting)
	created := 0
	for _, article := range articles {
		result, err := s.articles.Upsert(ctx, article)
		if err != nil {
			lgr.Printf("[ERROR] upsert %s failed: %v", article.URL, err)
			continue
		}
		if result == domain.UpsertCreated {
			created++
			if s.publisher != nil {
				s.publisher.Publish(domain.Event{Type: domain.EventNewArticle, Payload: article})
			}
		}
	}

	if err := s.sources.UpdateLastFetch(ctx, src.ID, time.Now()); err != nil {
		lgr.Printf("[WARN] update last fetch for source %d failed: %v", src.ID, err)
	}

	lgr.Printf("[INFO] source %q cycle done: %d candidates, %d new", src.Name, len(candidates), created)
	return true
}

// classifyAll turns candidates into classified articles, extracting full
// text concurrently when an extractor is configured
func (s *Scheduler) classifyAll(ctx context.Context, candidates []domain.Candidate) []*domain.Article {
	articles := make([]*domain.Article, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i, candidate := range candidates {
		g.Go(func() error {
			content := candidate.Content
			if content == "" && s.extractor != nil {
				extracted, err := s.extractor.Extract(ctx, candidate.URL)
				if err != nil {
					lgr.Printf("[DEBUG] extraction failed for %s: %v", candidate.URL, err)
				} else {
					content = extracted
				}
			}

			result := s.classifier.Classify(candidate.Title, content)
			articles[i] = &domain.Article{
				SourceID:       candidate.SourceID,
				Title:          candidate.Title,
				URL:            candidate.URL,
				Content:        content,
				Snippet:        candidate.Snippet,
				Category:       result.Category,
				Sentiment:      result.Sentiment,
				SentimentScore: result.SentimentScore,
				Published:      candidate.Published,
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures degrade per candidate

	out := articles[:0]
	for _, a := range articles {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// trendingLoop recomputes all windows on every tick and announces updates
func (s *Scheduler) trendingLoop(ctx context.Context) {
	ticker := time.NewTicker(s.trendingInterval)
	defer ticker.Stop()

	s.runTrending(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runTrending(ctx)
		}
	}
}

func (s *Scheduler) runTrending(ctx context.Context) {
	for _, window := range []domain.Window{domain.WindowToday, domain.WindowWeek, domain.WindowMonth} {
		if _, err := s.trending.Run(ctx, window); err != nil {
			lgr.Printf("[WARN] trending %s failed: %v", window, err)
			return
		}
	}
	if s.publisher != nil {
		s.publisher.Publish(domain.Event{Type: domain.EventTrendingUpdated})
	}
}

// transition moves a source from one state to another atomically, failing
// when the source is not in the expected state
func (s *Scheduler) transition(sourceID int64, from, to SourceState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.states[sourceID]
	if !ok {
		current = StateIdle
	}
	if current != from {
		return false
	}
	s.states[sourceID] = to
	return true
}

func (s *Scheduler) setState(sourceID int64, state SourceState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sourceID] = state
}
