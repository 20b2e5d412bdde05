package domain

import "time"

// Source represents a registered feed endpoint. Sources are declared in config
// and mirrored into storage; they are soft-deactivated, never deleted, while
// articles reference them.
type Source struct {
	ID            int64
	Name          string
	URL           string
	FeedURL       string
	Active        bool
	FetchInterval time.Duration
	LastFetchAt   *time.Time
	CreatedAt     time.Time
}
