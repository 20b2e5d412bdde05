package domain

import "time"

// Window is a fixed time range over which trending mentions are tallied
type Window string

// trending windows
const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Valid reports whether w is a known window
func (w Window) Valid() bool {
	return w == WindowToday || w == WindowWeek || w == WindowMonth
}

// Bounds returns the [from, to) range for the window ending at now, and the
// immediately preceding equal-length range used for growth comparison.
// "today" is the current UTC calendar day; week and month are trailing ranges.
func (w Window) Bounds(now time.Time) (from, to, prevFrom, prevTo time.Time) {
	now = now.UTC()
	switch w {
	case WindowToday:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		to = from.Add(24 * time.Hour)
	case WindowWeek:
		to = now
		from = to.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		to = now
		from = to.Add(-30 * 24 * time.Hour)
	default:
		to = now
		from = to.Add(-24 * time.Hour)
	}
	length := to.Sub(from)
	prevTo = from
	prevFrom = from.Add(-length)
	return from, to, prevFrom, prevTo
}

// TrendingTopic is one aggregated topic for a window's date bucket.
// Rows for a window are replaced wholesale on each aggregation run.
type TrendingTopic struct {
	ID         int64
	Window     Window
	Date       time.Time
	Topic      string
	Count      int
	Category   Category
	GrowthRate *float64 // percent change vs prior window, nil when prior count is zero
	CreatedAt  time.Time
}
