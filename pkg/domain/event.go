package domain

import "time"

// EventType identifies a broadcast notification type
type EventType string

// broadcast event types
const (
	EventNewArticle      EventType = "new-article"
	EventTrendingUpdated EventType = "trending-updated"
	EventHeartbeat       EventType = "heartbeat"
)

// Event is a discrete notification delivered best-effort to connected
// listeners. This is not a durable log: a listener connecting late misses
// prior events, and a slow listener may drop some.
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
