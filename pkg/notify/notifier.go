// Package notify fans out live platform events to subscribers on a
// best-effort basis. Delivery is at-most-once: a subscriber that cannot keep
// up loses events instead of slowing anyone else down.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/techpulse/techpulse/pkg/domain"
)

const defaultBufferSize = 16

// Notifier broadcasts events to subscriber channels. Zero value is not
// usable, create with NewNotifier.
type Notifier struct {
	mu          sync.Mutex
	subscribers map[chan domain.Event]struct{}
	bufferSize  int
	dropped     int64
}

// NewNotifier creates a notifier with the given per-subscriber buffer size
func NewNotifier(bufferSize int) *Notifier {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Notifier{
		subscribers: make(map[chan domain.Event]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a new listener and returns its channel. The caller
// must Unsubscribe when done or the channel leaks.
func (n *Notifier) Subscribe() chan domain.Event {
	ch := make(chan domain.Event, n.bufferSize)
	n.mu.Lock()
	n.subscribers[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel
func (n *Notifier) Unsubscribe(ch chan domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subscribers[ch]; !ok {
		return
	}
	delete(n.subscribers, ch)
	close(ch)
}

// Publish delivers an event to every subscriber without blocking. Events to
// subscribers with full buffers are dropped.
func (n *Notifier) Publish(event domain.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			n.dropped++
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (n *Notifier) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}

// DroppedCount returns the total number of events dropped on full buffers
func (n *Notifier) DroppedCount() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dropped
}

// RunHeartbeat publishes a heartbeat event on every tick until the context
// is canceled. Lets subscribers detect a dead connection.
func (n *Notifier) RunHeartbeat(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lgr.Printf("[DEBUG] heartbeat started, interval %v", interval)
	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[DEBUG] heartbeat stopped")
			return
		case <-ticker.C:
			n.Publish(domain.Event{Type: domain.EventHeartbeat})
		}
	}
}
