package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-pkgz/lgr"
)

// eventsHandler streams live events over server-sent events. Delivery is
// best-effort: a client connecting late misses earlier events, and the
// notifier drops events for clients that stop reading.
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		renderError(w, r, fmt.Errorf("streaming unsupported"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := s.notifier.Subscribe()
	defer s.notifier.Unsubscribe(sub)

	lgr.Printf("[DEBUG] sse client connected, %d active", s.notifier.SubscriberCount())
	defer lgr.Printf("[DEBUG] sse client disconnected")

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				lgr.Printf("[WARN] can't marshal event: %v", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
