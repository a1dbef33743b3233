package ws

import "sync"

// Event is one store mutation broadcast to connected clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Event types published by the HTTP handlers.
const (
	EventFolderCreated = "folder_created"
	EventFileCreated   = "file_created"
	EventRenamed       = "renamed"
	EventDeleted       = "deleted"
	EventCommentAdded  = "comment_added"
	EventPropertyAdded = "property_added"
	EventTreeImported  = "tree_imported"
)

// Hub fans mutation events out to all subscribed connections. Slow
// subscribers drop events rather than block the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewHub creates an event hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber channel.
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 64)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers an event to every subscriber that has buffer room.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
