package events

import (
	"sync"
	"time"

	"teamdash/internal/logger"
)

// Roster event types
const (
	MemberAdded   = "member_added"
	MemberUpdated = "member_updated"
	MemberDeleted = "member_deleted"
)

// RosterEvent announces a roster change to connected pages
type RosterEvent struct {
	EventType string    `json:"event_type"`
	MemberID  string    `json:"member_id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub fans roster events out to subscribers. Slow subscribers miss events
// rather than blocking publishers.
type Hub struct {
	mu      sync.RWMutex
	clients map[chan RosterEvent]struct{}
	closed  bool
	buffer  int
	log     *logger.Logger
}

// NewHub creates a hub whose subscriber channels hold up to buffer events
func NewHub(buffer int, log *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = 10
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		clients: make(map[chan RosterEvent]struct{}),
		buffer:  buffer,
		log:     log.With("component", "events"),
	}
}

// Subscribe registers a client. The returned cancel func unregisters it and
// closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan RosterEvent, func()) {
	ch := make(chan RosterEvent, h.buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.clients[ch] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.log.Debug("client subscribed", "clients", total)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.clients[ch]; ok {
				delete(h.clients, ch)
				close(ch)
			}
		})
	}
}

// Publish delivers event to every subscriber without blocking
func (h *Hub) Publish(event RosterEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.clients {
		select {
		case ch <- event:
		default:
			h.log.Warn("client channel full, dropping event", "event_type", event.EventType)
		}
	}
}

// ClientCount returns the number of active subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close unregisters and closes every subscriber; later subscriptions
// receive an already closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}
