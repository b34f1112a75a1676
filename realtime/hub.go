package realtime

import (
	"sync"

	"github.com/lior88844/bandly/models"
)

// Hub fans stored messages out to per-conversation subscribers. Each
// subscriber owns a buffered channel; a full channel drops the event rather
// than blocking the publisher. Events for one conversation are delivered in
// publish order.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscription]struct{}
}

type subscription struct {
	ch chan models.Message
}

// DefaultBuffer is the per-subscriber channel capacity
const DefaultBuffer = 64

func NewHub() *Hub {
	return &Hub{
		subs: map[string]map[*subscription]struct{}{},
	}
}

// Subscribe registers a listener for one conversation and returns the event
// channel plus an unsubscribe func. Unsubscribe is idempotent and closes
// the channel, so callers can defer it for guaranteed teardown.
func (h *Hub) Subscribe(conversationID string) (<-chan models.Message, func()) {
	sub := &subscription{ch: make(chan models.Message, DefaultBuffer)}

	h.mu.Lock()
	if h.subs[conversationID] == nil {
		h.subs[conversationID] = map[*subscription]struct{}{}
	}
	h.subs[conversationID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[conversationID]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(h.subs, conversationID)
				}
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, unsubscribe
}

// Publish delivers message to every subscriber of its conversation.
func (h *Hub) Publish(conversationID string, message models.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[conversationID] {
		select {
		case sub.ch <- message:
		default:
			// slow subscriber, drop
		}
	}
}

// SubscriberCount reports the live subscribers for a conversation
func (h *Hub) SubscriberCount(conversationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[conversationID])
}
