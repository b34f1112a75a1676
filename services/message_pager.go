package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/lior88844/bandly/models"
)

// DefaultPageSize is the message window fetched per page
const DefaultPageSize = 20

// PagerState is the lifecycle of a per-conversation message window.
type PagerState int

const (
	PagerIdle PagerState = iota
	PagerLoadingInitial
	PagerReady
	PagerLoadingOlder
	PagerExhausted
)

func (s PagerState) String() string {
	switch s {
	case PagerIdle:
		return "idle"
	case PagerLoadingInitial:
		return "loading-initial"
	case PagerReady:
		return "ready"
	case PagerLoadingOlder:
		return "loading-older"
	case PagerExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MessageSource supplies message pages in ascending display order.
// ChatService is the production implementation.
type MessageSource interface {
	// LatestMessages returns the newest limit messages, ascending.
	LatestMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error)
	// MessagesBefore returns up to limit messages strictly older than the
	// before cursor, ascending.
	MessagesBefore(ctx context.Context, conversationID, before string, limit int) ([]models.Message, error)
}

// MessagePager maintains one conversation's visible message window: an
// initial newest-page load, backward pagination with an exclusive sort-key
// cursor, and live head updates. Backward fetches are single-flight; a
// trigger while one is in flight is ignored. PinnedToBottom reports whether
// the last change should scroll the view to the bottom, which is true for
// arrival-driven updates and false for older-page loads.
type MessagePager struct {
	source   MessageSource
	pageSize int

	mu             sync.Mutex
	conversationID string
	state          PagerState
	messages       []models.Message
	hasMore        bool
	pinBottom      bool
}

func NewMessagePager(source MessageSource, pageSize int) *MessagePager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &MessagePager{
		source:   source,
		pageSize: pageSize,
		state:    PagerIdle,
	}
}

// Open loads the initial window for conversationID. Opening a different
// conversation first resets all pagination state and discards the cursor.
// An empty feed lands in Ready with zero messages; LoadOlder is then a
// no-op until a message arrives.
func (p *MessagePager) Open(ctx context.Context, conversationID string) error {
	p.mu.Lock()
	if conversationID != p.conversationID {
		p.resetLocked()
		p.conversationID = conversationID
	}
	p.state = PagerLoadingInitial
	p.mu.Unlock()

	page, err := p.source.LatestMessages(ctx, conversationID, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conversationID != conversationID {
		// Conversation switched while the fetch was in flight; drop it.
		return nil
	}
	if err != nil {
		p.state = PagerIdle
		return fmt.Errorf("initial message load failed: %w", err)
	}

	p.messages = page
	p.hasMore = len(page) == p.pageSize
	p.state = PagerReady
	p.pinBottom = true
	return nil
}

// LoadOlder fetches the page strictly older than the oldest held message
// and prepends it. Returns true when a fetch was actually performed.
// A short page transitions to Exhausted and disables further backward
// fetches. Calls while a fetch is in flight, before Open, after
// exhaustion, or with no cursor do nothing.
func (p *MessagePager) LoadOlder(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.state != PagerReady || !p.hasMore || len(p.messages) == 0 {
		p.mu.Unlock()
		return false, nil
	}
	conversationID := p.conversationID
	cursor := p.messages[0].SortKey()
	p.state = PagerLoadingOlder
	p.mu.Unlock()

	page, err := p.source.MessagesBefore(ctx, conversationID, cursor, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conversationID != conversationID || p.state != PagerLoadingOlder {
		return false, nil
	}
	if err != nil {
		p.state = PagerReady
		return true, fmt.Errorf("older message load failed: %w", err)
	}

	p.messages = append(page, p.messages...)
	p.pinBottom = false
	if len(page) < p.pageSize {
		p.hasMore = false
		p.state = PagerExhausted
	} else {
		p.state = PagerReady
	}
	return true, nil
}

// ApplyLatest merges a fresh newest-page window (ascending) delivered by
// the live subscription. Held messages at or after the window's oldest
// timestamp are replaced by the window, so the displayed tail always
// reflects the latest store state while paged-in history survives.
func (p *MessagePager) ApplyLatest(window []models.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == PagerIdle || p.state == PagerLoadingInitial {
		return
	}
	if len(window) == 0 {
		return
	}

	// Merge only; the pager state is untouched so an in-flight backward
	// fetch keeps the single-flight gate closed until it resolves.
	cutoff := window[0].SortKey()
	kept := p.messages[:0]
	for _, m := range p.messages {
		if m.SortKey() < cutoff {
			kept = append(kept, m)
		}
	}
	p.messages = append(kept, window...)
	p.pinBottom = true
}

// Append adds one newly arrived message to the tail. Used when the live
// feed delivers single events instead of a whole window.
func (p *MessagePager) Append(message models.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == PagerIdle || p.state == PagerLoadingInitial {
		return
	}
	for _, m := range p.messages {
		if m.MessageID == message.MessageID {
			return
		}
	}
	p.messages = append(p.messages, message)
	p.pinBottom = true
}

// Reset discards the window, cursor, and conversation binding.
func (p *MessagePager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	p.conversationID = ""
}

func (p *MessagePager) resetLocked() {
	p.state = PagerIdle
	p.messages = nil
	p.hasMore = false
	p.pinBottom = false
}

// Messages returns a copy of the held window in ascending order.
func (p *MessagePager) Messages() []models.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// State returns the current pager state.
func (p *MessagePager) State() PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// PinnedToBottom reports whether the last update should pin the view to
// the bottom.
func (p *MessagePager) PinnedToBottom() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pinBottom
}
