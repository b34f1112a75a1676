package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lior88844/bandly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedSource serves an in-memory ascending feed the way the store would:
// newest page first, exclusive backward cursor.
type feedSource struct {
	mu       sync.Mutex
	messages []models.Message // ascending
	fetches  int
	gate     chan struct{} // when set, fetches block until released
}

func (f *feedSource) LatestMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error) {
	f.mu.Lock()
	f.fetches++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	start := len(f.messages) - limit
	if start < 0 {
		start = 0
	}
	return append([]models.Message(nil), f.messages[start:]...), nil
}

func (f *feedSource) MessagesBefore(ctx context.Context, conversationID, before string, limit int) ([]models.Message, error) {
	f.mu.Lock()
	f.fetches++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	end := 0
	for end < len(f.messages) && f.messages[end].SortKey() < before {
		end++
	}
	start := end - limit
	if start < 0 {
		start = 0
	}
	return append([]models.Message(nil), f.messages[start:end]...), nil
}

func makeFeed(n int) []models.Message {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := make([]models.Message, n)
	for i := range messages {
		messages[i] = models.Message{
			ConversationID: "alice_bob",
			MessageID:      fmt.Sprintf("m-%03d", i),
			SenderID:       "alice",
			Text:           fmt.Sprintf("message %d", i),
			CreatedAt:      models.FormatMessageTime(base.Add(time.Duration(i) * time.Second)),
		}
	}
	return messages
}

func assertAscendingNoDuplicates(t *testing.T, messages []models.Message) {
	t.Helper()
	seen := map[string]bool{}
	for i, m := range messages {
		require.False(t, seen[m.MessageID], "duplicate message %s", m.MessageID)
		seen[m.MessageID] = true
		if i > 0 {
			require.Less(t, messages[i-1].CreatedAt, m.CreatedAt)
		}
	}
}

func TestPagerWalksBackwardThroughFeed(t *testing.T) {
	source := &feedSource{messages: makeFeed(45)}
	pager := NewMessagePager(source, DefaultPageSize)

	require.NoError(t, pager.Open(context.Background(), "alice_bob"))
	assert.Equal(t, PagerReady, pager.State())

	held := pager.Messages()
	require.Len(t, held, 20)
	assertAscendingNoDuplicates(t, held)
	assert.Equal(t, "m-025", held[0].MessageID)
	assert.Equal(t, "m-044", held[19].MessageID)
	assert.True(t, pager.PinnedToBottom())

	// First backward page: 20 more, still Ready
	fetched, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, PagerReady, pager.State())

	held = pager.Messages()
	require.Len(t, held, 40)
	assertAscendingNoDuplicates(t, held)
	assert.Equal(t, "m-005", held[0].MessageID)
	assert.False(t, pager.PinnedToBottom())

	// Second backward page: remaining 5, Exhausted
	fetched, err = pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, PagerExhausted, pager.State())

	held = pager.Messages()
	require.Len(t, held, 45)
	assertAscendingNoDuplicates(t, held)
	assert.Equal(t, "m-000", held[0].MessageID)

	// Third trigger performs no fetch
	before := source.fetches
	fetched, err = pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Equal(t, before, source.fetches)
}

func TestPagerSingleFlight(t *testing.T) {
	source := &feedSource{messages: makeFeed(45)}
	pager := NewMessagePager(source, DefaultPageSize)
	require.NoError(t, pager.Open(context.Background(), "alice_bob"))

	initialFetches := source.fetches

	gate := make(chan struct{})
	source.mu.Lock()
	source.gate = gate
	source.mu.Unlock()

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		fetched, err := pager.LoadOlder(context.Background())
		assert.True(t, fetched)
		assert.NoError(t, err)
		close(done)
	}()

	<-started
	// Wait for the in-flight fetch to register
	require.Eventually(t, func() bool {
		source.mu.Lock()
		defer source.mu.Unlock()
		return source.fetches == initialFetches+1
	}, time.Second, time.Millisecond)

	// Second rapid trigger is suppressed while the first is unresolved
	fetched, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)

	source.mu.Lock()
	source.gate = nil
	source.mu.Unlock()
	close(gate)
	<-done

	assert.Equal(t, initialFetches+1, source.fetches)
	assert.Len(t, pager.Messages(), 40)
}

func TestPagerLiveWindowDuringBackwardFetchKeepsGateClosed(t *testing.T) {
	feed := makeFeed(45)
	source := &feedSource{messages: feed}
	pager := NewMessagePager(source, DefaultPageSize)
	require.NoError(t, pager.Open(context.Background(), "alice_bob"))

	gate := make(chan struct{})
	source.mu.Lock()
	source.gate = gate
	baseline := source.fetches
	source.mu.Unlock()

	done := make(chan struct{})
	go func() {
		fetched, err := pager.LoadOlder(context.Background())
		assert.True(t, fetched)
		assert.NoError(t, err)
		close(done)
	}()

	require.Eventually(t, func() bool {
		source.mu.Lock()
		defer source.mu.Unlock()
		return source.fetches == baseline+1
	}, time.Second, time.Millisecond)

	// A live newest-page window lands while the backward fetch is still
	// unresolved. The merge must not reopen the single-flight gate.
	newest := models.Message{
		ConversationID: "alice_bob",
		MessageID:      "m-045",
		SenderID:       "bob",
		Text:           "fresh",
		CreatedAt:      models.FormatMessageTime(time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC)),
	}
	window := append(append([]models.Message(nil), feed[26:]...), newest)
	pager.ApplyLatest(window)
	assert.Equal(t, PagerLoadingOlder, pager.State())

	fetched, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched, "re-trigger after the live update stays suppressed")

	source.mu.Lock()
	source.gate = nil
	source.mu.Unlock()
	close(gate)
	<-done

	source.mu.Lock()
	fetches := source.fetches
	source.mu.Unlock()
	assert.Equal(t, baseline+1, fetches)

	held := pager.Messages()
	assertAscendingNoDuplicates(t, held)
	assert.Equal(t, "m-005", held[0].MessageID, "backward page landed")
	assert.Equal(t, "m-045", held[len(held)-1].MessageID, "live tail landed")
	assert.Equal(t, PagerReady, pager.State())
}

func TestPagerPaginatesAcrossTimestampTie(t *testing.T) {
	feed := makeFeed(25)
	// Two adjacent messages written in the same instant, straddling the
	// initial page boundary. The composite cursor keeps them apart.
	feed[4].CreatedAt = feed[5].CreatedAt
	source := &feedSource{messages: feed}
	pager := NewMessagePager(source, DefaultPageSize)

	require.NoError(t, pager.Open(context.Background(), "alice_bob"))
	require.Len(t, pager.Messages(), 20)

	fetched, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, PagerExhausted, pager.State())

	held := pager.Messages()
	require.Len(t, held, 25)
	seen := map[string]bool{}
	for _, m := range held {
		require.False(t, seen[m.MessageID], "duplicate message %s", m.MessageID)
		seen[m.MessageID] = true
	}
	assert.Equal(t, "m-000", held[0].MessageID)
	assert.Equal(t, "m-004", held[4].MessageID, "tied message is not skipped")
}

func TestPagerEmptyConversation(t *testing.T) {
	source := &feedSource{}
	pager := NewMessagePager(source, DefaultPageSize)

	require.NoError(t, pager.Open(context.Background(), "alice_bob"))
	assert.Equal(t, PagerReady, pager.State())
	assert.Empty(t, pager.Messages())

	// No cursor, so backward pagination is a no-op
	before := source.fetches
	fetched, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Equal(t, before, source.fetches)
}

func TestPagerSwitchingConversationResets(t *testing.T) {
	source := &feedSource{messages: makeFeed(45)}
	pager := NewMessagePager(source, DefaultPageSize)

	require.NoError(t, pager.Open(context.Background(), "alice_bob"))
	_, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	require.Len(t, pager.Messages(), 40)

	require.NoError(t, pager.Open(context.Background(), "alice_carol"))
	held := pager.Messages()
	assert.Len(t, held, 20, "held window restarts from the initial page")
	assert.Equal(t, PagerReady, pager.State())
}

func TestPagerResetDiscardsState(t *testing.T) {
	source := &feedSource{messages: makeFeed(30)}
	pager := NewMessagePager(source, DefaultPageSize)

	require.NoError(t, pager.Open(context.Background(), "alice_bob"))
	pager.Reset()

	assert.Equal(t, PagerIdle, pager.State())
	assert.Empty(t, pager.Messages())

	fetched, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)
}

func TestPagerApplyLatestPinsBottomAndKeepsHistory(t *testing.T) {
	feed := makeFeed(45)
	source := &feedSource{messages: feed}
	pager := NewMessagePager(source, DefaultPageSize)

	require.NoError(t, pager.Open(context.Background(), "alice_bob"))
	_, err := pager.LoadOlder(context.Background())
	require.NoError(t, err)
	require.False(t, pager.PinnedToBottom())

	// A new message arrives; the live window is the fresh newest 20
	newest := models.Message{
		ConversationID: "alice_bob",
		MessageID:      "m-045",
		SenderID:       "bob",
		Text:           "brand new",
		CreatedAt:      models.FormatMessageTime(time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC)),
	}
	window := append(append([]models.Message(nil), feed[26:]...), newest)
	pager.ApplyLatest(window)

	held := pager.Messages()
	assertAscendingNoDuplicates(t, held)
	assert.Len(t, held, 41)
	assert.Equal(t, "m-005", held[0].MessageID, "paged-in history survives")
	assert.Equal(t, "m-045", held[len(held)-1].MessageID)
	assert.True(t, pager.PinnedToBottom())
}

func TestPagerAppendDeduplicates(t *testing.T) {
	source := &feedSource{messages: makeFeed(5)}
	pager := NewMessagePager(source, DefaultPageSize)
	require.NoError(t, pager.Open(context.Background(), "alice_bob"))

	arrival := models.Message{
		ConversationID: "alice_bob",
		MessageID:      "m-new",
		CreatedAt:      models.FormatMessageTime(time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)),
		Text:           "hi",
	}
	pager.Append(arrival)
	pager.Append(arrival)

	held := pager.Messages()
	assert.Len(t, held, 6)
	assert.Equal(t, "m-new", held[5].MessageID)
	assert.True(t, pager.PinnedToBottom())
}
