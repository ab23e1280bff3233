// ABOUTME: Tests for the shared streaming protocol
// ABOUTME: Uses an in-memory sink to observe replay, tail, and heartbeat phases

package stream

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefunmi4/ethos-gateway/internal/room"
)

// captureSink records everything a stream sends, optionally failing after
// a fixed number of sends.
type captureSink struct {
	mu        sync.Mutex
	messages  []room.Message
	presence  []room.PresenceEvent
	snapshots [][]room.PresenceEvent
	failAfter int
	sends     int
}

var errSinkFailed = errors.New("sink failed")

func (c *captureSink) send(record func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sends++
	if c.failAfter > 0 && c.sends > c.failAfter {
		return errSinkFailed
	}
	record()
	return nil
}

func (c *captureSink) SendMessage(m room.Message) error {
	return c.send(func() { c.messages = append(c.messages, m) })
}

func (c *captureSink) SendPresence(p room.PresenceEvent) error {
	return c.send(func() { c.presence = append(c.presence, p) })
}

func (c *captureSink) SendPresenceSnapshot(s []room.PresenceEvent) error {
	return c.send(func() { c.snapshots = append(c.snapshots, s) })
}

func (c *captureSink) messageBodies() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	for i, m := range c.messages {
		out[i] = m.Body
	}
	return out
}

func (c *captureSink) snapshotCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snapshots)
}

func newTestStreamer(reg *room.Registry) *Streamer {
	return NewStreamer(reg, slog.New(slog.DiscardHandler))
}

func TestConversationReplaysHistoryThenTails(t *testing.T) {
	reg := room.NewRegistry()
	conv := reg.Create([]room.Participant{{UserID: "alice"}, {UserID: "bob"}}, "topic")

	_, err := reg.Append(conv.ID, "alice", "backlog-1")
	require.NoError(t, err)
	_, err = reg.Append(conv.ID, "alice", "backlog-2")
	require.NoError(t, err)

	sink := &captureSink{}
	streamer := newTestStreamer(reg)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- streamer.Conversation(ctx, conv.ID, sink, ConversationOptions{MessagesOnly: true})
	}()

	// Wait for the backlog, then append a live message.
	require.Eventually(t, func() bool {
		return len(sink.messageBodies()) == 2
	}, time.Second, 5*time.Millisecond)

	_, err = reg.Append(conv.ID, "bob", "hi")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(sink.messageBodies()) == 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, []string{"backlog-1", "backlog-2", "hi"}, sink.messageBodies())
}

func TestConversationMissingReturnsNotFound(t *testing.T) {
	streamer := newTestStreamer(room.NewRegistry())
	err := streamer.Conversation(t.Context(), "missing", &captureSink{}, ConversationOptions{})
	assert.ErrorIs(t, err, room.ErrNotFound)
}

func TestConversationMessagesOnlyFiltersPresence(t *testing.T) {
	reg := room.NewRegistry()
	conv := reg.Create([]room.Participant{{UserID: "alice"}}, "topic")

	sink := &captureSink{}
	streamer := newTestStreamer(reg)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- streamer.Conversation(ctx, conv.ID, sink, ConversationOptions{MessagesOnly: true})
	}()

	reg.UpdatePresence("alice", "online")
	_, err := reg.Append(conv.ID, "alice", "after-presence")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(sink.messageBodies()) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Empty(t, sink.presence)
	assert.Empty(t, sink.snapshots)
}

func TestConversationForwardsPresenceWhenNotFiltered(t *testing.T) {
	reg := room.NewRegistry()
	conv := reg.Create([]room.Participant{{UserID: "alice"}}, "topic")

	sink := &captureSink{}
	streamer := newTestStreamer(reg)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- streamer.Conversation(ctx, conv.ID, sink, ConversationOptions{})
	}()

	// The opening presence snapshot arrives before any live events.
	require.Eventually(t, func() bool {
		return sink.snapshotCount() == 1
	}, time.Second, 5*time.Millisecond)

	reg.UpdatePresence("bob", "online")

	require.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.presence) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, "bob", sink.presence[0].UserID)
}

func TestConversationHeartbeatEmitsSnapshots(t *testing.T) {
	reg := room.NewRegistry()
	conv := reg.Create([]room.Participant{{UserID: "alice"}}, "topic")
	reg.UpdatePresence("alice", "online")

	sink := &captureSink{}
	streamer := newTestStreamer(reg)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- streamer.Conversation(ctx, conv.ID, sink, ConversationOptions{
			Heartbeat: 20 * time.Millisecond,
		})
	}()

	// Opening snapshot plus at least two heartbeats, without any events.
	require.Eventually(t, func() bool {
		return sink.snapshotCount() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestConversationSinkErrorTerminatesStream(t *testing.T) {
	reg := room.NewRegistry()
	conv := reg.Create([]room.Participant{{UserID: "alice"}}, "topic")
	_, err := reg.Append(conv.ID, "alice", "one")
	require.NoError(t, err)
	_, err = reg.Append(conv.ID, "alice", "two")
	require.NoError(t, err)

	sink := &captureSink{failAfter: 1}
	streamer := newTestStreamer(reg)

	err = streamer.Conversation(t.Context(), conv.ID, sink, ConversationOptions{MessagesOnly: true})
	assert.ErrorIs(t, err, errSinkFailed)
	assert.Equal(t, []string{"one"}, sink.messageBodies())
}

func TestPresenceSnapshotThenLive(t *testing.T) {
	reg := room.NewRegistry()
	reg.UpdatePresence("alice", "online")

	sink := &captureSink{}
	streamer := newTestStreamer(reg)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- streamer.Presence(ctx, nil, sink)
	}()

	require.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.presence) == 1
	}, time.Second, 5*time.Millisecond)

	reg.UpdatePresence("bob", "away")

	require.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.presence) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, "alice", sink.presence[0].UserID)
	assert.Equal(t, "bob", sink.presence[1].UserID)
}

func TestPresenceFilterLimitsBothPhases(t *testing.T) {
	reg := room.NewRegistry()
	reg.UpdatePresence("alice", "online")
	reg.UpdatePresence("bob", "online")

	sink := &captureSink{}
	streamer := newTestStreamer(reg)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- streamer.Presence(ctx, []string{"bob"}, sink)
	}()

	require.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.presence) == 1
	}, time.Second, 5*time.Millisecond)

	reg.UpdatePresence("alice", "away")
	reg.UpdatePresence("bob", "away")

	require.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.presence) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for _, event := range sink.presence {
		assert.Equal(t, "bob", event.UserID)
	}
}
