// ABOUTME: Transport-neutral replay-then-tail streaming protocol
// ABOUTME: Adapters supply a Sink; the streamer drives snapshot and live phases

package stream

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sefunmi4/ethos-gateway/internal/room"
)

// Sink receives the events of one stream. Implementations serialize for
// their transport; a returned error terminates the stream.
type Sink interface {
	SendMessage(room.Message) error
	SendPresence(room.PresenceEvent) error
	SendPresenceSnapshot([]room.PresenceEvent) error
}

// Streamer runs the shared streaming protocol over a registry. Callers
// are expected to have authorized the identity before starting a stream.
type Streamer struct {
	registry *room.Registry
	logger   *slog.Logger
}

// NewStreamer creates a streamer over the given registry.
func NewStreamer(registry *room.Registry, logger *slog.Logger) *Streamer {
	return &Streamer{
		registry: registry,
		logger:   logger.With("component", "stream"),
	}
}

// ConversationOptions tune a conversation stream per transport.
type ConversationOptions struct {
	// MessagesOnly suppresses presence events interleaved on the hub.
	MessagesOnly bool
	// Heartbeat, when positive, emits a full presence snapshot at this
	// interval even when no events arrive.
	Heartbeat time.Duration
}

// Conversation replays the conversation's history, then tails its hub
// until the hub closes, the context ends, or the sink fails. Returns
// room.ErrNotFound if the conversation does not exist. Hub closure is a
// normal end of stream and returns nil.
func (s *Streamer) Conversation(ctx context.Context, conversationID string, sink Sink, opts ConversationOptions) error {
	history, err := s.registry.History(conversationID)
	if err != nil {
		return err
	}
	sub := s.registry.Subscribe(conversationID)
	if sub == nil {
		return room.ErrNotFound
	}

	for _, msg := range history {
		if err := sink.SendMessage(msg); err != nil {
			return err
		}
	}
	if !opts.MessagesOnly {
		if err := sink.SendPresenceSnapshot(s.registry.PresenceSnapshot()); err != nil {
			return err
		}
	}

	events := s.pumpConversation(ctx, conversationID, sub)

	var heartbeat <-chan time.Time
	if opts.Heartbeat > 0 {
		ticker := time.NewTicker(opts.Heartbeat)
		defer ticker.Stop()
		heartbeat = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			switch {
			case event.Message != nil:
				if err := sink.SendMessage(*event.Message); err != nil {
					return err
				}
			case event.Presence != nil && !opts.MessagesOnly:
				if err := sink.SendPresence(*event.Presence); err != nil {
					return err
				}
			}
		case <-heartbeat:
			if err := sink.SendPresenceSnapshot(s.registry.PresenceSnapshot()); err != nil {
				return err
			}
		}
	}
}

// pumpConversation moves hub events onto a channel so the stream loop can
// select across events, heartbeat, and cancellation with a single writer
// to the sink. The channel closes when the hub closes or ctx ends.
func (s *Streamer) pumpConversation(ctx context.Context, conversationID string, sub *room.Subscription[room.ChatEvent]) <-chan room.ChatEvent {
	events := make(chan room.ChatEvent)
	go func() {
		defer close(events)
		for {
			event, err := sub.Recv(ctx)
			if err != nil {
				var lag *room.LagError
				if errors.As(err, &lag) {
					s.logger.Warn("conversation subscriber lagged",
						"conversation_id", conversationID,
						"skipped", lag.Skipped)
					continue
				}
				return
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// Presence emits the current presence snapshot one event at a time, then
// tails the global presence channel. A non-empty userIDs set filters both
// phases to those users.
func (s *Streamer) Presence(ctx context.Context, userIDs []string, sink Sink) error {
	var filter map[string]struct{}
	if len(userIDs) > 0 {
		filter = make(map[string]struct{}, len(userIDs))
		for _, id := range userIDs {
			filter[id] = struct{}{}
		}
	}
	wanted := func(userID string) bool {
		if filter == nil {
			return true
		}
		_, ok := filter[userID]
		return ok
	}

	sub := s.registry.SubscribePresence()

	for _, event := range s.registry.PresenceSnapshot() {
		if !wanted(event.UserID) {
			continue
		}
		if err := sink.SendPresence(event); err != nil {
			return err
		}
	}

	for {
		event, err := sub.Recv(ctx)
		if err != nil {
			var lag *room.LagError
			if errors.As(err, &lag) {
				s.logger.Warn("presence subscriber lagged", "skipped", lag.Skipped)
				continue
			}
			if errors.Is(err, room.ErrHubClosed) {
				return nil
			}
			return err
		}
		if !wanted(event.UserID) {
			continue
		}
		if err := sink.SendPresence(event); err != nil {
			return err
		}
	}
}
