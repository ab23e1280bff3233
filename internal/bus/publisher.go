// ABOUTME: Side-channel event publishing for external consumers
// ABOUTME: Mirrors accepted chat events onto NATS subjects, best-effort

package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/sefunmi4/ethos-gateway/internal/room"
)

// Publisher mirrors chat events onto an external bus. Failures are the
// caller's to log and swallow: the in-process fan-out is the source of
// truth and the side channel is best-effort.
type Publisher interface {
	Publish(ctx context.Context, conversationID string, event room.ChatEvent) error
	Close()
}

// envelope is the wire shape on the bus: a type tag plus the payload.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encodeEvent(event room.ChatEvent) ([]byte, error) {
	var env envelope
	switch {
	case event.Message != nil:
		payload, err := json.Marshal(event.Message)
		if err != nil {
			return nil, fmt.Errorf("encoding message payload: %w", err)
		}
		env = envelope{Type: "message", Payload: payload}
	case event.Presence != nil:
		payload, err := json.Marshal(event.Presence)
		if err != nil {
			return nil, fmt.Errorf("encoding presence payload: %w", err)
		}
		env = envelope{Type: "presence", Payload: payload}
	default:
		return nil, fmt.Errorf("empty chat event")
	}
	return json.Marshal(env)
}

// NATSPublisher publishes events to <prefix>.<conversation_id>.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url, subjectPrefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("ethos-gateway"))
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	return &NATSPublisher{conn: conn, prefix: subjectPrefix}, nil
}

// Publish sends the event to the conversation's subject.
func (p *NATSPublisher) Publish(_ context.Context, conversationID string, event room.ChatEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}
	subject := p.prefix + "." + conversationID
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}

// Close drains the connection, flushing any buffered publishes.
func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}

// NoopPublisher discards every event. Used when no bus is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, room.ChatEvent) error { return nil }
func (NoopPublisher) Close()                                               {}

// CapturePublisher records published events for tests.
type CapturePublisher struct {
	mu     sync.Mutex
	events []CapturedEvent
}

// CapturedEvent pairs an event with the conversation it was published for.
type CapturedEvent struct {
	ConversationID string
	Event          room.ChatEvent
}

func (p *CapturePublisher) Publish(_ context.Context, conversationID string, event room.ChatEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, CapturedEvent{ConversationID: conversationID, Event: event})
	return nil
}

func (p *CapturePublisher) Close() {}

// Events returns a copy of everything published so far.
func (p *CapturePublisher) Events() []CapturedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]CapturedEvent, len(p.events))
	copy(out, p.events)
	return out
}
