// ABOUTME: In-memory conversation registry guarded by a read/write lock
// ABOUTME: Owns conversation records, their histories, and their event hubs

package room

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// ConversationHubCapacity bounds each conversation's event hub.
	ConversationHubCapacity = 256
	// PresenceHubCapacity bounds the global presence channel.
	PresenceHubCapacity = 128
)

// record owns one conversation, its append-only history, and its hub.
// Records never leave the registry.
type record struct {
	conversation Conversation
	messages     []Message
	hub          *Hub[ChatEvent]
}

// Registry is the process-wide conversation table plus the presence
// aggregator. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*record

	presenceMu  sync.RWMutex
	presence    map[string]PresenceEvent
	presenceHub *Hub[PresenceEvent]

	hubCapacity int
	now         func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithHubCapacity overrides the per-conversation hub capacity.
func WithHubCapacity(n int) Option {
	return func(r *Registry) { r.hubCapacity = n }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		records:     make(map[string]*record),
		presence:    make(map[string]PresenceEvent),
		presenceHub: NewHub[PresenceEvent](PresenceHubCapacity),
		hubCapacity: ConversationHubCapacity,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) nowMS() int64 {
	return r.now().UnixMilli()
}

// Create allocates a new conversation with a fresh id and hub. Duplicate
// participant ids are collapsed, keeping the first occurrence. An empty
// topic falls back to DefaultTopic.
func (r *Registry) Create(participants []Participant, topic string) Conversation {
	if topic == "" {
		topic = DefaultTopic
	}
	seen := make(map[string]struct{}, len(participants))
	deduped := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		deduped = append(deduped, p)
	}

	conv := Conversation{
		ID:           uuid.NewString(),
		Topic:        topic,
		Participants: deduped,
		UpdatedAt:    r.nowMS(),
	}

	r.mu.Lock()
	r.records[conv.ID] = &record{
		conversation: conv,
		hub:          NewHub[ChatEvent](r.hubCapacity),
	}
	r.mu.Unlock()

	return conv
}

// Get returns the conversation with the given id. Absence is not an
// error.
func (r *Registry) Get(id string) (Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return Conversation{}, false
	}
	return rec.conversation, true
}

// List returns every conversation whose participant list contains userID.
func (r *Registry) List(userID string) []Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Conversation
	for _, rec := range r.records {
		if rec.conversation.HasParticipant(userID) {
			out = append(out, rec.conversation)
		}
	}
	return out
}

// Append stores a new message in the conversation's history, bumps its
// updated_at, and publishes a Message event to the hub. The publish
// happens after the table lock is released.
func (r *Registry) Append(conversationID, senderID, body string) (Message, error) {
	msg := Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		TimestampMS:    r.nowMS(),
	}

	r.mu.Lock()
	rec, ok := r.records[conversationID]
	if !ok {
		r.mu.Unlock()
		return Message{}, ErrNotFound
	}
	rec.conversation.UpdatedAt = msg.TimestampMS
	rec.messages = append(rec.messages, msg)
	hub := rec.hub
	r.mu.Unlock()

	hub.Publish(MessageEvent(msg))
	return msg, nil
}

// History returns the conversation's messages, oldest first.
func (r *Registry) History(conversationID string) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Message, len(rec.messages))
	copy(out, rec.messages)
	return out, nil
}

// Subscribe returns a fresh subscription on the conversation's hub, or
// nil if the conversation does not exist. The subscription observes only
// events published after this call.
func (r *Registry) Subscribe(conversationID string) *Subscription[ChatEvent] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[conversationID]
	if !ok {
		return nil
	}
	return rec.hub.Subscribe()
}
