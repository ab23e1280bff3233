// ABOUTME: Core domain types for the conversation/presence engine
// ABOUTME: Conversations, messages, presence events, and the ChatEvent union

package room

import "errors"

// ErrNotFound is returned by operations that require an existing
// conversation. Lookups that tolerate absence return a boolean instead.
var ErrNotFound = errors.New("conversation not found")

// DefaultTopic is used when a conversation is created without one.
const DefaultTopic = "Untitled conversation"

// Participant is one member of a conversation, unique by UserID.
type Participant struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// Conversation is a named multi-participant channel. UpdatedAt tracks the
// most recent topic or message activity in unix milliseconds.
type Conversation struct {
	ID           string        `json:"id"`
	Topic        string        `json:"topic"`
	Participants []Participant `json:"participants"`
	UpdatedAt    int64         `json:"updated_at"`
}

// HasParticipant reports whether userID is in the participant list.
func (c Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Message is one immutable entry in a conversation's append-only history.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Body           string `json:"body"`
	TimestampMS    int64  `json:"timestamp_ms"`
}

// PresenceEvent is the latest known presence for a user. The engine keeps
// exactly one per user (last write wins) and treats State opaquely.
type PresenceEvent struct {
	UserID    string `json:"user_id"`
	State     string `json:"state"`
	UpdatedAt int64  `json:"updated_at"`
}

// ChatEvent is the tagged union flowing through every conversation hub.
// Exactly one of Message or Presence is set.
type ChatEvent struct {
	Message  *Message       `json:"message,omitempty"`
	Presence *PresenceEvent `json:"presence,omitempty"`
}

// MessageEvent wraps a message as a ChatEvent.
func MessageEvent(m Message) ChatEvent {
	return ChatEvent{Message: &m}
}

// PresenceChatEvent wraps a presence update as a ChatEvent.
func PresenceChatEvent(p PresenceEvent) ChatEvent {
	return ChatEvent{Presence: &p}
}
