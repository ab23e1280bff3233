// ABOUTME: Tests for the side-channel event encoding and capture publisher
// ABOUTME: Verifies the tagged envelope shape external consumers rely on

package bus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefunmi4/ethos-gateway/internal/room"
)

func TestEncodeMessageEvent(t *testing.T) {
	event := room.MessageEvent(room.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "alice",
		Body:           "hello",
		TimestampMS:    1234,
	})

	data, err := encodeEvent(event)
	require.NoError(t, err)

	var decoded struct {
		Type    string `json:"type"`
		Payload struct {
			Body     string `json:"body"`
			SenderID string `json:"sender_id"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "message", decoded.Type)
	assert.Equal(t, "hello", decoded.Payload.Body)
	assert.Equal(t, "alice", decoded.Payload.SenderID)
}

func TestEncodePresenceEvent(t *testing.T) {
	event := room.PresenceChatEvent(room.PresenceEvent{
		UserID:    "bob",
		State:     "online",
		UpdatedAt: 1234,
	})

	data, err := encodeEvent(event)
	require.NoError(t, err)

	var decoded struct {
		Type    string `json:"type"`
		Payload struct {
			UserID string `json:"user_id"`
			State  string `json:"state"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "presence", decoded.Type)
	assert.Equal(t, "bob", decoded.Payload.UserID)
	assert.Equal(t, "online", decoded.Payload.State)
}

func TestEncodeEmptyEventFails(t *testing.T) {
	_, err := encodeEvent(room.ChatEvent{})
	assert.Error(t, err)
}

func TestCapturePublisherRecordsEvents(t *testing.T) {
	pub := &CapturePublisher{}

	err := pub.Publish(context.Background(), "conv-1", room.MessageEvent(room.Message{Body: "hi"}))
	require.NoError(t, err)

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "conv-1", events[0].ConversationID)
	assert.Equal(t, "hi", events[0].Event.Message.Body)
}
