// ABOUTME: Server-sent events adapter for conversation streams
// ABOUTME: Replays history, tails the hub, and heartbeats presence snapshots

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sefunmi4/ethos-gateway/internal/auth"
	"github.com/sefunmi4/ethos-gateway/internal/room"
	"github.com/sefunmi4/ethos-gateway/internal/stream"
)

// messagePayload is the SSE data shape for message events.
type messagePayload struct {
	Type    string       `json:"type"`
	Message room.Message `json:"message"`
}

// presencePayload is the SSE data shape for presence events. Presence is
// a single event for live updates and an array for snapshots.
type presencePayload struct {
	Type     string `json:"type"`
	Presence any    `json:"presence"`
}

// handleConversationStream serves one conversation as an SSE stream. The
// token arrives as a query parameter because EventSource cannot set
// headers; QueryAuthMiddleware has already verified it.
func (g *Gateway) handleConversationStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		g.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	authCtx := auth.MustFromContext(r.Context())
	conversationID := conversationIDFromPath(r.URL.Path)

	if err := g.checkMembership(conversationID, authCtx.UserID); err != nil {
		g.writeMembershipError(w, err)
		return
	}

	// Check streaming support before sending headers (fail fast)
	flusher, ok := w.(http.Flusher)
	if !ok {
		g.logger.Error("streaming not supported")
		g.sendJSONError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	g.logger.Info("sse stream opened",
		"conversation_id", conversationID,
		"user_id", authCtx.UserID)

	sink := &sseSink{gateway: g, w: w, flusher: flusher}
	err := g.streamer.Conversation(r.Context(), conversationID, sink, stream.ConversationOptions{
		Heartbeat: g.config.Streams.HeartbeatInterval,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		g.logger.Warn("sse stream ended with error",
			"conversation_id", conversationID,
			"error", err)
		return
	}
	g.logger.Info("sse stream closed", "conversation_id", conversationID)
}

// sseSink serializes protocol events as SSE frames. Events that fail to
// serialize are logged and skipped; they never terminate the stream.
type sseSink struct {
	gateway *Gateway
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *sseSink) SendMessage(m room.Message) error {
	return s.writeEvent("message", messagePayload{Type: "message", Message: m})
}

func (s *sseSink) SendPresence(p room.PresenceEvent) error {
	return s.writeEvent("presence", presencePayload{Type: "presence", Presence: p})
}

func (s *sseSink) SendPresenceSnapshot(events []room.PresenceEvent) error {
	if events == nil {
		events = []room.PresenceEvent{}
	}
	return s.writeEvent("presence", presencePayload{Type: "presence", Presence: events})
}

// writeEvent writes one SSE frame. A marshal failure skips the event; a
// write failure means the client is gone and ends the stream.
func (s *sseSink) writeEvent(event string, data any) error {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		s.gateway.logger.Warn("failed to marshal SSE data", "event", event, "error", err)
		return nil
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, dataJSON); err != nil {
		return fmt.Errorf("writing SSE frame: %w", err)
	}
	s.flusher.Flush()
	return nil
}
