// ABOUTME: HTTP REST API handlers for conversations, messages, and presence
// ABOUTME: JSON endpoints backed by the room registry with bearer auth

package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sefunmi4/ethos-gateway/internal/auth"
	"github.com/sefunmi4/ethos-gateway/internal/room"
)

// ConversationView is a conversation with its message history embedded,
// as returned by the list endpoint.
type ConversationView struct {
	ID           string             `json:"id"`
	Topic        string             `json:"topic"`
	Participants []room.Participant `json:"participants"`
	UpdatedAt    int64              `json:"updated_at"`
	Messages     []room.Message     `json:"messages"`
}

// ListConversationsResponse is the envelope for the list endpoint: all of
// the caller's conversations plus the current presence snapshot.
type ListConversationsResponse struct {
	Conversations []ConversationView   `json:"conversations"`
	Presence      []room.PresenceEvent `json:"presence"`
}

// CreateConversationRequest is the body for creating a conversation.
type CreateConversationRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
	Topic          string   `json:"topic"`
}

// PostMessageRequest is the body for appending a message.
type PostMessageRequest struct {
	Body string `json:"body"`
}

// UpdatePresenceRequest is the body for publishing a presence update.
type UpdatePresenceRequest struct {
	State string `json:"state"`
}

// sendJSONError writes a JSON error response.
func (g *Gateway) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a JSON response with the given status.
func (g *Gateway) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		g.logger.Error("failed to encode response", "error", err)
	}
}

// decodeJSON decodes a request body, rejecting empty bodies.
func decodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return errors.New("invalid JSON body")
	}
	return nil
}

// handleConversations dispatches /api/conversations by method.
func (g *Gateway) handleConversations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		g.handleListConversations(w, r)
	case http.MethodPost:
		g.handleCreateConversation(w, r)
	default:
		g.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleConversationRoutes dispatches /api/conversations/{id}/... paths.
// The stream route authenticates with a query param instead of a bearer
// header, so auth middleware is applied per sub-route.
func (g *Gateway) handleConversationRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/conversations/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		g.sendJSONError(w, http.StatusNotFound, "not found")
		return
	}

	switch parts[1] {
	case "messages":
		g.messagesHandler.ServeHTTP(w, r)
	case "stream":
		g.streamHandler.ServeHTTP(w, r)
	default:
		g.sendJSONError(w, http.StatusNotFound, "not found")
	}
}

// conversationIDFromPath extracts the {id} segment of a conversation route.
func conversationIDFromPath(path string) string {
	rest := strings.TrimPrefix(path, "/api/conversations/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// handleListConversations returns the caller's conversations with their
// histories, plus the current presence snapshot.
func (g *Gateway) handleListConversations(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	conversations := g.registry.List(authCtx.UserID)
	views := make([]ConversationView, 0, len(conversations))
	for _, conv := range conversations {
		history, err := g.registry.History(conv.ID)
		if err != nil {
			// Conversation deleted between list and history; skip it.
			continue
		}
		views = append(views, ConversationView{
			ID:           conv.ID,
			Topic:        conv.Topic,
			Participants: conv.Participants,
			UpdatedAt:    conv.UpdatedAt,
			Messages:     history,
		})
	}

	g.writeJSON(w, http.StatusOK, ListConversationsResponse{
		Conversations: views,
		Presence:      g.registry.PresenceSnapshot(),
	})
}

// handleCreateConversation creates a conversation with the caller
// implicitly included in the participant list.
func (g *Gateway) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	var req CreateConversationRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv := g.createConversation(r.Context(), authCtx, req.ParticipantIDs, req.Topic)
	g.writeJSON(w, http.StatusCreated, conv)
}

// handleConversationMessages serves history reads and message posts for
// one conversation.
func (g *Gateway) handleConversationMessages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		g.handleListMessages(w, r)
	case http.MethodPost:
		g.handlePostMessage(w, r)
	default:
		g.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleListMessages returns a conversation's history, oldest first.
// Only participants may read it.
func (g *Gateway) handleListMessages(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())
	conversationID := conversationIDFromPath(r.URL.Path)

	if err := g.checkMembership(conversationID, authCtx.UserID); err != nil {
		g.writeMembershipError(w, err)
		return
	}

	history, err := g.registry.History(conversationID)
	if err != nil {
		g.sendJSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	g.writeJSON(w, http.StatusOK, history)
}

// handlePostMessage appends a message and echoes the stored result.
func (g *Gateway) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())
	conversationID := conversationIDFromPath(r.URL.Path)

	var req PostMessageRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := g.sendMessage(r.Context(), authCtx, conversationID, req.Body)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			g.sendJSONError(w, http.StatusNotFound, "conversation not found")
			return
		}
		g.logger.Error("appending message failed", "conversation_id", conversationID, "error", err)
		g.sendJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	g.writeJSON(w, http.StatusCreated, msg)
}

// handleUpdatePresence records the caller's presence state.
func (g *Gateway) handleUpdatePresence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		g.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	authCtx := auth.MustFromContext(r.Context())

	var req UpdatePresenceRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		g.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.State == "" {
		g.sendJSONError(w, http.StatusBadRequest, "state is required")
		return
	}

	event := g.registry.UpdatePresence(authCtx.UserID, req.State)
	g.writeJSON(w, http.StatusOK, event)
}

// writeMembershipError maps membership failures onto HTTP status codes.
func (g *Gateway) writeMembershipError(w http.ResponseWriter, err error) {
	if errors.Is(err, room.ErrNotFound) {
		g.sendJSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	g.sendJSONError(w, http.StatusForbidden, "not a participant")
}
