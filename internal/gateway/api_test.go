// ABOUTME: Tests for the HTTP REST API handlers
// ABOUTME: Exercises conversation CRUD, messages, and presence over httptest

package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefunmi4/ethos-gateway/internal/auth"
	"github.com/sefunmi4/ethos-gateway/internal/bus"
	"github.com/sefunmi4/ethos-gateway/internal/config"
	"github.com/sefunmi4/ethos-gateway/internal/room"
)

const testJWTSecret = "test-secret-key-for-jwt-signing"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			GRPCAddr: "127.0.0.1:0",
			HTTPAddr: "127.0.0.1:0",
		},
		Auth: config.AuthConfig{JWTSecret: testJWTSecret},
		Streams: config.StreamsConfig{
			HubCapacity:       config.DefaultHubCapacity,
			HeartbeatInterval: config.DefaultHeartbeatInterval,
		},
	}
}

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	gw, err := New(testConfig(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return gw
}

func tokenFor(t *testing.T, userID, displayName string) string {
	t.Helper()
	verifier := auth.NewJWTVerifier([]byte(testJWTSecret))
	token, err := verifier.Generate(auth.Claims{Subject: userID, DisplayName: displayName}, time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, handler http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func createTestConversation(t *testing.T, gw *Gateway, token string, participants []string, topic string) room.Conversation {
	t.Helper()
	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations", token, CreateConversationRequest{
		ParticipantIDs: participants,
		Topic:          topic,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var conv room.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))
	return conv
}

func TestCreateConversationAddsCaller(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	conv := createTestConversation(t, gw, token, []string{"bob"}, "standup")

	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, "standup", conv.Topic)
	require.Len(t, conv.Participants, 2)
	assert.True(t, conv.HasParticipant("alice"))
	assert.True(t, conv.HasParticipant("bob"))
}

func TestCreateConversationDefaultTopic(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	conv := createTestConversation(t, gw, token, nil, "")
	assert.Equal(t, room.DefaultTopic, conv.Topic)
}

func TestListConversationsFiltersByCaller(t *testing.T) {
	gw := newTestGateway(t)
	aliceToken := tokenFor(t, "alice", "Alice")
	carolToken := tokenFor(t, "carol", "Carol")

	conv := createTestConversation(t, gw, aliceToken, []string{"bob"}, "shared")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListConversationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, conv.ID, resp.Conversations[0].ID)

	rec = doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations", carolToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Conversations)
}

func TestListConversationsIncludesHistoryAndPresence(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	conv := createTestConversation(t, gw, token, nil, "topic")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", token, PostMessageRequest{Body: "hello"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/presence", token, UpdatePresenceRequest{State: "online"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListConversationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Conversations, 1)
	require.Len(t, resp.Conversations[0].Messages, 1)
	assert.Equal(t, "hello", resp.Conversations[0].Messages[0].Body)
	require.Len(t, resp.Presence, 1)
	assert.Equal(t, "alice", resp.Presence[0].UserID)
	assert.Equal(t, "online", resp.Presence[0].State)
}

func TestPostMessageEchoesStoredMessage(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")
	conv := createTestConversation(t, gw, token, nil, "topic")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", token, PostMessageRequest{Body: "hi there"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var msg room.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, conv.ID, msg.ConversationID)
	assert.Equal(t, "alice", msg.SenderID)
	assert.Equal(t, "hi there", msg.Body)
}

func TestPostMessageToMissingConversation(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations/missing/messages", token, PostMessageRequest{Body: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostMessagePublishesToSideChannel(t *testing.T) {
	gw := newTestGateway(t)
	capture := &bus.CapturePublisher{}
	gw.publisher = capture

	token := tokenFor(t, "alice", "Alice")
	conv := createTestConversation(t, gw, token, nil, "topic")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", token, PostMessageRequest{Body: "hi"})
	require.Equal(t, http.StatusCreated, rec.Code)

	events := capture.Events()
	require.Len(t, events, 1)
	assert.Equal(t, conv.ID, events[0].ConversationID)
	require.NotNil(t, events[0].Event.Message)
	assert.Equal(t, "hi", events[0].Event.Message.Body)
}

func TestListMessagesRequiresMembership(t *testing.T) {
	gw := newTestGateway(t)
	aliceToken := tokenFor(t, "alice", "Alice")
	carolToken := tokenFor(t, "carol", "Carol")
	conv := createTestConversation(t, gw, aliceToken, []string{"bob"}, "topic")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations/"+conv.ID+"/messages", carolToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations/missing/messages", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations/"+conv.ID+"/messages", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []room.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Empty(t, history)
}

func TestUpdatePresenceLastWriteWins(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/presence", token, UpdatePresenceRequest{State: "online"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/presence", token, UpdatePresenceRequest{State: "away"})
	require.Equal(t, http.StatusOK, rec.Code)

	snapshot := gw.registry.PresenceSnapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "away", snapshot[0].State)
}

func TestUpdatePresenceRequiresState(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/presence", token, UpdatePresenceRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIRequiresAuth(t *testing.T) {
	gw := newTestGateway(t)

	for _, target := range []string{"/api/conversations", "/api/presence"} {
		rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, target, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestHealthEndpoints(t *testing.T) {
	gw := newTestGateway(t)

	rec := doJSON(t, gw.httpServer.Handler, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, gw.httpServer.Handler, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownConversationSubroute(t *testing.T) {
	gw := newTestGateway(t)
	token := tokenFor(t, "alice", "Alice")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodGet, "/api/conversations/abc/unknown", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
