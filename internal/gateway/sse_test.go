// ABOUTME: Tests for the SSE streaming adapter
// ABOUTME: Exercises auth, membership, replay, live tail, and heartbeat over a real server

package gateway

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefunmi4/ethos-gateway/internal/room"
)

// sseFrame is one parsed server-sent event.
type sseFrame struct {
	Event string
	Data  string
}

// readFrame reads the next SSE frame, failing the test on timeout via the
// request context deadline set by the caller.
func readFrame(t *testing.T, reader *bufio.Reader) sseFrame {
	t.Helper()
	var frame sseFrame
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err, "reading SSE stream")
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "" && frame.Event != "":
			return frame
		case strings.HasPrefix(line, "event: "):
			frame.Event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			frame.Data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func openStream(t *testing.T, server *httptest.Server, conversationID, token string) (*bufio.Reader, func()) {
	t.Helper()
	url := server.URL + "/api/conversations/" + conversationID + "/stream?token=" + token
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	client := &http.Client{Timeout: 0}
	resp, err := client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	return bufio.NewReader(resp.Body), func() { _ = resp.Body.Close() }
}

func TestSSEStreamRequiresToken(t *testing.T) {
	gw := newTestGateway(t)
	server := httptest.NewServer(gw.httpServer.Handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/conversations/abc/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSSEStreamMembershipChecks(t *testing.T) {
	gw := newTestGateway(t)
	server := httptest.NewServer(gw.httpServer.Handler)
	defer server.Close()

	aliceToken := tokenFor(t, "alice", "Alice")
	carolToken := tokenFor(t, "carol", "Carol")
	conv := createTestConversation(t, gw, aliceToken, nil, "topic")

	resp, err := http.Get(server.URL + "/api/conversations/missing/stream?token=" + aliceToken)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/conversations/" + conv.ID + "/stream?token=" + carolToken)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSSEStreamReplayThenLive(t *testing.T) {
	gw := newTestGateway(t)
	server := httptest.NewServer(gw.httpServer.Handler)
	defer server.Close()

	token := tokenFor(t, "alice", "Alice")
	conv := createTestConversation(t, gw, token, []string{"bob"}, "topic")

	rec := doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", token, PostMessageRequest{Body: "backlog"})
	require.Equal(t, http.StatusCreated, rec.Code)

	reader, closeStream := openStream(t, server, conv.ID, token)
	defer closeStream()

	// Backlog message first.
	frame := readFrame(t, reader)
	assert.Equal(t, "message", frame.Event)

	var msgPayload struct {
		Type    string       `json:"type"`
		Message room.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(frame.Data), &msgPayload))
	assert.Equal(t, "message", msgPayload.Type)
	assert.Equal(t, "backlog", msgPayload.Message.Body)

	// Presence snapshot follows the backlog, as an array.
	frame = readFrame(t, reader)
	assert.Equal(t, "presence", frame.Event)

	var snapPayload struct {
		Type     string               `json:"type"`
		Presence []room.PresenceEvent `json:"presence"`
	}
	require.NoError(t, json.Unmarshal([]byte(frame.Data), &snapPayload))
	assert.Equal(t, "presence", snapPayload.Type)

	// A live message arrives without re-polling.
	rec = doJSON(t, gw.httpServer.Handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", token, PostMessageRequest{Body: "live"})
	require.Equal(t, http.StatusCreated, rec.Code)

	frame = readFrame(t, reader)
	assert.Equal(t, "message", frame.Event)
	require.NoError(t, json.Unmarshal([]byte(frame.Data), &msgPayload))
	assert.Equal(t, "live", msgPayload.Message.Body)
}

func TestSSEStreamForwardsLivePresence(t *testing.T) {
	gw := newTestGateway(t)
	server := httptest.NewServer(gw.httpServer.Handler)
	defer server.Close()

	token := tokenFor(t, "alice", "Alice")
	conv := createTestConversation(t, gw, token, nil, "topic")

	reader, closeStream := openStream(t, server, conv.ID, token)
	defer closeStream()

	// Skip the opening snapshot.
	frame := readFrame(t, reader)
	require.Equal(t, "presence", frame.Event)

	gw.registry.UpdatePresence("bob", "online")

	frame = readFrame(t, reader)
	assert.Equal(t, "presence", frame.Event)

	// Live presence arrives as a single event object.
	var livePayload struct {
		Type     string             `json:"type"`
		Presence room.PresenceEvent `json:"presence"`
	}
	require.NoError(t, json.Unmarshal([]byte(frame.Data), &livePayload))
	assert.Equal(t, "bob", livePayload.Presence.UserID)
	assert.Equal(t, "online", livePayload.Presence.State)
}

func TestSSEStreamHeartbeat(t *testing.T) {
	cfg := testConfig()
	cfg.Streams.HeartbeatInterval = 50 * time.Millisecond
	gw, err := New(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	server := httptest.NewServer(gw.httpServer.Handler)
	defer server.Close()

	token := tokenFor(t, "alice", "Alice")
	conv := createTestConversation(t, gw, token, nil, "topic")

	reader, closeStream := openStream(t, server, conv.ID, token)
	defer closeStream()

	// Opening snapshot plus at least two heartbeats, with no activity.
	for range 3 {
		frame := readFrame(t, reader)
		assert.Equal(t, "presence", frame.Event)
	}
}
