// ABOUTME: Matrix bridge mirroring gateway conversations into Matrix rooms
// ABOUTME: Best-effort: bridge failures never block or fail message delivery

package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/id"

	"github.com/sefunmi4/ethos-gateway/internal/room"
)

// RoomBridge mirrors conversations into an external chat system. All
// methods are best-effort: the gateway logs failures and moves on.
type RoomBridge interface {
	// EnsureRoom makes sure a counterpart room exists for the conversation.
	EnsureRoom(ctx context.Context, conv room.Conversation) error
	// SendMessage mirrors an accepted message into the counterpart room.
	SendMessage(ctx context.Context, conv room.Conversation, msg room.Message) error
}

// NullBridge is the default when no bridge is configured.
type NullBridge struct{}

func (NullBridge) EnsureRoom(context.Context, room.Conversation) error {
	return nil
}

func (NullBridge) SendMessage(context.Context, room.Conversation, room.Message) error {
	return nil
}

// MatrixBridge mirrors conversations into Matrix rooms, creating one room
// per conversation on demand.
type MatrixBridge struct {
	client *mautrix.Client
	logger *slog.Logger

	mu    sync.Mutex
	rooms map[string]id.RoomID
}

// NewMatrixBridge creates a bridge backed by the given homeserver.
func NewMatrixBridge(homeserver, userID, accessToken string, logger *slog.Logger) (*MatrixBridge, error) {
	client, err := mautrix.NewClient(homeserver, id.UserID(userID), accessToken)
	if err != nil {
		return nil, fmt.Errorf("creating matrix client: %w", err)
	}
	return &MatrixBridge{
		client: client,
		logger: logger.With("component", "matrix-bridge"),
		rooms:  make(map[string]id.RoomID),
	}, nil
}

// EnsureRoom creates the Matrix room for the conversation if it does not
// exist yet.
func (b *MatrixBridge) EnsureRoom(ctx context.Context, conv room.Conversation) error {
	_, err := b.roomFor(ctx, conv)
	return err
}

// SendMessage mirrors the message into the conversation's Matrix room.
func (b *MatrixBridge) SendMessage(ctx context.Context, conv room.Conversation, msg room.Message) error {
	roomID, err := b.roomFor(ctx, conv)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("%s: %s", msg.SenderID, msg.Body)
	if _, err := b.client.SendText(ctx, roomID, text); err != nil {
		return fmt.Errorf("sending to matrix room %s: %w", roomID, err)
	}
	return nil
}

func (b *MatrixBridge) roomFor(ctx context.Context, conv room.Conversation) (id.RoomID, error) {
	b.mu.Lock()
	roomID, ok := b.rooms[conv.ID]
	b.mu.Unlock()
	if ok {
		return roomID, nil
	}

	resp, err := b.client.CreateRoom(ctx, &mautrix.ReqCreateRoom{
		Name:   conv.Topic,
		Preset: "private_chat",
	})
	if err != nil {
		return "", fmt.Errorf("creating matrix room for conversation %s: %w", conv.ID, err)
	}

	b.mu.Lock()
	b.rooms[conv.ID] = resp.RoomID
	b.mu.Unlock()

	b.logger.Info("created matrix room",
		"conversation_id", conv.ID,
		"room_id", resp.RoomID)
	return resp.RoomID, nil
}
