// ABOUTME: ConversationsService gRPC implementation over the room registry
// ABOUTME: Unary conversation ops plus server-streaming message and presence feeds

package gateway

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sefunmi4/ethos-gateway/internal/auth"
	"github.com/sefunmi4/ethos-gateway/internal/room"
	"github.com/sefunmi4/ethos-gateway/internal/stream"
	pb "github.com/sefunmi4/ethos-gateway/proto/ethos"
)

// conversationsServer implements the ConversationsService gRPC service.
type conversationsServer struct {
	pb.UnimplementedConversationsServiceServer
	gateway *Gateway
	logger  *slog.Logger
}

// newConversationsServer creates a new ConversationsService instance.
func newConversationsServer(gw *Gateway, logger *slog.Logger) *conversationsServer {
	return &conversationsServer{
		gateway: gw,
		logger:  logger,
	}
}

// authorizeMember maps membership failures onto gRPC status codes.
func (g *Gateway) authorizeMember(authCtx *auth.AuthContext, conversationID string) error {
	switch err := g.checkMembership(conversationID, authCtx.UserID); {
	case err == nil:
		return nil
	case errors.Is(err, room.ErrNotFound):
		return status.Error(codes.NotFound, "conversation not found")
	default:
		return status.Error(codes.PermissionDenied, "not a participant")
	}
}

// identity returns the authenticated identity, or Unauthenticated if the
// interceptor did not populate one.
func identity(ctx context.Context) (*auth.AuthContext, error) {
	authCtx := auth.FromContext(ctx)
	if authCtx == nil {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}
	return authCtx, nil
}

// ListConversations returns every conversation the caller participates in.
func (s *conversationsServer) ListConversations(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	authCtx, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	conversations := s.gateway.registry.List(authCtx.UserID)
	resp := &pb.ListConversationsResponse{
		Conversations: make([]*pb.Conversation, len(conversations)),
	}
	for i, conv := range conversations {
		resp.Conversations[i] = conversationToProto(conv)
	}
	return resp, nil
}

// CreateConversation creates a conversation. The caller is added to the
// participant list if the request omitted them.
func (s *conversationsServer) CreateConversation(ctx context.Context, req *pb.CreateConversationRequest) (*pb.CreateConversationResponse, error) {
	authCtx, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	conv := s.gateway.createConversation(ctx, authCtx, req.GetParticipantUserIds(), req.GetTopic())
	return &pb.CreateConversationResponse{Conversation: conversationToProto(conv)}, nil
}

// SendMessage appends a message and echoes the stored result.
func (s *conversationsServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	authCtx, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.gateway.sendMessage(ctx, authCtx, req.GetConversationId(), req.GetBody())
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "conversation not found")
		}
		return nil, status.Errorf(codes.Internal, "appending message: %v", err)
	}
	return &pb.SendMessageResponse{Message: messageToProto(msg)}, nil
}

// StreamMessages replays the conversation history, then forwards live
// messages until the client disconnects.
func (s *conversationsServer) StreamMessages(req *pb.StreamMessagesRequest, ss pb.ConversationsService_StreamMessagesServer) error {
	ctx := ss.Context()
	authCtx, err := identity(ctx)
	if err != nil {
		return err
	}

	conversationID := req.GetConversationId()
	if err := s.gateway.authorizeMember(authCtx, conversationID); err != nil {
		return err
	}

	s.logger.Info("message stream opened",
		"conversation_id", conversationID,
		"user_id", authCtx.UserID)

	sink := &grpcMessageSink{stream: ss}
	err = s.gateway.streamer.Conversation(ctx, conversationID, sink, stream.ConversationOptions{
		MessagesOnly: true,
	})
	return s.finishStream(err)
}

// StreamPresence emits the current presence snapshot, then forwards live
// presence updates, optionally filtered to the requested users.
func (s *conversationsServer) StreamPresence(req *pb.StreamPresenceRequest, ss pb.ConversationsService_StreamPresenceServer) error {
	ctx := ss.Context()
	authCtx, err := identity(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("presence stream opened", "user_id", authCtx.UserID)

	sink := &grpcPresenceSink{stream: ss}
	err = s.gateway.streamer.Presence(ctx, req.GetUserIds(), sink)
	return s.finishStream(err)
}

// finishStream maps stream termination causes onto gRPC status. Client
// disconnect and hub closure are normal ends of stream.
func (s *conversationsServer) finishStream(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil
	case errors.Is(err, room.ErrNotFound):
		return status.Error(codes.NotFound, "conversation not found")
	default:
		return status.Errorf(codes.Internal, "stream failed: %v", err)
	}
}

// grpcMessageSink adapts a StreamMessages server stream to the protocol
// sink. Presence never reaches it because the stream is messages-only.
type grpcMessageSink struct {
	stream pb.ConversationsService_StreamMessagesServer
}

func (s *grpcMessageSink) SendMessage(m room.Message) error {
	return s.stream.Send(&pb.StreamMessagesResponse{Message: messageToProto(m)})
}

func (s *grpcMessageSink) SendPresence(room.PresenceEvent) error { return nil }

func (s *grpcMessageSink) SendPresenceSnapshot([]room.PresenceEvent) error { return nil }

// grpcPresenceSink adapts a StreamPresence server stream to the protocol
// sink. Snapshot entries arrive as individual events.
type grpcPresenceSink struct {
	stream pb.ConversationsService_StreamPresenceServer
}

func (s *grpcPresenceSink) SendMessage(room.Message) error { return nil }

func (s *grpcPresenceSink) SendPresence(p room.PresenceEvent) error {
	return s.stream.Send(&pb.StreamPresenceResponse{Event: presenceToProto(p)})
}

func (s *grpcPresenceSink) SendPresenceSnapshot([]room.PresenceEvent) error { return nil }

func conversationToProto(c room.Conversation) *pb.Conversation {
	participants := make([]*pb.Participant, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = &pb.Participant{
			UserId:      p.UserID,
			DisplayName: p.DisplayName,
			AvatarUrl:   p.AvatarURL,
		}
	}
	return &pb.Conversation{
		Id:           c.ID,
		Topic:        c.Topic,
		Participants: participants,
		UpdatedAt:    c.UpdatedAt,
	}
}

func messageToProto(m room.Message) *pb.Message {
	return &pb.Message{
		Id:             m.ID,
		ConversationId: m.ConversationID,
		SenderId:       m.SenderID,
		Body:           m.Body,
		TimestampMs:    m.TimestampMS,
	}
}

func presenceToProto(p room.PresenceEvent) *pb.PresenceEvent {
	return &pb.PresenceEvent{
		UserId:    p.UserID,
		State:     p.State,
		UpdatedAt: p.UpdatedAt,
	}
}
