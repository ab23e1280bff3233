// ABOUTME: ConversationsService wire contract for the ethos-gateway chat engine
// ABOUTME: Conversations, messages, and presence over unary + server-streaming RPCs

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: ethos.proto

package ethos

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ConversationsService_ListConversations_FullMethodName  = "/ethos.v1.ConversationsService/ListConversations"
	ConversationsService_CreateConversation_FullMethodName = "/ethos.v1.ConversationsService/CreateConversation"
	ConversationsService_SendMessage_FullMethodName        = "/ethos.v1.ConversationsService/SendMessage"
	ConversationsService_StreamMessages_FullMethodName     = "/ethos.v1.ConversationsService/StreamMessages"
	ConversationsService_StreamPresence_FullMethodName     = "/ethos.v1.ConversationsService/StreamPresence"
)

// ConversationsServiceClient is the client API for ConversationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ConversationsService is the RPC surface of the conversation engine.
// The caller identity comes from the authorization bearer metadata; the
// streaming operations replay a snapshot before tailing live events.
type ConversationsServiceClient interface {
	ListConversations(ctx context.Context, in *ListConversationsRequest, opts ...grpc.CallOption) (*ListConversationsResponse, error)
	CreateConversation(ctx context.Context, in *CreateConversationRequest, opts ...grpc.CallOption) (*CreateConversationResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	StreamMessages(ctx context.Context, in *StreamMessagesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StreamMessagesResponse], error)
	StreamPresence(ctx context.Context, in *StreamPresenceRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StreamPresenceResponse], error)
}

type conversationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewConversationsServiceClient(cc grpc.ClientConnInterface) ConversationsServiceClient {
	return &conversationsServiceClient{cc}
}

func (c *conversationsServiceClient) ListConversations(ctx context.Context, in *ListConversationsRequest, opts ...grpc.CallOption) (*ListConversationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListConversationsResponse)
	err := c.cc.Invoke(ctx, ConversationsService_ListConversations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conversationsServiceClient) CreateConversation(ctx context.Context, in *CreateConversationRequest, opts ...grpc.CallOption) (*CreateConversationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateConversationResponse)
	err := c.cc.Invoke(ctx, ConversationsService_CreateConversation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conversationsServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendMessageResponse)
	err := c.cc.Invoke(ctx, ConversationsService_SendMessage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conversationsServiceClient) StreamMessages(ctx context.Context, in *StreamMessagesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StreamMessagesResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ConversationsService_ServiceDesc.Streams[0], ConversationsService_StreamMessages_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamMessagesRequest, StreamMessagesResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ConversationsService_StreamMessagesClient = grpc.ServerStreamingClient[StreamMessagesResponse]

func (c *conversationsServiceClient) StreamPresence(ctx context.Context, in *StreamPresenceRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StreamPresenceResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ConversationsService_ServiceDesc.Streams[1], ConversationsService_StreamPresence_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamPresenceRequest, StreamPresenceResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ConversationsService_StreamPresenceClient = grpc.ServerStreamingClient[StreamPresenceResponse]

// ConversationsServiceServer is the server API for ConversationsService service.
// All implementations must embed UnimplementedConversationsServiceServer
// for forward compatibility.
//
// ConversationsService is the RPC surface of the conversation engine.
// The caller identity comes from the authorization bearer metadata; the
// streaming operations replay a snapshot before tailing live events.
type ConversationsServiceServer interface {
	ListConversations(context.Context, *ListConversationsRequest) (*ListConversationsResponse, error)
	CreateConversation(context.Context, *CreateConversationRequest) (*CreateConversationResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	StreamMessages(*StreamMessagesRequest, grpc.ServerStreamingServer[StreamMessagesResponse]) error
	StreamPresence(*StreamPresenceRequest, grpc.ServerStreamingServer[StreamPresenceResponse]) error
	mustEmbedUnimplementedConversationsServiceServer()
}

// UnimplementedConversationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedConversationsServiceServer struct{}

func (UnimplementedConversationsServiceServer) ListConversations(context.Context, *ListConversationsRequest) (*ListConversationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListConversations not implemented")
}
func (UnimplementedConversationsServiceServer) CreateConversation(context.Context, *CreateConversationRequest) (*CreateConversationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateConversation not implemented")
}
func (UnimplementedConversationsServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedConversationsServiceServer) StreamMessages(*StreamMessagesRequest, grpc.ServerStreamingServer[StreamMessagesResponse]) error {
	return status.Errorf(codes.Unimplemented, "method StreamMessages not implemented")
}
func (UnimplementedConversationsServiceServer) StreamPresence(*StreamPresenceRequest, grpc.ServerStreamingServer[StreamPresenceResponse]) error {
	return status.Errorf(codes.Unimplemented, "method StreamPresence not implemented")
}
func (UnimplementedConversationsServiceServer) mustEmbedUnimplementedConversationsServiceServer() {}
func (UnimplementedConversationsServiceServer) testEmbeddedByValue()                              {}

// UnsafeConversationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ConversationsServiceServer will
// result in compilation errors.
type UnsafeConversationsServiceServer interface {
	mustEmbedUnimplementedConversationsServiceServer()
}

func RegisterConversationsServiceServer(s grpc.ServiceRegistrar, srv ConversationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedConversationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ConversationsService_ServiceDesc, srv)
}

func _ConversationsService_ListConversations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListConversationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConversationsServiceServer).ListConversations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConversationsService_ListConversations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConversationsServiceServer).ListConversations(ctx, req.(*ListConversationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConversationsService_CreateConversation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateConversationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConversationsServiceServer).CreateConversation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConversationsService_CreateConversation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConversationsServiceServer).CreateConversation(ctx, req.(*CreateConversationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConversationsService_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConversationsServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConversationsService_SendMessage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConversationsServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConversationsService_StreamMessages_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamMessagesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ConversationsServiceServer).StreamMessages(m, &grpc.GenericServerStream[StreamMessagesRequest, StreamMessagesResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ConversationsService_StreamMessagesServer = grpc.ServerStreamingServer[StreamMessagesResponse]

func _ConversationsService_StreamPresence_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamPresenceRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ConversationsServiceServer).StreamPresence(m, &grpc.GenericServerStream[StreamPresenceRequest, StreamPresenceResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ConversationsService_StreamPresenceServer = grpc.ServerStreamingServer[StreamPresenceResponse]

// ConversationsService_ServiceDesc is the grpc.ServiceDesc for ConversationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ConversationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ethos.v1.ConversationsService",
	HandlerType: (*ConversationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListConversations",
			Handler:    _ConversationsService_ListConversations_Handler,
		},
		{
			MethodName: "CreateConversation",
			Handler:    _ConversationsService_CreateConversation_Handler,
		},
		{
			MethodName: "SendMessage",
			Handler:    _ConversationsService_SendMessage_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamMessages",
			Handler:       _ConversationsService_StreamMessages_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamPresence",
			Handler:       _ConversationsService_StreamPresence_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "ethos.proto",
}
