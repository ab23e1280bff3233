// ABOUTME: Unit tests for gRPC auth interceptors
// ABOUTME: Tests metadata extraction and Unauthenticated rejections

package auth

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestExtractAuth_ValidBearer(t *testing.T) {
	verifier, token := newTestVerifier(t)

	md := metadata.Pairs("authorization", "Bearer "+token)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	authCtx, err := extractAuth(ctx, verifier, nil)
	if err != nil {
		t.Fatalf("extractAuth() error = %v", err)
	}
	if authCtx.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", authCtx.UserID, "user-123")
	}
	if authCtx.DisplayName != "Alice" {
		t.Errorf("DisplayName = %q, want %q", authCtx.DisplayName, "Alice")
	}
}

func TestExtractAuth_Rejections(t *testing.T) {
	verifier, _ := newTestVerifier(t)

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{
			name: "no metadata",
			ctx:  context.Background(),
		},
		{
			name: "no authorization key",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "value")),
		},
		{
			name: "not bearer",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc")),
		},
		{
			name: "invalid token",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer garbage")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractAuth(tt.ctx, verifier, nil)
			if err == nil {
				t.Fatal("extractAuth() should have returned an error")
			}
			if got := status.Code(err); got != codes.Unauthenticated {
				t.Errorf("status code = %v, want %v", got, codes.Unauthenticated)
			}
		})
	}
}

func TestUnaryInterceptor_InjectsAuthContext(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))
	token, err := verifier.Generate(Claims{Subject: "user-789"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	interceptor := UnaryInterceptor(verifier, nil)

	md := metadata.Pairs("authorization", "Bearer "+token)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var handlerCtx context.Context
	handler := func(ctx context.Context, req any) (any, error) {
		handlerCtx = ctx
		return "ok", nil
	}

	resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	if err != nil {
		t.Fatalf("interceptor error = %v", err)
	}
	if resp != "ok" {
		t.Errorf("resp = %v, want %q", resp, "ok")
	}

	authCtx := FromContext(handlerCtx)
	if authCtx == nil {
		t.Fatal("handler context missing auth context")
	}
	if authCtx.UserID != "user-789" {
		t.Errorf("UserID = %q, want %q", authCtx.UserID, "user-789")
	}
}

func TestUnaryInterceptor_RejectsBeforeHandler(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))
	interceptor := UnaryInterceptor(verifier, nil)

	handler := func(ctx context.Context, req any) (any, error) {
		t.Error("handler should not run")
		return nil, nil
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("status code = %v, want %v", status.Code(err), codes.Unauthenticated)
	}
}

// fakeServerStream implements grpc.ServerStream for interceptor tests.
type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func TestStreamInterceptor_WrapsContext(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))
	token, err := verifier.Generate(Claims{Subject: "user-789"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	interceptor := StreamInterceptor(verifier, nil)

	md := metadata.Pairs("authorization", "Bearer "+token)
	ss := &fakeServerStream{ctx: metadata.NewIncomingContext(context.Background(), md)}

	handler := func(srv any, stream grpc.ServerStream) error {
		authCtx := FromContext(stream.Context())
		if authCtx == nil {
			t.Fatal("stream context missing auth context")
		}
		if authCtx.UserID != "user-789" {
			t.Errorf("UserID = %q, want %q", authCtx.UserID, "user-789")
		}
		return nil
	}

	if err := interceptor(nil, ss, &grpc.StreamServerInfo{}, handler); err != nil {
		t.Fatalf("interceptor error = %v", err)
	}
}

func TestStreamInterceptor_RejectsBeforeHandler(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))
	interceptor := StreamInterceptor(verifier, nil)

	ss := &fakeServerStream{ctx: context.Background()}
	handler := func(srv any, stream grpc.ServerStream) error {
		t.Error("handler should not run")
		return nil
	}

	err := interceptor(nil, ss, &grpc.StreamServerInfo{}, handler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("status code = %v, want %v", status.Code(err), codes.Unauthenticated)
	}
}
