// ABOUTME: gRPC interceptors for authenticating requests using JWT bearer tokens
// ABOUTME: Extracts auth from metadata and populates context for handlers

package auth

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// logAuthFailure logs an authentication failure with structured context.
func logAuthFailure(logger *slog.Logger, ctx context.Context, reason string, attrs ...any) {
	if logger == nil {
		return
	}
	// Extract peer address if available
	baseAttrs := []any{"reason", reason}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		baseAttrs = append(baseAttrs, "peer_addr", p.Addr.String())
	}
	baseAttrs = append(baseAttrs, attrs...)
	logger.Warn("auth failure", baseAttrs...)
}

// UnaryInterceptor returns a gRPC unary interceptor that authenticates requests.
// The optional logger enables auth failure logging for security monitoring.
func UnaryInterceptor(tokens TokenVerifier, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		authCtx, err := extractAuth(ctx, tokens, logger)
		if err != nil {
			return nil, err
		}

		ctx = WithAuth(ctx, authCtx)
		return handler(ctx, req)
	}
}

// StreamInterceptor returns a gRPC stream interceptor that authenticates requests.
// Authorization failures terminate the stream before any data is sent.
func StreamInterceptor(tokens TokenVerifier, logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		authCtx, err := extractAuth(ss.Context(), tokens, logger)
		if err != nil {
			return err
		}

		wrapped := &wrappedServerStream{
			ServerStream: ss,
			ctx:          WithAuth(ss.Context(), authCtx),
		}
		return handler(srv, wrapped)
	}
}

// wrappedServerStream wraps a grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// extractAuth extracts authentication context from gRPC metadata.
// The optional logger enables auth failure logging for security monitoring.
func extractAuth(ctx context.Context, tokens TokenVerifier, logger *slog.Logger) (*AuthContext, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		logAuthFailure(logger, ctx, "missing_metadata")
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		logAuthFailure(logger, ctx, "missing_authorization")
		return nil, status.Error(codes.Unauthenticated, "missing authorization header")
	}

	authHeader := authHeaders[0]
	if !strings.HasPrefix(authHeader, "Bearer ") {
		logAuthFailure(logger, ctx, "malformed_authorization")
		return nil, status.Error(codes.Unauthenticated, "invalid authorization header format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := tokens.Verify(tokenString)
	if err != nil {
		logAuthFailure(logger, ctx, "token_verify_failed", "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	return fromClaims(claims), nil
}
