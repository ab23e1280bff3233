// ABOUTME: Gateway orchestrator that coordinates gRPC and HTTP servers
// ABOUTME: Wires the room registry, streaming adapters, and side channels together

package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"tailscale.com/ipn/ipnstate"
	"tailscale.com/tsnet"

	"github.com/sefunmi4/ethos-gateway/internal/auth"
	"github.com/sefunmi4/ethos-gateway/internal/bridge"
	"github.com/sefunmi4/ethos-gateway/internal/bus"
	"github.com/sefunmi4/ethos-gateway/internal/config"
	"github.com/sefunmi4/ethos-gateway/internal/room"
	"github.com/sefunmi4/ethos-gateway/internal/stream"
	pb "github.com/sefunmi4/ethos-gateway/proto/ethos"
)

// errNotParticipant marks a valid identity that is not in a
// conversation's participant list.
var errNotParticipant = errors.New("not a participant")

// Gateway orchestrates the ethos-gateway server components. It manages
// the gRPC server for the streaming API and the HTTP server for the REST
// and SSE surfaces, both backed by the same in-memory registry.
type Gateway struct {
	config      *config.Config
	registry    *room.Registry
	streamer    *stream.Streamer
	publisher   bus.Publisher
	bridge      bridge.RoomBridge
	verifier    *auth.JWTVerifier
	grpcServer  *grpc.Server
	httpServer  *http.Server
	tsnetServer *tsnet.Server
	logger      *slog.Logger

	// streamHandler serves SSE with query-param auth; built once in New
	// because the conversation route dispatcher delegates to it.
	streamHandler   http.Handler
	messagesHandler http.Handler
}

// newGRPCServer creates the gRPC server with keepalive and auth interceptors.
func newGRPCServer(verifier *auth.JWTVerifier, logger *slog.Logger) *grpc.Server {
	return grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    15 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(
			auth.UnaryInterceptor(verifier, logger),
		),
		grpc.ChainStreamInterceptor(
			auth.StreamInterceptor(verifier, logger),
		),
	)
}

// newPublisher creates the side-channel publisher based on config.
func newPublisher(cfg *config.Config, logger *slog.Logger) (bus.Publisher, error) {
	if !cfg.NATS.Enabled {
		return bus.NoopPublisher{}, nil
	}
	pub, err := bus.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
	if err != nil {
		return nil, fmt.Errorf("creating nats publisher: %w", err)
	}
	logger.Info("nats publisher enabled", "url", cfg.NATS.URL, "subject_prefix", cfg.NATS.SubjectPrefix)
	return pub, nil
}

// newBridge creates the Matrix bridge based on config.
func newBridge(cfg *config.Config, logger *slog.Logger) (bridge.RoomBridge, error) {
	if !cfg.Matrix.Enabled {
		return bridge.NullBridge{}, nil
	}
	b, err := bridge.NewMatrixBridge(cfg.Matrix.Homeserver, cfg.Matrix.UserID, cfg.Matrix.AccessToken, logger)
	if err != nil {
		return nil, fmt.Errorf("creating matrix bridge: %w", err)
	}
	logger.Info("matrix bridge enabled", "homeserver", cfg.Matrix.Homeserver)
	return b, nil
}

// New creates a new Gateway instance with the given configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Gateway, error) {
	verifier := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}
	roomBridge, err := newBridge(cfg, logger)
	if err != nil {
		return nil, err
	}

	registry := room.NewRegistry(room.WithHubCapacity(cfg.Streams.HubCapacity))

	gw := &Gateway{
		config:    cfg,
		registry:  registry,
		streamer:  stream.NewStreamer(registry, logger),
		publisher: publisher,
		bridge:    roomBridge,
		verifier:  verifier,
		logger:    logger.With("component", "gateway"),
	}

	gw.grpcServer = newGRPCServer(verifier, logger)
	pb.RegisterConversationsServiceServer(gw.grpcServer, newConversationsServer(gw, logger.With("component", "grpc")))

	mux := http.NewServeMux()

	// Health endpoints - no auth required
	mux.HandleFunc("/health", gw.handleHealth)
	mux.HandleFunc("/health/ready", gw.handleReady)

	// API endpoints - bearer auth, except the SSE stream which reads the
	// token from a query param because EventSource cannot set headers
	authMiddleware := auth.HTTPAuthMiddleware(verifier)
	queryMiddleware := auth.QueryAuthMiddleware(verifier)
	gw.messagesHandler = authMiddleware(http.HandlerFunc(gw.handleConversationMessages))
	gw.streamHandler = queryMiddleware(http.HandlerFunc(gw.handleConversationStream))
	mux.Handle("/api/conversations", authMiddleware(http.HandlerFunc(gw.handleConversations)))
	mux.HandleFunc("/api/conversations/", gw.handleConversationRoutes)
	mux.Handle("/api/presence", authMiddleware(http.HandlerFunc(gw.handleUpdatePresence)))

	gw.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return gw, nil
}

// checkMembership verifies the conversation exists and the user belongs
// to it. Returns room.ErrNotFound or errNotParticipant otherwise.
func (g *Gateway) checkMembership(conversationID, userID string) error {
	conv, ok := g.registry.Get(conversationID)
	if !ok {
		return room.ErrNotFound
	}
	if !conv.HasParticipant(userID) {
		return errNotParticipant
	}
	return nil
}

// createConversation builds the participant list and creates the
// conversation. The caller is added if the request omitted them, and the
// external bridge is told about the new room best-effort.
func (g *Gateway) createConversation(ctx context.Context, authCtx *auth.AuthContext, participantIDs []string, topic string) room.Conversation {
	participants := make([]room.Participant, 0, len(participantIDs)+1)
	callerIncluded := false
	for _, id := range participantIDs {
		if id == authCtx.UserID {
			callerIncluded = true
			participants = append(participants, room.Participant{
				UserID:      authCtx.UserID,
				DisplayName: authCtx.Name(),
			})
			continue
		}
		participants = append(participants, room.Participant{UserID: id, DisplayName: id})
	}
	if !callerIncluded {
		participants = append(participants, room.Participant{
			UserID:      authCtx.UserID,
			DisplayName: authCtx.Name(),
		})
	}

	conv := g.registry.Create(participants, topic)
	g.logger.Info("conversation created",
		"conversation_id", conv.ID,
		"topic", conv.Topic,
		"creator", authCtx.UserID)

	if err := g.bridge.EnsureRoom(ctx, conv); err != nil {
		g.logger.Warn("bridge room creation failed", "conversation_id", conv.ID, "error", err)
	}
	return conv
}

// sendMessage appends the message and mirrors it onto the side channels.
// Bridge and bus failures are logged and swallowed; only registry errors
// reach the caller.
func (g *Gateway) sendMessage(ctx context.Context, authCtx *auth.AuthContext, conversationID, body string) (room.Message, error) {
	msg, err := g.registry.Append(conversationID, authCtx.UserID, body)
	if err != nil {
		return room.Message{}, err
	}

	if conv, ok := g.registry.Get(conversationID); ok {
		if err := g.bridge.SendMessage(ctx, conv, msg); err != nil {
			g.logger.Warn("bridge message mirror failed", "conversation_id", conversationID, "error", err)
		}
	}
	if err := g.publisher.Publish(ctx, conversationID, room.MessageEvent(msg)); err != nil {
		g.logger.Warn("side-channel publish failed", "conversation_id", conversationID, "error", err)
	}

	return msg, nil
}

// setupTCPListeners creates standard TCP listeners for gRPC and HTTP.
func (g *Gateway) setupTCPListeners() (grpcLn, httpLn net.Listener, err error) {
	g.logger.Info("starting gateway",
		"grpc_addr", g.config.Server.GRPCAddr,
		"http_addr", g.config.Server.HTTPAddr,
	)

	grpcLn, err = net.Listen("tcp", g.config.Server.GRPCAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listening on gRPC address: %w", err)
	}

	httpLn, err = net.Listen("tcp", g.config.Server.HTTPAddr)
	if err != nil {
		_ = grpcLn.Close()
		return nil, nil, fmt.Errorf("listening on HTTP address: %w", err)
	}

	return grpcLn, httpLn, nil
}

// setupListeners creates listeners based on configuration (Tailscale or TCP).
func (g *Gateway) setupListeners(ctx context.Context) (grpcLn, httpLn net.Listener, err error) {
	if g.config.Tailscale.Enabled {
		return g.setupTailscaleListeners(ctx)
	}
	return g.setupTCPListeners()
}

// startServers starts gRPC and HTTP servers in goroutines, returning error channel.
func (g *Gateway) startServers(grpcLn, httpLn net.Listener) chan error {
	errCh := make(chan error, 2)

	go func() {
		g.logger.Info("gRPC server listening", "addr", grpcLn.Addr().String())
		if err := g.grpcServer.Serve(grpcLn); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	go func() {
		g.logger.Info("HTTP server listening", "addr", httpLn.Addr().String())
		if err := g.httpServer.Serve(httpLn); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	return errCh
}

// waitForShutdownSignal waits for context cancellation or server error.
func (g *Gateway) waitForShutdownSignal(ctx context.Context, errCh chan error) error {
	select {
	case <-ctx.Done():
		g.logger.Info("context canceled, initiating shutdown")
		return nil
	case err := <-errCh:
		g.logger.Error("server error", "error", err)
		g.drainErrors(errCh)
		return err
	}
}

// drainErrors drains any remaining errors from the channel.
func (g *Gateway) drainErrors(errCh chan error) {
	select {
	case additionalErr := <-errCh:
		g.logger.Error("additional server error", "error", additionalErr)
	default:
	}
}

// Run starts the gateway servers and blocks until the context is canceled.
// Returns nil on graceful shutdown (context canceled), or an error if a
// server fails.
func (g *Gateway) Run(ctx context.Context) error {
	grpcListener, httpListener, err := g.setupListeners(ctx)
	if err != nil {
		return err
	}

	errCh := g.startServers(grpcListener, httpListener)
	serverErr := g.waitForShutdownSignal(ctx, errCh)

	shutdownErr := g.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() intentionally since the original context is already canceled.
func (g *Gateway) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return g.Shutdown(ctx)
}

// resolveTailscaleStateDir returns the state directory, using default if not configured.
func resolveTailscaleStateDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory for tailscale state (set tailscale.state_dir explicitly): %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "ethos-gateway", "tailscale"), nil
}

// resolveTailscaleAuthKey returns the auth key from config or environment.
func resolveTailscaleAuthKey(configured string) (string, error) {
	authKey := configured
	if authKey == "" {
		authKey = os.Getenv("TS_AUTHKEY")
	}
	if authKey == "" {
		return "", errors.New("tailscale auth key required: set auth_key in config or TS_AUTHKEY environment variable")
	}
	return authKey, nil
}

// setupTailscaleListeners creates a tsnet server and returns listeners for gRPC and HTTP.
func (g *Gateway) setupTailscaleListeners(ctx context.Context) (grpcLn, httpLn net.Listener, err error) {
	tsCfg := g.config.Tailscale

	stateDir, err := resolveTailscaleStateDir(tsCfg.StateDir)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("creating tailscale state dir: %w", err)
	}

	authKey, err := resolveTailscaleAuthKey(tsCfg.AuthKey)
	if err != nil {
		return nil, nil, err
	}

	g.tsnetServer = &tsnet.Server{
		Hostname:  tsCfg.Hostname,
		Dir:       stateDir,
		Ephemeral: tsCfg.Ephemeral,
		AuthKey:   authKey,
	}

	g.logger.Info("starting tailscale node", "hostname", tsCfg.Hostname, "state_dir", stateDir, "ephemeral", tsCfg.Ephemeral)
	status, err := g.tsnetServer.Up(ctx)
	if err != nil {
		_ = g.tsnetServer.Close()
		return nil, nil, fmt.Errorf("starting tailscale: %w", err)
	}
	g.logTailscaleStatus(tsCfg.Hostname, status)

	grpcLn, err = g.tsnetServer.Listen("tcp", ":50051")
	if err != nil {
		_ = g.tsnetServer.Close()
		return nil, nil, fmt.Errorf("listening on tailscale gRPC port: %w", err)
	}

	httpLn, err = g.tsnetServer.Listen("tcp", ":80")
	if err != nil {
		_ = grpcLn.Close()
		_ = g.tsnetServer.Close()
		return nil, nil, fmt.Errorf("listening on tailscale HTTP port: %w", err)
	}
	return grpcLn, httpLn, nil
}

// logTailscaleStatus logs info about the tailscale node status.
func (g *Gateway) logTailscaleStatus(hostname string, status *ipnstate.Status) {
	var tsAddr, dnsName string
	if len(status.TailscaleIPs) > 0 {
		tsAddr = status.TailscaleIPs[0].String()
	} else {
		g.logger.Warn("tailscale node has no IP addresses assigned")
	}
	if status.Self != nil {
		dnsName = status.Self.DNSName
	}
	g.logger.Info("tailscale node ready", "hostname", hostname, "tailscale_ip", tsAddr, "dns_name", dnsName)
}

// shutdownGRPCServer gracefully stops the gRPC server or force-stops on context cancel.
func (g *Gateway) shutdownGRPCServer(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		g.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.grpcServer.Stop()
	}
}

// appendCloseError appends an error with label if err is non-nil.
func appendCloseError(errs []error, label string, err error) []error {
	if err != nil {
		return append(errs, fmt.Errorf("%s: %w", label, err))
	}
	return errs
}

// Shutdown gracefully stops all gateway servers and releases resources.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.logger.Info("shutting down gateway")

	var errs []error
	errs = appendCloseError(errs, "HTTP shutdown", g.httpServer.Shutdown(ctx))

	g.shutdownGRPCServer(ctx)

	if g.tsnetServer != nil {
		errs = appendCloseError(errs, "tailscale shutdown", g.tsnetServer.Close())
	}

	g.publisher.Close()

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

// handleHealth returns 200 OK if the server is alive.
func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReady returns 200 OK once the gateway can serve requests.
func (g *Gateway) handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
