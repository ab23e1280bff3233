// Package gateway orchestrates the ethos-gateway server components.
//
// # Overview
//
// The gateway package is the central coordinator of the ethos-gateway
// server. It wires the in-memory room registry to two independent
// streaming surfaces and manages their lifecycle:
//
//   - gRPC server: the ConversationsService API, including the
//     server-streaming StreamMessages and StreamPresence operations.
//   - HTTP server: the REST API under /api plus per-conversation SSE
//     streams and health endpoints.
//
// Both surfaces run the same replay-then-tail protocol from the stream
// package and authenticate through the auth package, so a message posted
// on either surface reaches subscribers on both.
//
// # Side Channels
//
// Accepted messages are mirrored best-effort onto the configured NATS
// subject and Matrix room. Side-channel failures are logged and
// swallowed; they never fail the originating request.
//
// # Lifecycle
//
//	gw, err := gateway.New(cfg, logger)
//	err = gw.Run(ctx) // blocks until ctx is canceled
//
// Run listens on plain TCP or, when configured, joins a tailnet via
// tsnet and listens there instead. Shutdown drains the HTTP server,
// gracefully stops gRPC, and closes the side channels.
package gateway
