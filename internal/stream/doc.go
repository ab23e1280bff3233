// Package stream implements the replay-then-tail protocol shared by the
// gRPC and SSE adapters: emit a consistent snapshot (history or
// presence), then forward live events from the relevant hub, with an
// optional periodic presence heartbeat.
package stream
