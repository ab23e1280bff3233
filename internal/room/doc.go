// Package room implements the in-memory conversation engine: a registry
// of conversations with append-only histories, a bounded broadcast hub
// per conversation, and a process-wide presence aggregator.
//
// The registry is the single owner of all conversation state. Hubs are
// lossy toward slow consumers: publishing never blocks, and a subscriber
// that falls behind skips ahead with a lag notification instead of
// stalling the producer.
package room
