// ABOUTME: Bounded lossy broadcast hub used for per-conversation fan-out
// ABOUTME: Slow subscribers skip ahead and learn how many events they missed

package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrHubClosed is returned by Recv once a hub is closed and the
// subscriber has drained everything still buffered.
var ErrHubClosed = errors.New("hub closed")

// LagError reports that a subscriber fell behind and the hub dropped its
// oldest events. The subscription remains usable, resuming at the oldest
// event still buffered.
type LagError struct {
	Skipped uint64
}

func (e *LagError) Error() string {
	return fmt.Sprintf("subscriber lagged, skipped %d events", e.Skipped)
}

// Hub is a bounded broadcast channel. Publish never blocks: when the ring
// buffer is full the oldest event is overwritten and lagging subscribers
// observe a LagError on their next Recv. Publishing with no subscribers is
// a no-op beyond advancing the buffer.
type Hub[T any] struct {
	mu     sync.Mutex
	buf    []T
	next   uint64
	closed bool
	wake   chan struct{}
}

// NewHub creates a hub retaining the last capacity events for subscribers
// to catch up on. Capacity must be positive.
func NewHub[T any](capacity int) *Hub[T] {
	if capacity <= 0 {
		panic("room: hub capacity must be positive")
	}
	return &Hub[T]{
		buf:  make([]T, capacity),
		wake: make(chan struct{}),
	}
}

// Publish appends an event to the hub. Events published after Close are
// dropped.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.buf[h.next%uint64(len(h.buf))] = v
	h.next++
	close(h.wake)
	h.wake = make(chan struct{})
}

// Close ends the hub. Blocked subscribers drain any buffered events they
// have not seen, then receive ErrHubClosed. Close is idempotent.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.wake)
}

// Subscribe registers a new subscriber positioned after the most recently
// published event. Abandoning the subscription is the only cleanup needed.
func (h *Hub[T]) Subscribe() *Subscription[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return &Subscription[T]{hub: h, cursor: h.next}
}

// Subscription is one subscriber's cursor into a hub. Not safe for
// concurrent use by multiple goroutines.
type Subscription[T any] struct {
	hub    *Hub[T]
	cursor uint64
}

// Recv returns the next event, blocking until one is published, the hub
// closes, or ctx is done. A *LagError means events were dropped; calling
// Recv again resumes from the oldest retained event.
func (s *Subscription[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	for {
		s.hub.mu.Lock()
		capacity := uint64(len(s.hub.buf))
		oldest := uint64(0)
		if s.hub.next > capacity {
			oldest = s.hub.next - capacity
		}
		if s.cursor < oldest {
			skipped := oldest - s.cursor
			s.cursor = oldest
			s.hub.mu.Unlock()
			return zero, &LagError{Skipped: skipped}
		}
		if s.cursor < s.hub.next {
			v := s.hub.buf[s.cursor%capacity]
			s.cursor++
			s.hub.mu.Unlock()
			return v, nil
		}
		if s.hub.closed {
			s.hub.mu.Unlock()
			return zero, ErrHubClosed
		}
		wake := s.hub.wake
		s.hub.mu.Unlock()

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-wake:
		}
	}
}
