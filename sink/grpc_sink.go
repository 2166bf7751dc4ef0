// Package sink holds the per-connection outbound queues drained by the
// gateway's stream loops.
package sink

import (
	"context"
	"log/slog"
	"sync"

	"roomhub/domain/event"
	"roomhub/errors"
)

// GrpcSink is one subscriber's bounded event queue.
//
// Consume never blocks the broadcaster: when the queue is full the oldest
// undelivered event is dropped to make room for the new one, and the drop is
// counted so the drain loop can emit a one-time Gap notification. The slow
// consumer pays for its own backlog; the shared publish path does not.
type GrpcSink struct {
	mu      sync.Mutex
	events  chan event.DomainEvent
	dropped uint64
	closed  bool
	log     *slog.Logger
}

func NewGrpcSink(log *slog.Logger, bufferSize int) *GrpcSink {
	return &GrpcSink{
		events: make(chan event.DomainEvent, bufferSize),
		log:    log,
	}
}

// Consume implements contract.EventSink. Called by the broadcaster only.
func (s *GrpcSink) Consume(ctx context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.ErrDisconnected
	}
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Queue full: evict the oldest queued event, then enqueue the new one.
	select {
	case <-s.events:
		s.dropped++
	default:
	}
	select {
	case s.events <- e:
	default:
		// The drain loop raced the eviction; count the new event instead.
		s.dropped++
	}
	s.log.Debug("Slow subscriber, dropped oldest event", "dropped_total", s.dropped)
	return nil
}

// Events is drained by the gateway's outbound stream loop. The channel is
// closed by Close, which terminates that loop.
func (s *GrpcSink) Events() <-chan event.DomainEvent {
	return s.events
}

// TakeGap reports and resets the dropped-event count. The drain loop calls it
// before forwarding each event so the subscriber learns about a gap exactly
// once, ahead of the first event that follows it.
func (s *GrpcSink) TakeGap() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dropped == 0 {
		return 0, false
	}
	dropped := s.dropped
	s.dropped = 0
	return dropped, true
}

// Close is idempotent; it ends the drain loop on the consuming side.
func (s *GrpcSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}
