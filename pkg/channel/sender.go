package channel

import (
	"context"
	"errors"
)

// Sender is a producer handle. Any number of Sender clones may push into
// the same channel concurrently; none has exclusive ownership of the queue.
type Sender[T any] struct {
	core *core[T]
}

// Ready blocks until a send has a reasonable chance of succeeding: it
// returns immediately when the queue is not full, and otherwise parks until
// a pop frees space or the channel is closed. Closing does not grant space;
// it unparks the sender so that its next TrySend fails with ErrClosed.
//
// Readiness is advisory. Between Ready and TrySend another producer may
// refill the queue, in which case TrySend reports ErrQueueFull and the
// retry policy is the caller's.
func (s *Sender[T]) Ready(ctx context.Context) error {
	c := s.core
	for {
		if c.closed.Load() || !c.full() {
			return nil
		}

		wait := c.sendSide.register()

		// Re-check after registering: a pop, a close, or a parking
		// receiver racing the check above must not strand us.
		if c.closed.Load() || !c.full() {
			return nil
		}

		c.sendWaits.Add(1)
		if in := c.instr.Load(); in != nil {
			in.registry.SendWaits.WithLabelValues(in.name).Inc()
		}

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// TrySend enqueues item without blocking. It fails with ErrQueueFull iff
// the queue is at capacity at the moment of the attempt, and with ErrClosed
// once the channel has been closed. On success the receive-side waiter is
// notified.
func (s *Sender[T]) TrySend(item T) error {
	return s.core.tryPush(item)
}

// Send is the blocking convenience form: it loops Ready and TrySend until
// the item is enqueued, the channel turns out closed, or ctx is canceled.
func (s *Sender[T]) Send(ctx context.Context, item T) error {
	for {
		if err := s.Ready(ctx); err != nil {
			return err
		}
		err := s.TrySend(item)
		if errors.Is(err, ErrQueueFull) {
			// Lost the race for the freed slot; wait for the next one.
			continue
		}
		return err
	}
}

// Flush always succeeds immediately: no buffering exists on the send path
// beyond the queue itself. Its only effect is an extra wake of the
// receive-side waiter.
func (s *Sender[T]) Flush() {
	s.core.recvSide.wake()
}

// Close marks the channel closed. Receivers drain any remaining items and
// then observe end-of-stream. Idempotent.
func (s *Sender[T]) Close() {
	s.core.close()
}

// Clone returns a new Sender sharing this channel. Clones are cheap and
// independently droppable.
func (s *Sender[T]) Clone() *Sender[T] {
	return &Sender[T]{core: s.core}
}

// IsClosed returns true once the channel has been closed.
func (s *Sender[T]) IsClosed() bool {
	return s.core.closed.Load()
}

// Len returns the current number of buffered items.
func (s *Sender[T]) Len() int {
	return s.core.len()
}

// Cap returns the fixed queue capacity.
func (s *Sender[T]) Cap() int {
	return s.core.config.Capacity
}

// Stats returns a snapshot of channel counters.
func (s *Sender[T]) Stats() Stats {
	return s.core.snapshot()
}
