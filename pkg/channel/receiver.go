package channel

import "context"

// Receiver is a consumer handle. Clones compete for the same items: each
// item is delivered to exactly one popper. Because each side has a single
// waker slot, only the most recently parked receiver is guaranteed to be
// woken by a given push or close; fan-out to many parked consumers on one
// channel is not a supported usage pattern.
type Receiver[T any] struct {
	core *core[T]
}

// TryRecv dequeues the oldest item without blocking. Draining is permitted
// after close: close is a no-new-producers signal, not a discard.
func (r *Receiver[T]) TryRecv() (T, bool) {
	return r.core.tryPop()
}

// Recv returns the next item in push order. When the queue is empty and the
// channel is closed it returns ok=false: the terminal, repeatable
// end-of-stream result. Otherwise it parks until a push or a close. The
// error is non-nil only when ctx is canceled.
//
// On a rendezvous channel a cancellation can race a sender that was just
// matched against this parked receiver. The item is then delivered
// (ok=true, nil error) instead of the cancellation: an accepted handoff is
// never dropped. A send that lands in the narrow window after the receiver
// unparks stays in the handoff cell and is claimed by the next receive.
func (r *Receiver[T]) Recv(ctx context.Context) (T, bool, error) {
	c := r.core
	var zero T
	for {
		if item, ok := c.tryPop(); ok {
			return item, true, nil
		}
		if c.closed.Load() {
			return zero, false, nil
		}

		wait := c.recvSide.register()
		c.parked.Add(1)
		if c.config.Capacity == 0 {
			// A sender blocked in Ready can now complete the handoff.
			c.sendSide.wake()
		}

		// Re-check after registering so a push or close racing the
		// checks above is not lost.
		if item, ok := c.tryPop(); ok {
			c.parked.Add(-1)
			return item, true, nil
		}
		if c.closed.Load() {
			c.parked.Add(-1)
			return zero, false, nil
		}

		c.recvWaits.Add(1)
		if in := c.instr.Load(); in != nil {
			in.registry.RecvWaits.WithLabelValues(in.name).Inc()
		}

		select {
		case <-wait:
			c.parked.Add(-1)
		case <-ctx.Done():
			c.parked.Add(-1)
			if c.config.Capacity == 0 {
				// A sender may have completed the handoff against this
				// receiver before the cancellation was observed. Deliver
				// the item rather than strand it.
				if item, ok := c.tryPop(); ok {
					return item, true, nil
				}
			}
			return zero, false, ctx.Err()
		}
	}
}

// Clone returns a new Receiver sharing this channel.
func (r *Receiver[T]) Clone() *Receiver[T] {
	return &Receiver[T]{core: r.core}
}

// IsClosed returns true once the channel has been closed. Items may still
// be buffered; see TryRecv.
func (r *Receiver[T]) IsClosed() bool {
	return r.core.closed.Load()
}

// Len returns the current number of buffered items.
func (r *Receiver[T]) Len() int {
	return r.core.len()
}

// Cap returns the fixed queue capacity.
func (r *Receiver[T]) Cap() int {
	return r.core.config.Capacity
}

// Stats returns a snapshot of channel counters.
func (r *Receiver[T]) Stats() Stats {
	return r.core.snapshot()
}
