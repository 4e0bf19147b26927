/*
Package channel provides a fixed-capacity, multi-producer/multi-consumer
asynchronous channel with waker-based backpressure.

The channel is built from three pieces sharing one reference-counted core:
a lock-free bounded ring buffer (Vyukov's sequence-stamped MPMC queue), a
one-way atomic close flag, and a single-slot waker per side. Producers that
find the queue full park on a wake token instead of spinning; consumers that
find it empty do the same. Every fast path is a single lock-free step, so no
goroutine ever blocks synchronously on another.

Creating a channel returns a Sender and a Receiver sharing the core:

	tx, rx := channel.New[[]byte](16)

	go func() {
		defer tx.Close()
		for _, chunk := range chunks {
			if err := tx.Send(ctx, chunk); err != nil {
				return
			}
		}
	}()

	for {
		item, ok, err := rx.Recv(ctx)
		if err != nil || !ok {
			break // canceled, or closed and drained
		}
		process(item)
	}

Backpressure:

A full queue suspends the producer rather than buffering unboundedly. The
low-level form separates the suspension point from the attempt, surfacing
races to the caller:

	if err := tx.Ready(ctx); err != nil {
		return err
	}
	switch err := tx.TrySend(item); {
	case errors.Is(err, channel.ErrQueueFull):
		// another producer took the freed slot; park again
	case errors.Is(err, channel.ErrClosed):
		// no new producers accepted
	}

Close semantics:

Close is idempotent and never discards: items pushed before the close remain
retrievable, and once the queue is drained every Recv returns ok=false, a
terminal non-error result. Sends after close fail with ErrClosed.

Rendezvous channels:

Capacity 0 degenerates to "always full": a send completes only while a
receive is concurrently parked, and no item is ever queued beyond the
in-flight handoff.

	tx, rx := channel.New[int](0)

A cancellation racing a completing handoff resolves in the item's favor:
the canceled Recv delivers it, or — if the send lands just after the
receiver unparks — the item stays in the handoff cell for the next
receive. An accepted item is never lost and never delivered twice.

Known limitation: each side stores at most one parked waiter, overwritten by
the most recent registrant. Many goroutines may use clones of a handle
concurrently, but only the last one to park per side is guaranteed a wake.
This favors low overhead over strict fairness; broadcast fan-out to many
parked consumers of one channel is not a supported pattern.
*/
package channel
