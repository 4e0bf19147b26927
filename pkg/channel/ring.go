package channel

import "sync/atomic"

// Bounded MPMC queue after Dmitry Vyukov's sequence-stamped design:
// https://www.1024cores.net/home/lock-free-algorithms/queues/bounded-mpmc-queue
//
// Each slot carries a sequence number that encodes both visibility and
// ownership: a slot is writable when seq == enqueue position, readable when
// seq == dequeue position + 1. Indexing is modulo the exact capacity rather
// than a power-of-two mask so that a channel of capacity C rejects the
// C+1'th push, not some rounded-up count.

type slot[T any] struct {
	seq atomic.Uint64 // sequence number (controls visibility and slot ownership)
	val T             // actual value stored in this slot
}

type ring[T any] struct {
	capacity uint64
	slots    []slot[T]
	enqueue  atomic.Uint64
	dequeue  atomic.Uint64
}

// newRing creates a ring of the given capacity. Capacity must be >= 1;
// the degenerate capacity-0 channel bypasses the ring entirely.
func newRing[T any](capacity int) *ring[T] {
	r := &ring[T]{
		capacity: uint64(capacity),
		slots:    make([]slot[T], capacity),
	}
	for i := range r.slots {
		r.slots[i].seq.Store(uint64(i))
	}
	return r
}

// tryPush enqueues v without blocking. It returns false iff the ring is at
// capacity at the moment of the attempt.
func (r *ring[T]) tryPush(v T) bool {
	pos := r.enqueue.Load()
	for {
		s := &r.slots[pos%r.capacity]
		seq := s.seq.Load()

		switch diff := int64(seq) - int64(pos); {
		case diff == 0:
			// Slot is free at our position; claim it.
			if r.enqueue.CompareAndSwap(pos, pos+1) {
				s.val = v
				s.seq.Store(pos + 1)
				return true
			}
			pos = r.enqueue.Load()
		case diff < 0:
			// Slot still holds the value from one lap ago: full.
			return false
		default:
			// Another producer claimed this position; catch up.
			pos = r.enqueue.Load()
		}
	}
}

// tryPop dequeues the oldest value without blocking. It returns false iff
// the ring is empty at the moment of the attempt.
func (r *ring[T]) tryPop() (T, bool) {
	var zero T
	pos := r.dequeue.Load()
	for {
		s := &r.slots[pos%r.capacity]
		seq := s.seq.Load()

		switch diff := int64(seq) - int64(pos+1); {
		case diff == 0:
			if r.dequeue.CompareAndSwap(pos, pos+1) {
				v := s.val
				s.val = zero // release the item reference
				s.seq.Store(pos + r.capacity)
				return v, true
			}
			pos = r.dequeue.Load()
		case diff < 0:
			// Producer has not filled this position yet: empty.
			return zero, false
		default:
			pos = r.dequeue.Load()
		}
	}
}

// len returns the number of buffered items. The value is a snapshot and may
// be stale by the time the caller acts on it.
func (r *ring[T]) len() int {
	enq := r.enqueue.Load()
	deq := r.dequeue.Load()
	if enq <= deq {
		return 0
	}
	n := enq - deq
	if n > r.capacity {
		n = r.capacity
	}
	return int(n)
}

func (r *ring[T]) full() bool {
	return r.enqueue.Load()-r.dequeue.Load() >= r.capacity
}

func (r *ring[T]) empty() bool {
	return r.enqueue.Load() <= r.dequeue.Load()
}
