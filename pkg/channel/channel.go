package channel

import (
	"fmt"
	"sync/atomic"
	"time"

	bcerrors "github.com/vnykmshr/bytechan/pkg/common/errors"
)

// ErrQueueFull is returned by a non-blocking send that found the queue at
// capacity. It is transient: retry after the next Ready.
var ErrQueueFull = bcerrors.ErrQueueFull

// ErrClosed is returned by a send attempted after the channel was closed.
var ErrClosed = bcerrors.ErrClosed

// ErrInvalidConfiguration is returned by the validating constructors when
// the configuration is rejected instead of sanitized.
var ErrInvalidConfiguration = bcerrors.ErrInvalidConfiguration

// Config holds configuration for a channel.
type Config struct {
	// Capacity is the fixed queue capacity, immutable after construction.
	// Zero is supported and yields a rendezvous channel: the queue is
	// permanently "full" and a send completes only against a concurrently
	// parked receiver. Negative values are treated as zero.
	Capacity int

	// OnFull is called each time a non-blocking send finds the queue at
	// capacity.
	OnFull func()

	// OnClose is called once, when the channel transitions to closed.
	OnClose func()
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Capacity: 64,
	}
}

// Stats holds a snapshot of channel counters.
type Stats struct {
	// Sends is the total number of items pushed.
	Sends int64

	// Receives is the total number of items popped.
	Receives int64

	// FullRejections is the number of non-blocking sends that found the
	// queue at capacity.
	FullRejections int64

	// SendWaits is the number of times a sender parked waiting for space.
	SendWaits int64

	// RecvWaits is the number of times a receiver parked waiting for an item.
	RecvWaits int64

	// LastSendTime is the timestamp of the last successful send.
	LastSendTime time.Time

	// LastReceiveTime is the timestamp of the last successful receive.
	LastReceiveTime time.Time
}

// core is the shared state reachable from every Sender and Receiver clone
// of one channel. It is the only mutable shared state and is never guarded
// by a blocking mutex: every operation is a lock-free step, and slow paths
// park on a wake token instead of spinning.
type core[T any] struct {
	config Config

	queue   *ring[T]          // nil iff capacity == 0
	handoff atomic.Pointer[T] // rendezvous cell, capacity == 0 only
	closed  atomic.Bool

	// One single-slot waker per side. A push or close wakes the receive
	// side; a pop, close, or newly parked receiver wakes the send side.
	sendSide waker
	recvSide waker

	// parked counts receivers currently suspended. It gates the
	// capacity-0 handoff: a rendezvous push only succeeds while at least
	// one receiver is parked.
	parked atomic.Int64

	sends          atomic.Int64
	receives       atomic.Int64
	fullRejections atomic.Int64
	sendWaits      atomic.Int64
	recvWaits      atomic.Int64
	lastSendNano   atomic.Int64
	lastRecvNano   atomic.Int64

	// name labels this channel's metric series; instr is swapped atomically
	// so metrics can be enabled and disabled while operations are in flight.
	name  string
	instr atomic.Pointer[instrumentation]
}

// New creates a channel of the given capacity and returns the first Sender
// and Receiver sharing it. Handles are cheap to clone and safe to move
// across goroutines; the shared core lives until the last handle is dropped.
func New[T any](capacity int) (*Sender[T], *Receiver[T]) {
	config := DefaultConfig()
	config.Capacity = capacity
	return NewWithConfig[T](config)
}

// NewWithConfig creates a channel with the specified configuration.
func NewWithConfig[T any](config Config) (*Sender[T], *Receiver[T]) {
	if config.Capacity < 0 {
		config.Capacity = 0
	}

	c := &core[T]{config: config}
	if config.Capacity > 0 {
		c.queue = newRing[T](config.Capacity)
	}

	return &Sender[T]{core: c}, &Receiver[T]{core: c}
}

// NewSafe creates a channel with validation that returns an error instead
// of sanitizing. Unlike New, a negative capacity is rejected with
// ErrInvalidConfiguration rather than treated as zero.
func NewSafe[T any](capacity int) (*Sender[T], *Receiver[T], error) {
	config := DefaultConfig()
	config.Capacity = capacity
	return NewWithConfigSafe[T](config)
}

// NewWithConfigSafe creates a channel with validation that returns an error
// instead of sanitizing.
func NewWithConfigSafe[T any](config Config) (*Sender[T], *Receiver[T], error) {
	if config.Capacity < 0 {
		return nil, nil, fmt.Errorf("%w: capacity must not be negative, got %d",
			ErrInvalidConfiguration, config.Capacity)
	}

	tx, rx := NewWithConfig[T](config)
	return tx, rx, nil
}

// tryPush enqueues item without blocking. It fails with ErrQueueFull iff
// the queue is at capacity at the moment of the attempt, and with ErrClosed
// if the channel has been closed. On success the receive-side waiter is
// woken (at most one wake per push); on failure no wake occurs.
func (c *core[T]) tryPush(item T) error {
	if c.closed.Load() {
		return ErrClosed
	}

	if c.config.Capacity == 0 {
		if c.parked.Load() == 0 || !c.handoff.CompareAndSwap(nil, &item) {
			c.noteFull()
			return ErrQueueFull
		}
	} else if !c.queue.tryPush(item) {
		c.noteFull()
		return ErrQueueFull
	}

	c.sends.Add(1)
	c.lastSendNano.Store(time.Now().UnixNano())
	if in := c.instr.Load(); in != nil {
		in.registry.ItemsSent.WithLabelValues(in.name).Inc()
		in.registry.QueueDepth.WithLabelValues(in.name).Set(float64(c.len()))
	}
	c.recvSide.wake()
	return nil
}

// tryPop dequeues the oldest item without blocking, regardless of close
// state: draining already-queued items is always permitted after close.
func (c *core[T]) tryPop() (T, bool) {
	var item T
	var ok bool

	if c.config.Capacity == 0 {
		if p := c.handoff.Swap(nil); p != nil {
			item, ok = *p, true
		}
	} else {
		item, ok = c.queue.tryPop()
	}
	if !ok {
		return item, false
	}

	c.receives.Add(1)
	c.lastRecvNano.Store(time.Now().UnixNano())
	if in := c.instr.Load(); in != nil {
		in.registry.ItemsReceived.WithLabelValues(in.name).Inc()
		in.registry.QueueDepth.WithLabelValues(in.name).Set(float64(c.len()))
	}
	c.sendSide.wake()
	return item, true
}

// close marks the channel closed and wakes both sides so a parked receiver
// observes closure immediately and a parked sender fails its next send.
// Idempotent; the flag never resets.
func (c *core[T]) close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}

	if in := c.instr.Load(); in != nil {
		in.registry.ChannelClosed.WithLabelValues(in.name).Inc()
	}
	if c.config.OnClose != nil {
		c.config.OnClose()
	}
	c.sendSide.wake()
	c.recvSide.wake()
}

// full reports whether a push would fail right now. A capacity-0 channel is
// full whenever no receiver is parked or the handoff cell is occupied.
func (c *core[T]) full() bool {
	if c.config.Capacity == 0 {
		return c.parked.Load() == 0 || c.handoff.Load() != nil
	}
	return c.queue.full()
}

func (c *core[T]) empty() bool {
	if c.config.Capacity == 0 {
		return c.handoff.Load() == nil
	}
	return c.queue.empty()
}

func (c *core[T]) len() int {
	if c.config.Capacity == 0 {
		if c.handoff.Load() != nil {
			return 1
		}
		return 0
	}
	return c.queue.len()
}

func (c *core[T]) noteFull() {
	c.fullRejections.Add(1)
	if in := c.instr.Load(); in != nil {
		in.registry.QueueFull.WithLabelValues(in.name).Inc()
	}
	if c.config.OnFull != nil {
		c.config.OnFull()
	}
}

func (c *core[T]) snapshot() Stats {
	s := Stats{
		Sends:          c.sends.Load(),
		Receives:       c.receives.Load(),
		FullRejections: c.fullRejections.Load(),
		SendWaits:      c.sendWaits.Load(),
		RecvWaits:      c.recvWaits.Load(),
	}
	if nano := c.lastSendNano.Load(); nano != 0 {
		s.LastSendTime = time.Unix(0, nano)
	}
	if nano := c.lastRecvNano.Load(); nano != 0 {
		s.LastReceiveTime = time.Unix(0, nano)
	}
	return s
}
