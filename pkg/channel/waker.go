package channel

import "sync/atomic"

// waker is a single-slot notification target. Register stores the caller as
// the sole party to be notified; a later registration silently replaces an
// earlier one (last registrant wins). There is no deregistration: a task
// abandoning its wait simply leaves its stale token to be overwritten.
type waker struct {
	slot atomic.Pointer[wakeToken]
}

// wakeToken is closed exactly once, when the registration it belongs to is
// woken. Waiters select on it against their context.
type wakeToken struct {
	ch chan struct{}
}

// register installs the caller as the pending notification target and
// returns the channel to wait on. Any previously registered target is
// replaced and will never be woken.
func (w *waker) register() <-chan struct{} {
	t := &wakeToken{ch: make(chan struct{})}
	w.slot.Store(t)
	return t.ch
}

// wake notifies the registered target, if any, and clears the slot. Each
// registration is woken at most once; waking with an empty slot is a no-op.
func (w *waker) wake() {
	if t := w.slot.Swap(nil); t != nil {
		close(t.ch)
	}
}
