package channel

import (
	"testing"
)

func isWoken(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestWakeWithoutRegistration(t *testing.T) {
	var w waker
	w.wake() // must be a no-op, not a panic
}

func TestRegisterThenWake(t *testing.T) {
	var w waker

	wait := w.register()
	if isWoken(wait) {
		t.Fatal("token woken before wake")
	}

	w.wake()
	if !isWoken(wait) {
		t.Fatal("token not woken")
	}
}

func TestLastRegistrantWins(t *testing.T) {
	var w waker

	first := w.register()
	second := w.register()

	w.wake()
	if isWoken(first) {
		t.Error("overwritten registration must never be woken")
	}
	if !isWoken(second) {
		t.Error("latest registration should be woken")
	}
}

func TestWakeConsumesRegistration(t *testing.T) {
	var w waker

	wait := w.register()
	w.wake()
	w.wake() // second wake has no target, must be a no-op

	if !isWoken(wait) {
		t.Fatal("token not woken")
	}

	// A fresh registration is independent of the consumed one.
	next := w.register()
	if isWoken(next) {
		t.Fatal("fresh token woken prematurely")
	}
	w.wake()
	if !isWoken(next) {
		t.Fatal("fresh token not woken")
	}
}
