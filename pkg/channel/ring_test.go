package channel

import (
	"runtime"
	"sync"
	"testing"

	"github.com/vnykmshr/bytechan/internal/testutil"
)

func TestRingPushPopOrder(t *testing.T) {
	r := newRing[int](8)

	for i := 0; i < 5; i++ {
		testutil.AssertEqual(t, r.tryPush(i), true)
	}

	for i := 0; i < 5; i++ {
		v, ok := r.tryPop()
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, v, i)
	}

	_, ok := r.tryPop()
	testutil.AssertEqual(t, ok, false)
}

func TestRingExactCapacity(t *testing.T) {
	// Capacities are honored exactly, including ones that are not powers
	// of two.
	for _, capacity := range []int{1, 2, 3, 7, 10} {
		r := newRing[int](capacity)

		for i := 0; i < capacity; i++ {
			testutil.AssertEqual(t, r.tryPush(i), true)
		}
		testutil.AssertEqual(t, r.tryPush(99), false)
		testutil.AssertEqual(t, r.full(), true)
		testutil.AssertEqual(t, r.len(), capacity)

		v, ok := r.tryPop()
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, v, 0)
		testutil.AssertEqual(t, r.full(), false)

		// The freed slot is immediately reusable.
		testutil.AssertEqual(t, r.tryPush(99), true)
		testutil.AssertEqual(t, r.tryPush(100), false)
	}
}

func TestRingWraparound(t *testing.T) {
	r := newRing[int](3)

	// Cycle through the ring many more times than its capacity.
	for i := 0; i < 100; i++ {
		testutil.AssertEqual(t, r.tryPush(i), true)
		v, ok := r.tryPop()
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, v, i)
	}
	testutil.AssertEqual(t, r.empty(), true)
}

func TestRingConcurrent(t *testing.T) {
	const (
		producers = 4
		perItem   = 500
	)

	r := newRing[int](64)
	var wg sync.WaitGroup

	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perItem; i++ {
				for !r.tryPush(base + i) {
					runtime.Gosched()
				}
			}
		}(p * perItem)
	}

	seen := make(map[int]bool, producers*perItem)
	var mu sync.Mutex
	var cwg sync.WaitGroup
	cwg.Add(2)
	for c := 0; c < 2; c++ {
		go func() {
			defer cwg.Done()
			for {
				mu.Lock()
				if len(seen) == producers*perItem {
					mu.Unlock()
					return
				}
				mu.Unlock()

				v, ok := r.tryPop()
				if !ok {
					runtime.Gosched()
					continue
				}
				mu.Lock()
				if seen[v] {
					mu.Unlock()
					t.Errorf("item %d delivered twice", v)
					return
				}
				seen[v] = true
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	cwg.Wait()

	testutil.AssertEqual(t, len(seen), producers*perItem)
}
