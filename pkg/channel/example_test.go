package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Example demonstrates basic channel usage.
func Example() {
	ctx := context.Background()

	tx, rx := New[string](4)

	_ = tx.Send(ctx, "first")
	_ = tx.Send(ctx, "second")
	fmt.Printf("Buffered: %d/%d\n", tx.Len(), tx.Cap())

	v, _, _ := rx.Recv(ctx)
	fmt.Printf("Received: %s\n", v)

	// Output:
	// Buffered: 2/4
	// Received: first
}

// Example_backpressure demonstrates the non-blocking send path surfacing a
// full queue to the caller.
func Example_backpressure() {
	tx, _ := New[int](2)

	fmt.Println(tx.TrySend(1))
	fmt.Println(tx.TrySend(2))
	fmt.Println(errors.Is(tx.TrySend(3), ErrQueueFull))

	// Output:
	// <nil>
	// <nil>
	// true
}

// Example_closeAndDrain demonstrates that close never discards: queued
// items drain before end-of-stream is reported.
func Example_closeAndDrain() {
	ctx := context.Background()

	tx, rx := New[int](4)
	_ = tx.TrySend(10)
	_ = tx.TrySend(20)
	tx.Close()

	for {
		v, ok, _ := rx.Recv(ctx)
		if !ok {
			fmt.Println("end of stream")
			return
		}
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// end of stream
}

// Example_rendezvous demonstrates the capacity-0 channel: a send completes
// only against a concurrently parked receive.
func Example_rendezvous() {
	ctx := context.Background()

	tx, rx := New[int](0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, _, _ := rx.Recv(ctx)
		fmt.Printf("handed off: %d\n", v)
	}()

	_ = tx.Send(ctx, 99)
	wg.Wait()
	fmt.Printf("queued after handoff: %d\n", tx.Len())

	// Output:
	// handed off: 99
	// queued after handoff: 0
}
