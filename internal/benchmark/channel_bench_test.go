package benchmark

import (
	"context"
	"strconv"
	"testing"

	"github.com/vnykmshr/bytechan/pkg/channel"
)

func sizeLabel(n int) string {
	return "capacity_" + strconv.Itoa(n)
}

// BenchmarkChannelSend measures the blocking send path with a draining
// consumer.
func BenchmarkChannelSend(b *testing.B) {
	capacities := []int{16, 128, 1024}

	for _, capacity := range capacities {
		b.Run(sizeLabel(capacity), func(b *testing.B) {
			tx, rx := channel.New[int](capacity)

			done := make(chan struct{})
			go func() {
				defer close(done)
				ctx := context.Background()
				for {
					_, ok, err := rx.Recv(ctx)
					if err != nil || !ok {
						return
					}
				}
			}()

			b.ReportAllocs()
			b.ResetTimer()
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				_ = tx.Send(ctx, i)
			}
			b.StopTimer()

			tx.Close()
			<-done
		})
	}
}

// BenchmarkChannelTrySend measures the non-blocking fast path with space
// always available.
func BenchmarkChannelTrySend(b *testing.B) {
	tx, rx := channel.New[int](1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tx.TrySend(i)
		_, _ = rx.TryRecv()
	}
	b.StopTimer()
	tx.Close()
}

// BenchmarkChannelRecv measures the receive path against a saturating
// producer.
func BenchmarkChannelRecv(b *testing.B) {
	tx, rx := channel.New[int](1024)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		i := 0
		for {
			if err := tx.Send(ctx, i); err != nil {
				return
			}
			i++
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ok, err := rx.Recv(ctx)
		if err != nil || !ok {
			b.Fatal("channel drained unexpectedly")
		}
	}
	b.StopTimer()

	tx.Close()
	// Unblock and drain the producer's final parked send, if any.
	for {
		if _, ok := rx.TryRecv(); !ok {
			break
		}
	}
	<-done
}
