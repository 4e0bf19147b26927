package bytestream

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/vnykmshr/bytechan/pkg/channel"
)

// Reader adapts a Receiver of byte chunks into a pull-based stream read
// with caller-supplied buffers. Unconsumed bytes of a partially delivered
// chunk are carried in a scratch slot across calls; only the chunk
// reference and position are retained, never a copy of the bytes.
//
// A Reader owns its Receiver exclusively and is itself meant for one
// reading goroutine at a time.
type Reader struct {
	rx      *channel.Receiver[[]byte]
	scratch []byte // unread tail of a partially delivered chunk

	bytesRead  atomic.Int64
	readCount  atomic.Int64
	chunkCount atomic.Int64

	// name labels this reader's metric series; instr is swapped atomically
	// so metrics can be enabled and disabled while reads are in flight.
	name  string
	instr atomic.Pointer[instrumentation]
}

var _ io.Reader = (*Reader)(nil)

// Stats holds a snapshot of reader counters.
type Stats struct {
	// BytesRead is the total number of bytes copied into caller buffers.
	BytesRead int64

	// Reads is the number of read calls that returned at least one byte.
	Reads int64

	// Chunks is the number of chunks fully consumed from the channel.
	Chunks int64
}

// NewReader wraps rx in a Reader. This is an ownership transfer: the
// Receiver must not be used directly afterward, or the reader's scratch
// accounting and the stream's byte order are no longer guaranteed.
func NewReader(rx *channel.Receiver[[]byte]) *Reader {
	return &Reader{rx: rx}
}

// ReadContext copies stream bytes into p and returns the count. It blocks
// only when it would otherwise return 0 bytes while the channel is still
// open; a short read is valid and expected, not an error. Once the channel
// is closed and drained it returns (0, io.EOF), terminally and repeatably.
// A non-EOF error is returned only when ctx is canceled.
func (r *Reader) ReadContext(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		n := 0

		// Leftover of a partially delivered chunk goes first.
		if len(r.scratch) > 0 {
			n = copy(p, r.scratch)
			r.scratch = r.scratch[n:]
			if len(r.scratch) > 0 {
				// The leftover alone filled the buffer. Never
				// interleave a second chunk in that case.
				r.note(n, len(p))
				return n, nil
			}
			r.chunkDone()
		}

		// Drain queued chunks into the remaining space.
		for n < len(p) {
			chunk, ok := r.rx.TryRecv()
			if !ok {
				break
			}
			m := copy(p[n:], chunk)
			n += m
			if m < len(chunk) {
				r.scratch = chunk[m:]
				break
			}
			r.chunkDone()
		}

		if n > 0 {
			r.note(n, len(p))
			return n, nil
		}

		// Nothing available. Park until a push or a close; Recv returns
		// ok=false once the channel is closed and drained.
		chunk, ok, err := r.rx.Recv(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
		r.scratch = chunk
	}
}

// Read implements io.Reader over a background context.
func (r *Reader) Read(p []byte) (int, error) {
	return r.ReadContext(context.Background(), p)
}

// Buffered returns the number of bytes held in the scratch slot plus the
// number of chunks still queued in the channel. It is a snapshot for
// observability, not a synchronization primitive.
func (r *Reader) Buffered() int {
	return len(r.scratch) + r.rx.Len()
}

// Stats returns a snapshot of reader counters.
func (r *Reader) Stats() Stats {
	return Stats{
		BytesRead: r.bytesRead.Load(),
		Reads:     r.readCount.Load(),
		Chunks:    r.chunkCount.Load(),
	}
}

func (r *Reader) note(n, buflen int) {
	r.bytesRead.Add(int64(n))
	r.readCount.Add(1)
	if in := r.instr.Load(); in != nil {
		in.registry.ReaderBytesRead.WithLabelValues(in.name).Add(float64(n))
		in.registry.ReaderReads.WithLabelValues(in.name).Inc()
		if n < buflen {
			in.registry.ReaderShortReads.WithLabelValues(in.name).Inc()
		}
	}
}

func (r *Reader) chunkDone() {
	r.chunkCount.Add(1)
	if in := r.instr.Load(); in != nil {
		in.registry.ReaderChunks.WithLabelValues(in.name).Inc()
	}
}
