/*
Package bytechan provides bounded asynchronous channels with waker-based
backpressure and a byte-stream adapter for chunked payloads.

Channels (pkg/channel):
  - fixed-capacity, lock-free MPMC queue with suspend-on-full producers
  - cloneable Sender/Receiver handles sharing one channel core
  - one-shot close with drain-then-end-of-stream semantics
  - capacity-0 rendezvous channels for pure handoff

Byte streaming (pkg/bytestream):
  - Reader adapting a chunk channel to incremental reads of arbitrary size
  - caller-supplied buffers, scratch slot for partially consumed chunks
  - io.Reader compatible

Observability (pkg/metrics):
  - Prometheus instrumentation for channels and readers

Example usage:

	import (
		"github.com/vnykmshr/bytechan/pkg/bytestream"
		"github.com/vnykmshr/bytechan/pkg/channel"
	)

	tx, rx := channel.New[[]byte](16)
	r := bytestream.NewReader(rx)

	go produce(tx) // Send chunks, then Close
	io.Copy(dst, r)
*/
package bytechan
