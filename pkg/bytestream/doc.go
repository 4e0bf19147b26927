/*
Package bytestream adapts a channel of discrete byte chunks into a
continuous, backpressure-aware byte stream.

A Reader consumes a Receiver of []byte chunks and serves incremental reads
of arbitrary size from caller-supplied buffers. Chunk boundaries disappear:
a read may span several chunks, and a chunk larger than the buffer is
delivered across several reads, its unread tail carried in the reader's
scratch slot between calls. Bytes are always copied directly from the
original chunk into the caller's buffer; the scratch slot holds only the
chunk reference and position.

	tx, rx := channel.New[[]byte](16)
	r := bytestream.NewReader(rx) // rx must not be used directly afterward

	buf := make([]byte, 120)
	for {
		n, err := r.ReadContext(ctx, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		handle(buf[:n])
	}

Read semantics follow io.Reader: a call returns as soon as it has at least
one byte, short reads are normal, and it blocks only when it would
otherwise return 0 bytes while the channel is still open. After the channel
is closed and fully drained every read returns (0, io.EOF).

Reader also implements io.Reader directly, so it composes with the standard
library:

	data, err := io.ReadAll(bytestream.NewReader(rx))
*/
package bytestream
