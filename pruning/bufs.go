package pruning

import "bytes"

// byteBuffer adapts a growable byte slice to io.Writer for bitio.NewWriter,
// avoiding a bytes.Buffer import's extra surface for what is otherwise a
// plain append sink.
type byteBuffer struct {
	buf bytes.Buffer
}

func (b *byteBuffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *byteBuffer) bytes() []byte {
	return b.buf.Bytes()
}

// newByteReader wraps packed for bitio.NewReader, which prefers an
// io.ByteReader for allocation-free single-byte reads.
func newByteReader(packed []byte) *bytes.Reader {
	return bytes.NewReader(packed)
}
