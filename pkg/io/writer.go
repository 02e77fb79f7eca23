package io

// VectorWriter is an abstraction to scatter-write buffers to a connection.
type VectorWriter interface {

	// WriteBuffers writes bufs in order and returns how many bytes were
	// accepted, 0 <= n <= total length of bufs.
	//
	// A non-blocking implementation may accept fewer bytes than offered with
	// a nil error, or return iox.ErrWouldBlock when it cannot make progress
	// without waiting. Implementations may modify the slice headers in bufs.
	WriteBuffers(bufs [][]byte) (n int, err error)
}

// VectorWriterFunc adapts a function to VectorWriter.
type VectorWriterFunc func(bufs [][]byte) (n int, err error)

func (f VectorWriterFunc) WriteBuffers(bufs [][]byte) (int, error) {
	return f(bufs)
}
