package writer

import (
	"io"
	"net"

	nio_io "github.com/emove/nio/pkg/io"
)

// NewStdWriter adapts a blocking io.Writer. A net.Conn gets a single writev
// where the platform supports it; any other writer is written buffer by
// buffer.
func NewStdWriter(w io.Writer) nio_io.VectorWriter {
	return &stdWriter{w: w}
}

type stdWriter struct {
	w io.Writer
}

func (s *stdWriter) WriteBuffers(bufs [][]byte) (n int, err error) {
	if _, ok := s.w.(net.Conn); ok {
		nb := net.Buffers(bufs)
		written, err := nb.WriteTo(s.w)
		return int(written), err
	}

	for _, buf := range bufs {
		if len(buf) == 0 {
			continue
		}
		var m int
		m, err = s.w.Write(buf)
		n += m
		if err != nil {
			return n, err
		}
		if m != len(buf) {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// Close closes the underlying writer when it is an io.Closer.
func (s *stdWriter) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
