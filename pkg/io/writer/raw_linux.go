//go:build linux
// +build linux

package writer

import (
	"syscall"

	"code.hybscloud.com/iox"
	nio_io "github.com/emove/nio/pkg/io"
	"golang.org/x/sys/unix"
)

// NewRawWriter returns a non-blocking writer issuing one writev per call on
// the descriptor behind sc. At most maxIovecs non-empty buffers go into a
// single call; maxIovecs <= 0 means DefaultMaxIovecs.
//
// EAGAIN is reported as iox.ErrWouldBlock together with the bytes written.
func NewRawWriter(sc syscall.Conn, maxIovecs int) (nio_io.VectorWriter, error) {
	rc, err := sc.SyscallConn()
	if err != nil {
		return nil, err
	}
	if maxIovecs <= 0 || maxIovecs > DefaultMaxIovecs {
		maxIovecs = DefaultMaxIovecs
	}
	w := &rawWriter{
		rc:        rc,
		maxIovecs: maxIovecs,
		iovs:      make([][]byte, 0, maxIovecs),
	}
	if c, ok := sc.(closer); ok {
		w.closer = c
	}
	return w, nil
}

type closer interface {
	Close() error
}

type rawWriter struct {
	rc        syscall.RawConn
	closer    closer
	maxIovecs int
	iovs      [][]byte
}

func (w *rawWriter) WriteBuffers(bufs [][]byte) (n int, err error) {
	w.iovs = w.iovs[:0]
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		w.iovs = append(w.iovs, b)
		if len(w.iovs) == w.maxIovecs {
			break
		}
	}
	if len(w.iovs) == 0 {
		return 0, nil
	}
	defer func() {
		for i := range w.iovs {
			w.iovs[i] = nil
		}
	}()

	var writevErr error
	err = w.rc.Write(func(fd uintptr) bool {
		for {
			n, writevErr = unix.Writev(int(fd), w.iovs)
			if writevErr != unix.EINTR {
				return true
			}
		}
	})
	if n < 0 {
		n = 0
	}
	if err != nil {
		return n, err
	}
	if writevErr == unix.EAGAIN {
		return n, iox.ErrWouldBlock
	}
	return n, writevErr
}

func (w *rawWriter) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
