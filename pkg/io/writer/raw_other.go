//go:build !linux
// +build !linux

package writer

import (
	"syscall"

	nio_io "github.com/emove/nio/pkg/io"
)

// NewRawWriter is only available on linux.
func NewRawWriter(sc syscall.Conn, maxIovecs int) (nio_io.VectorWriter, error) {
	return nil, ErrUnsupported
}
