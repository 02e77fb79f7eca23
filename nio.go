// Package nio writes multi-buffer messages to non-blocking connections.
//
// Each message is tracked by a writeop.Operation: the channel hands its
// remaining buffers to a single scatter write, advances it by the bytes
// the kernel took, and calls the listener once the last byte went out.
package nio

import (
	"net"
	"syscall"

	"github.com/emove/nio/internal/channel"
	nio_io "github.com/emove/nio/pkg/io"
	"github.com/emove/nio/pkg/io/writer"
)

var _ Channel = (*channel.Channel)(nil)

var (
	ErrChannelClosed       = channel.ErrChannelClosed
	ErrChannelWriterClosed = channel.ErrChannelWriterClosed
)

// NewChannel returns a Channel writing through w.
func NewChannel(w nio_io.VectorWriter, op ...Option) Channel {
	ops := applyOptions(op)
	return channel.NewChannel(w, ops.channelOps...)
}

// NewConnChannel returns a Channel over conn. Where the platform allows it the
// channel issues non-blocking writev calls on the socket and Flush reports
// iox.ErrWouldBlock when the socket buffer is full; otherwise writes block.
func NewConnChannel(conn net.Conn, op ...Option) Channel {
	ops := applyOptions(op)

	var w nio_io.VectorWriter
	if sc, ok := conn.(syscall.Conn); ok {
		if raw, err := writer.NewRawWriter(sc, ops.maxIovecs); err == nil {
			w = raw
		}
	}
	if w == nil {
		w = writer.NewStdWriter(conn)
	}
	return channel.NewChannel(w, ops.channelOps...)
}

func applyOptions(op []Option) *options {
	ops := &options{}
	for _, o := range op {
		o.Apply(ops)
	}
	return ops
}
