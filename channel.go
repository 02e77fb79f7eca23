package nio

import (
	"context"

	"github.com/emove/nio/pkg/writeop"
)

type (
	// OnChannelClosed is a hook which will be invoked when channel closed.
	OnChannelClosed func(ch Channel, err error)
)

// Channel defines the write side of one connection.
type Channel interface {
	// ID returns the identifier the channel logs with.
	ID() string

	// Write queues bufs as one write operation. listener is invoked exactly
	// once, with nil after the last byte was accepted or with the error
	// that made the channel give up. It is not invoked when Write fails.
	Write(bufs [][]byte, listener writeop.Listener) error

	// Enqueue queues a write operation built by the caller.
	Enqueue(op *writeop.Operation) error

	// Flush writes queued operations until done or blocked, see
	// iox.ErrWouldBlock.
	Flush() error

	// Drain flushes until every queued operation completed or ctx is done.
	Drain(ctx context.Context) error

	// HasQueuedWrites reports whether operations are waiting to be written.
	HasQueuedWrites() bool

	// PendingBytes returns the number of queued bytes not yet written.
	PendingBytes() int64

	// QueuedOperations returns the number of operations not yet completed.
	QueuedOperations() int64

	// IsActive returns false only when the channel closed.
	IsActive() bool

	// Writeable returns the channel writeable or not.
	Writeable() bool

	// CloseWriter stops accepting writes, queued ones still flush.
	CloseWriter()

	// Close fails the queued operations with err and closes the connection.
	Close(err error) error
}
