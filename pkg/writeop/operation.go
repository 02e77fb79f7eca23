// Package writeop tracks the progress of one logical write that spans
// several byte buffers.
//
// An Operation never performs I/O. Its owner asks for the buffers that are
// still pending, hands them to a scatter write, and reports back how many
// bytes the transport accepted. The Operation only moves offsets around:
// no bytes are ever copied and the buffers stay owned by the caller.
package writeop

import (
	"github.com/emove/nio/internal/errors"
)

// Listener is notified once the operation is done. A nil error means every
// byte was written; otherwise err describes why the write was abandoned.
//
// The Operation never invokes its own listener, the driver that owns the
// operation does, exactly once.
type Listener func(err error)

// Operation is a single logical write over an ordered, fixed list of buffers.
//
// It is not safe for concurrent use: it belongs to the goroutine that drives
// the connection it writes to.
type Operation struct {
	bufs  [][]byte
	views [][]byte // views[index] is bufs[index][offset:], the rest mirror bufs

	length   int
	consumed int

	index  int
	offset int

	listener Listener
}

// New returns an Operation over bufs. Only the slice headers are copied.
//
// Zero-length buffers and an empty list are accepted; an operation with no
// bytes to write is fully flushed from the start. A nil bufs is rejected.
func New(bufs [][]byte, listener Listener) (*Operation, error) {
	if bufs == nil {
		return nil, errors.New("%w: buffers must not be nil", ErrInvalidArgument)
	}

	views := make([][]byte, len(bufs))
	copy(views, bufs)

	length := 0
	for _, b := range bufs {
		length += len(b)
	}

	op := &Operation{
		bufs:     bufs,
		views:    views,
		length:   length,
		listener: listener,
	}
	op.skipDrained()
	return op, nil
}

// Advance records that the transport accepted n more bytes.
//
// n must not exceed Remaining. Reporting more bytes than are left means the
// transport and the caller disagree about what was sent, so Advance panics
// with an *InvariantError instead of clamping.
func (op *Operation) Advance(n int) {
	if n < 0 || n > op.length-op.consumed {
		panic(&InvariantError{Length: op.length, Consumed: op.consumed, N: n})
	}
	if n == 0 {
		return
	}

	op.consumed += n
	for n > 0 {
		step := len(op.bufs[op.index]) - op.offset
		if step > n {
			step = n
		}
		op.offset += step
		n -= step
		op.skipDrained()
	}
	op.views[op.index] = op.bufs[op.index][op.offset:]
}

// IsFullyFlushed reports whether every byte has been accepted.
func (op *Operation) IsFullyFlushed() bool {
	return op.consumed == op.length
}

// BuffersToWrite returns the buffers still pending, the first one starting
// at its partial offset. The result is a window onto internal state: it is
// valid until the next Advance and must not be modified.
//
// Once fully flushed, the window still holds the last buffer, with nothing
// left in it.
func (op *Operation) BuffersToWrite() [][]byte {
	if len(op.views) == 0 {
		return op.views
	}
	return op.views[op.index:]
}

// Len returns the total number of bytes across all buffers.
func (op *Operation) Len() int {
	return op.length
}

// Consumed returns the number of bytes accepted so far.
func (op *Operation) Consumed() int {
	return op.consumed
}

// Remaining returns the number of bytes still to be written.
func (op *Operation) Remaining() int {
	return op.length - op.consumed
}

func (op *Operation) Listener() Listener {
	return op.listener
}

// skipDrained moves the cursor past buffers with nothing left in them, but
// never past the last buffer.
func (op *Operation) skipDrained() {
	last := len(op.bufs) - 1
	for op.index < last && op.offset == len(op.bufs[op.index]) {
		op.index++
		op.offset = 0
	}
}
