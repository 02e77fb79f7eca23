package channel

import (
	"context"
	"errors"
	stdio "io"
	"sync/atomic"

	"code.hybscloud.com/iox"
	"github.com/google/uuid"

	nio_errors "github.com/emove/nio/internal/errors"
	nio_atomic "github.com/emove/nio/internal/utils/atomic"
	"github.com/emove/nio/internal/utils/recovery"
	"github.com/emove/nio/log"
	"github.com/emove/nio/pkg/io"
	_go "github.com/emove/nio/pkg/pool/go"
	"github.com/emove/nio/pkg/writeop"
)

var (
	ErrChannelClosed       = errors.New("channel has been closed")
	ErrChannelWriterClosed = errors.New("channel writer has been closed")
)

// Channel queues write operations for one connection and drives them
// through a VectorWriter, oldest first.
//
// Write, Enqueue, Flush, Drain and Close belong to the goroutine that owns the
// connection. State queries and PendingBytes may be called from anywhere.
type Channel struct {
	id     string
	w      io.VectorWriter
	ops    *options
	logger log.FullLogger

	state   int32
	queue   []*writeop.Operation
	scratch [][]byte

	pending nio_atomic.AtomicInt64
	queued  nio_atomic.AtomicInt64
}

func NewChannel(w io.VectorWriter, opts ...Option) *Channel {
	ops := defaultOptions()
	for _, o := range opts {
		o(ops)
	}

	id := uuid.NewString()
	l, _ := log.With(ops.logger, "channel", id)

	if ops.asyncListener {
		_go.Init()
	}

	ch := &Channel{
		id:     id,
		w:      w,
		ops:    ops,
		logger: log.NewFullLogger(l),
		state:  openMode,
	}
	ch.logger.Debugf("channel active")
	return ch
}

func (ch *Channel) ID() string {
	return ch.id
}

// Write queues bufs as one operation. The listener is not invoked when Write
// returns an error.
func (ch *Channel) Write(bufs [][]byte, listener writeop.Listener) error {
	op, err := writeop.New(bufs, listener)
	if err != nil {
		return err
	}
	return ch.Enqueue(op)
}

// Enqueue queues an operation built by the caller.
func (ch *Channel) Enqueue(op *writeop.Operation) error {
	if op == nil {
		return nio_errors.New("%w: nil operation", writeop.ErrInvalidArgument)
	}
	if !ch.calState(active) {
		return ErrChannelClosed
	}
	if !ch.calState(writeable) {
		return ErrChannelWriterClosed
	}

	ch.queue = append(ch.queue, op)
	ch.queued.Inc()
	ch.pending.Add(int64(op.Remaining()))
	ch.ops.metrics.Queued(op.Remaining())
	return nil
}

// Flush writes queued operations until the queue is empty or the writer
// stops making progress.
//
// It returns nil once everything was written and iox.ErrWouldBlock when the
// caller should retry after the connection becomes writable. Any other error
// comes from the writer: every queued listener has then been failed with it
// and the channel is closed.
func (ch *Channel) Flush() error {
	if !ch.calState(active) {
		return ErrChannelClosed
	}

	for len(ch.queue) > 0 {
		op := ch.queue[0]
		if !op.IsFullyFlushed() {
			// the writer may consume the headers it is given, never hand it
			// the operation's own window
			ch.scratch = append(ch.scratch[:0], op.BuffersToWrite()...)
			n, err := ch.w.WriteBuffers(ch.scratch)
			ch.clearScratch()

			if n > 0 {
				op.Advance(n)
				ch.pending.Add(-int64(n))
			}
			ch.ops.metrics.Written(n, n > 0 && !op.IsFullyFlushed())

			if err != nil {
				if iox.IsWouldBlock(err) {
					ch.ops.metrics.Blocked()
					return iox.ErrWouldBlock
				}
				ch.logger.Errorw("msg", "write failed", "err", err, "queued", len(ch.queue))
				_ = ch.Close(err)
				return err
			}
			if !op.IsFullyFlushed() {
				if n == 0 {
					ch.ops.metrics.Blocked()
					return iox.ErrWouldBlock
				}
				continue
			}
		}

		ch.pop()
		ch.complete(op, nil)
	}
	return nil
}

// Drain flushes until the queue is empty, waiting between blocked attempts.
// Operations still queued when ctx is done stay queued.
func (ch *Channel) Drain(ctx context.Context) error {
	var b iox.Backoff
	b.SetBase(ch.ops.backoffBase)
	b.SetMax(ch.ops.backoffMax)

	for {
		before := ch.pending.Value()
		err := ch.Flush()
		if !iox.IsWouldBlock(err) {
			return err
		}
		if ch.pending.Value() < before {
			b.Reset()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		b.Wait()
	}
}

func (ch *Channel) HasQueuedWrites() bool {
	return len(ch.queue) > 0
}

// PendingBytes returns the bytes queued and not yet accepted by the writer.
func (ch *Channel) PendingBytes() int64 {
	return ch.pending.Value()
}

// QueuedOperations returns the number of operations not yet completed.
func (ch *Channel) QueuedOperations() int64 {
	return ch.queued.Value()
}

func (ch *Channel) IsActive() bool {
	return ch.calState(active)
}

func (ch *Channel) Writeable() bool {
	return ch.calState(openMode)
}

// CloseWriter stops accepting new operations. Queued ones are still flushed.
func (ch *Channel) CloseWriter() {
	ch.clearState(writeable)
}

// Close fails every queued operation with err, or ErrChannelClosed when err
// is nil, and closes the writer when it is an io.Closer.
func (ch *Channel) Close(err error) error {
	old := atomic.LoadInt32(&ch.state)
	if old&active == 0 || !atomic.CompareAndSwapInt32(&ch.state, old, inactive) {
		return ErrChannelClosed
	}

	cause := err
	if cause == nil {
		cause = ErrChannelClosed
	}
	queue := ch.queue
	ch.queue = nil
	for _, op := range queue {
		ch.pending.Add(-int64(op.Remaining()))
		ch.complete(op, cause)
	}

	var closeErr error
	if c, ok := ch.w.(stdio.Closer); ok {
		closeErr = c.Close()
	}

	for _, onClosed := range ch.ops.onClosed {
		onClosed(ch, err)
	}
	ch.logger.Infow("msg", "channel closed", "err", err, "failed", len(queue))
	return closeErr
}

func (ch *Channel) pop() {
	ch.queue[0] = nil
	ch.queue = ch.queue[1:]
	if len(ch.queue) == 0 {
		ch.queue = nil
	}
}

func (ch *Channel) clearScratch() {
	for i := range ch.scratch {
		ch.scratch[i] = nil
	}
}

// complete hands the result of op to its listener, exactly once per
// operation since op has already left the queue.
func (ch *Channel) complete(op *writeop.Operation, err error) {
	ch.queued.Dec()
	ch.ops.metrics.Done(op.Remaining(), err)

	listener := op.Listener()
	if listener == nil {
		return
	}
	invoke := func() {
		if perr := recovery.Do(func() error {
			listener(err)
			return nil
		}); perr != nil {
			ch.logger.Errorw("msg", "write listener panicked", "err", perr)
		}
	}
	if ch.ops.asyncListener {
		_go.Submit(invoke)
		return
	}
	invoke()
}
