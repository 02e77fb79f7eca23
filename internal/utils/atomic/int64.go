package atomic

import "sync/atomic"

type AtomicInt64 int64

func (i *AtomicInt64) Inc() int64 {
	return atomic.AddInt64((*int64)(i), 1)
}

func (i *AtomicInt64) Dec() {
	atomic.AddInt64((*int64)(i), -1)
}

// Add adds delta and returns the new value.
func (i *AtomicInt64) Add(delta int64) int64 {
	return atomic.AddInt64((*int64)(i), delta)
}

// Swap stores v and returns the previous value.
func (i *AtomicInt64) Swap(v int64) int64 {
	return atomic.SwapInt64((*int64)(i), v)
}

func (i *AtomicInt64) Value() int64 {
	return atomic.LoadInt64((*int64)(i))
}
