package channel

import "sync/atomic"

const (
	inactive int32 = 0
	active   int32 = 1 << iota
	writeable

	openMode = active | writeable
)

func (ch *Channel) calState(state int32) bool {
	return atomic.LoadInt32(&ch.state)&state == state
}

// clearState drops the state bits, it reports false when they were already
// cleared.
func (ch *Channel) clearState(state int32) bool {
	for {
		old := atomic.LoadInt32(&ch.state)
		if old&state == 0 {
			return false
		}
		if atomic.CompareAndSwapInt32(&ch.state, old, old&^state) {
			return true
		}
	}
}
