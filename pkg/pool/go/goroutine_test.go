package _go

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitWithoutPool(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ran := int32(0)
	Submit(func() {
		atomic.StoreInt32(&ran, 1)
		wg.Done()
	})
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestSubmitOnPool(t *testing.T) {
	Init()
	defer Release()

	var wg sync.WaitGroup
	cnt := 64
	var done int32
	wg.Add(cnt)
	for i := 0; i < cnt; i++ {
		Submit(func() {
			atomic.AddInt32(&done, 1)
			wg.Done()
		})
	}
	wg.Wait()
	assert.Equal(t, int32(cnt), atomic.LoadInt32(&done))
}

func TestInitAfterRelease(t *testing.T) {
	Init()
	Release()
	Init()
	defer Release()

	var wg sync.WaitGroup
	wg.Add(1)
	Submit(wg.Done)
	wg.Wait()
	assert.GreaterOrEqual(t, Running(), 0)
}
