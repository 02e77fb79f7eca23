// Package _go runs completion listeners off the goroutine that drives the
// socket, on a shared ants pool.
package _go

import (
	"runtime/debug"
	"sync"
	"time"

	"github.com/emove/nio/internal/errors"
	"github.com/emove/nio/internal/utils/recovery"
	"github.com/emove/nio/log"
	"github.com/panjf2000/ants/v2"
)

var (
	// DefaultAntsPoolSize sets up the capacity of worker pool, 64 * 1024.
	DefaultAntsPoolSize = 1 << 16
)

const (
	// ExpiryDuration is the interval time to clean up those expired workers.
	ExpiryDuration = 10 * time.Second

	// Nonblocking makes Submit fail fast on a saturated pool, the task then
	// runs on a fresh goroutine.
	Nonblocking = true
)

type logger struct{}

func (*logger) Printf(format string, a ...interface{}) {
	log.Errorf(format, a...)
}

func init() {
	// It releases the default pool from ants.
	ants.Release()
}

// Pool is the alias of ants.Pool.
type Pool = ants.Pool

var (
	mu     sync.Mutex
	global *Pool
)

// Init instantiates the shared non-blocking pool with DefaultAntsPoolSize
// workers. Calls after the first are no-ops until Release.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		return
	}
	options := ants.Options{
		ExpiryDuration: ExpiryDuration,
		Nonblocking:    Nonblocking,
		PanicHandler: func(p interface{}) {
			log.Errorf("panic on listener worker: %v,\n %s", errors.AsError(p), string(debug.Stack()))
		},
		Logger: &logger{},
	}
	p, err := ants.NewPool(DefaultAntsPoolSize, ants.WithOptions(options))
	if err != nil {
		log.Errorf("init listener pool: %v", err)
		return
	}
	global = p
}

// Submit runs task on the pool, or on a new goroutine when the pool is not
// initialised or full.
func Submit(task func()) {
	mu.Lock()
	p := global
	mu.Unlock()
	if p != nil {
		err := p.Submit(task)
		if err == nil {
			return
		}
		log.Warnw("msg", "listener pool submit failed", "err", err)
	}
	go func() {
		defer recovery.Recover(func(err error) {
			log.Errorf("listener task panicked: %v", err)
		})
		task()
	}()
}

// Running returns the number of busy workers, 0 without a pool.
func Running() int {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return 0
	}
	return global.Running()
}

// Release closes the pool workers. A later Init opens a new pool.
func Release() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.Release()
		global = nil
	}
}
