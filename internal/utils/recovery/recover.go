package recovery

import (
	"runtime/debug"

	"github.com/emove/nio/internal/errors"
)

// PanicError carries a recovered panic value and the stack it was raised on.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return errors.New("panic: %v\n stack: %s", e.Value, e.Stack).Error()
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Do runs fn and converts a panic into a *PanicError.
func Do(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{Value: p, Stack: debug.Stack()}
		}
	}()

	return fn()
}

// Recover must be deferred. It hands a recovered panic to fn as an error.
func Recover(fn func(err error)) {
	if p := recover(); p != nil {
		fn(&PanicError{Value: p, Stack: debug.Stack()})
	}
}
