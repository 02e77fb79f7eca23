package writeop

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an Operation cannot be built from the
// given arguments.
var ErrInvalidArgument = errors.New("writeop: invalid argument")

// InvariantError is the panic value of an Advance that reports more bytes
// than the operation has left.
type InvariantError struct {
	Length   int
	Consumed int
	N        int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("writeop: advance by %d with %d of %d bytes consumed", e.N, e.Consumed, e.Length)
}
