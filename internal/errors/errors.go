// Package errors holds the small error helpers shared by nio packages.
package errors

import "fmt"

// New formats an error. Use %w to wrap a sentinel.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// AsError turns a recovered panic value into an error, keeping it as is when
// it already is one.
func AsError(v interface{}) error {
	switch e := v.(type) {
	case nil:
		return nil
	case error:
		return e
	case string:
		return fmt.Errorf("%s", e)
	default:
		return fmt.Errorf("%v", e)
	}
}
