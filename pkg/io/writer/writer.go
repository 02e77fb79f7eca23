// Package writer provides VectorWriter implementations over sockets.
package writer

import "errors"

// DefaultMaxIovecs is the usual IOV_MAX of the kernel.
const DefaultMaxIovecs = 1024

// ErrUnsupported is returned by constructors not available on this platform.
var ErrUnsupported = errors.New("writer: not supported on this platform")
