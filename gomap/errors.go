package gomap

import "errors"

var (
	// ErrUnsupported reports a Go value with no ir representation.
	ErrUnsupported = errors.New("unsupported go value")

	// ErrOverflow reports a numeric value that does not fit int64.
	ErrOverflow = errors.New("integer overflow")

	// ErrTooDeep reports nesting beyond the conversion depth limit,
	// which is how self-referential maps and slices surface.
	ErrTooDeep = errors.New("nesting too deep")
)
