package ir

import "errors"

// ErrShape reports an array whose payload length does not agree with
// its shape and dtype, or whose shape product overflows.
var ErrShape = errors.New("array shape mismatch")
