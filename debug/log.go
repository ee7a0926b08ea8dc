package debug

import (
	"fmt"
	"os"
)

// Logf writes a diagnostic line to stderr. Callers gate on the
// BF_DEBUG_* accessors; Logf itself is unconditional.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
