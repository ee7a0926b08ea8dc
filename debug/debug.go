// Package debug holds process-wide debug switches, set once at startup
// from BF_DEBUG_* environment variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Mmap  bool
	Pack  bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Mmap = boolEnv("BF_DEBUG_MMAP")
	d.Pack = boolEnv("BF_DEBUG_PACK")
	d.Patch = boolEnv("BF_DEBUG_PATCH")
	d.Eval = boolEnv("BF_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Mmap() bool {
	return d.Mmap
}
func Pack() bool {
	return d.Pack
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
