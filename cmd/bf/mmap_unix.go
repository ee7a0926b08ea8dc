//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/blobfig/go-blobfig/debug"
)

// mapFile maps path read-only. Irregular and empty files fall back to
// a plain read, as does a failed mmap.
func mapFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if !st.Mode().IsRegular() || st.Size() == 0 {
		return readFileAll(path)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		if debug.Mmap() {
			debug.Logf("bf: mmap %s failed (%v), reading\n", path, err)
		}
		return readFileAll(path)
	}
	if debug.Mmap() {
		debug.Logf("bf: mmap %s: %d bytes\n", path, len(data))
	}
	return data, func() { unix.Munmap(data) }, nil
}
