package parse

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// The low-level readers all take an absolute offset into the buffer and
// return the offset just past what they consumed. Every read is
// bounds-checked; nothing here allocates.

func readByte(buf []byte, off int) (byte, int, error) {
	if off < 0 || off >= len(buf) {
		return 0, 0, fmt.Errorf("%w: byte at %d of %d", ErrTruncated, off, len(buf))
	}
	return buf[off], off + 1, nil
}

func readU32(buf []byte, off int) (uint32, int, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, 0, fmt.Errorf("%w: u32 at %d of %d", ErrTruncated, off, len(buf))
	}
	return binary.LittleEndian.Uint32(buf[off:]), off + 4, nil
}

func readU64(buf []byte, off int) (uint64, int, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, 0, fmt.Errorf("%w: u64 at %d of %d", ErrTruncated, off, len(buf))
	}
	return binary.LittleEndian.Uint64(buf[off:]), off + 8, nil
}

// readBytes borrows n bytes from the buffer.
func readBytes(buf []byte, off, n int) ([]byte, int, error) {
	if n < 0 || off < 0 || off+n > len(buf) {
		return nil, 0, fmt.Errorf("%w: %d bytes at %d of %d", ErrTruncated, n, off, len(buf))
	}
	return buf[off : off+n : off+n], off + n, nil
}

// bstr views a borrowed byte slice as a string without copying. Valid
// because parsed buffers are immutable for the lifetime of their views.
func bstr(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
