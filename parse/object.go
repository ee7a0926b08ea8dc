package parse

import (
	"fmt"
	"iter"
)

// ObjectView is a lazy index over an object's entry region. Lookup
// scans entries in stored order, comparing key bytes directly against
// the buffer and skipping each non-matching child in O(1) via its
// stored total length. Nothing is allocated by Get.
type ObjectView struct {
	buf   []byte
	off   int // first entry
	count int
}

// Len returns the entry count.
func (o *ObjectView) Len() int {
	return o.count
}

// An entry is at least two u32 lengths plus a one-byte child.
const objectEntryMin = 4 + 4 + 1

// capHint bounds the entry count claimed by the buffer to what the
// remaining bytes could actually hold, so a hostile count cannot
// drive an allocation. Never a bound on iteration, only on sizing.
func (o *ObjectView) capHint() int {
	if avail := (len(o.buf) - o.off) / objectEntryMin; o.count > avail {
		return avail
	}
	return o.count
}

// Get returns a view of the value stored under key. A missing key is
// ErrNotFound; a malformed entry region is ErrTruncated. If the buffer
// holds duplicate keys (which Validate rejects), the first wins.
func (o *ObjectView) Get(key string) (*View, error) {
	off := o.off
	for range o.count {
		keyBytes, childOff, childLen, err := o.entry(off)
		if err != nil {
			return nil, err
		}
		// string(b) == s compiles to an allocation-free compare
		if string(keyBytes) == key {
			return &View{buf: o.buf, off: childOff}, nil
		}
		off = childOff + childLen
	}
	return nil, fmt.Errorf("%w: key %q", ErrNotFound, key)
}

// All iterates (key, value view) pairs in stored order. The sequence is
// restartable. Keys alias the buffer. Iteration stops early at the
// first malformed entry; use Validate to reject such buffers up front.
func (o *ObjectView) All() iter.Seq2[string, *View] {
	return func(yield func(string, *View) bool) {
		off := o.off
		for range o.count {
			keyBytes, childOff, childLen, err := o.entry(off)
			if err != nil {
				return
			}
			if !yield(bstr(keyBytes), &View{buf: o.buf, off: childOff}) {
				return
			}
			off = childOff + childLen
		}
	}
}

// entry reads one entry header at off, returning the key bytes, the
// child value's offset, and the child's stored total length.
func (o *ObjectView) entry(off int) ([]byte, int, int, error) {
	keyLen, off, err := readU32(o.buf, off)
	if err != nil {
		return nil, 0, 0, err
	}
	keyBytes, off, err := readBytes(o.buf, off, int(keyLen))
	if err != nil {
		return nil, 0, 0, err
	}
	childLen, off, err := readU32(o.buf, off)
	if err != nil {
		return nil, 0, 0, err
	}
	if uint64(off)+uint64(childLen) > uint64(len(o.buf)) {
		return nil, 0, 0, fmt.Errorf("%w: child of %d bytes at %d of %d",
			ErrTruncated, childLen, off, len(o.buf))
	}
	return keyBytes, off, int(childLen), nil
}
