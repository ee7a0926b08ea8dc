package parse

import (
	"fmt"
	"iter"
)

// ListView is a lazy index over a list's item region. Like object
// entries, each item is prefixed with its total encoded length, so
// skipping an item never decodes it.
type ListView struct {
	buf   []byte
	off   int // first item
	count int
}

// Len returns the item count.
func (l *ListView) Len() int {
	return l.count
}

// An item is at least a u32 length plus a one-byte value.
const listItemMin = 4 + 1

// capHint bounds the item count claimed by the buffer to what the
// remaining bytes could actually hold; see ObjectView.capHint.
func (l *ListView) capHint() int {
	if avail := (len(l.buf) - l.off) / listItemMin; l.count > avail {
		return avail
	}
	return l.count
}

// At returns a view of item i, skipping the i preceding items by their
// stored lengths.
func (l *ListView) At(i int) (*View, error) {
	if i < 0 || i >= l.count {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNotFound, i, l.count)
	}
	off := l.off
	for range i {
		itemOff, itemLen, err := l.item(off)
		if err != nil {
			return nil, err
		}
		off = itemOff + itemLen
	}
	itemOff, _, err := l.item(off)
	if err != nil {
		return nil, err
	}
	return &View{buf: l.buf, off: itemOff}, nil
}

// All iterates (index, item view) pairs in stored order. The sequence
// is restartable. Iteration stops early at the first malformed item.
func (l *ListView) All() iter.Seq2[int, *View] {
	return func(yield func(int, *View) bool) {
		off := l.off
		for i := range l.count {
			itemOff, itemLen, err := l.item(off)
			if err != nil {
				return
			}
			if !yield(i, &View{buf: l.buf, off: itemOff}) {
				return
			}
			off = itemOff + itemLen
		}
	}
}

func (l *ListView) item(off int) (int, int, error) {
	itemLen, itemOff, err := readU32(l.buf, off)
	if err != nil {
		return 0, 0, err
	}
	if uint64(itemOff)+uint64(itemLen) > uint64(len(l.buf)) {
		return 0, 0, fmt.Errorf("%w: item of %d bytes at %d of %d",
			ErrTruncated, itemLen, itemOff, len(l.buf))
	}
	return itemOff, int(itemLen), nil
}
