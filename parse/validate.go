package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/blobfig/go-blobfig/wire"
)

// maxDepth bounds recursion over untrusted input. The format has no
// depth limit of its own; this guards the process stack.
const maxDepth = 1000

// Validate walks the whole tree under v eagerly, checking tags, dtypes,
// UTF-8 of strings and keys, duplicate keys, stored child lengths, and
// bounds. Lazy accessors already check what they touch; Validate is for
// rejecting an untrusted buffer up front.
func Validate(v *View) error {
	_, err := validate(v, 0)
	return err
}

// validate returns the offset just past the value's encoding so that
// callers can check stored child lengths against the real extent.
func validate(v *View, depth int) (int, error) {
	if depth > maxDepth {
		return 0, fmt.Errorf("%w: %d levels", ErrTooDeep, depth)
	}
	kind, err := v.Kind()
	if err != nil {
		return 0, err
	}
	switch kind {
	case wire.NullTag:
		return v.off + 1, nil
	case wire.BoolTag:
		if _, err := v.AsBool(); err != nil {
			return 0, err
		}
		return v.off + 2, nil
	case wire.IntTag, wire.FloatTag:
		if _, _, err := readU64(v.buf, v.off+1); err != nil {
			return 0, err
		}
		return v.off + 9, nil
	case wire.StringTag:
		s, err := v.AsString()
		if err != nil {
			return 0, err
		}
		return v.off + 1 + 4 + len(s), nil
	case wire.ArrayTag:
		a, err := v.AsArray()
		if err != nil {
			return 0, err
		}
		head := v.off + 1 + 1 + 4 + 4*len(a.Shape)
		return head + wire.Pad(head, a.DType.Size()) + len(a.Data), nil
	case wire.FileTag:
		f, err := v.AsFile()
		if err != nil {
			return 0, err
		}
		return v.off + 1 + 4 + len(f.Mime) + 4 + len(f.Data), nil
	case wire.ObjectTag:
		return validateObject(v, depth)
	case wire.ListTag:
		return validateList(v, depth)
	}
	return 0, fmt.Errorf("%w: 0x%02x", wire.ErrBadTag, uint8(kind))
}

func validateObject(v *View, depth int) (int, error) {
	obj, err := v.AsObject()
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, obj.capHint())
	off := obj.off
	for range obj.count {
		keyBytes, childOff, childLen, err := obj.entry(off)
		if err != nil {
			return 0, err
		}
		if !utf8.Valid(keyBytes) {
			return 0, fmt.Errorf("%w: key at %d", ErrUTF8, off)
		}
		key := string(keyBytes)
		// the writer refuses keys containing the path separator;
		// a conforming buffer never holds one
		if strings.ContainsRune(key, '/') {
			return 0, fmt.Errorf("%w: key %q contains '/'", ErrPath, key)
		}
		if seen[key] {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		seen[key] = true
		end, err := validate(&View{buf: obj.buf, off: childOff}, depth+1)
		if err != nil {
			return 0, err
		}
		if end != childOff+childLen {
			return 0, fmt.Errorf("%w: key %q stores %d, child ends at %d",
				ErrLength, key, childLen, end-childOff)
		}
		off = childOff + childLen
	}
	return off, nil
}

func validateList(v *View, depth int) (int, error) {
	list, err := v.AsList()
	if err != nil {
		return 0, err
	}
	off := list.off
	for i := range list.count {
		itemOff, itemLen, err := list.item(off)
		if err != nil {
			return 0, err
		}
		end, err := validate(&View{buf: list.buf, off: itemOff}, depth+1)
		if err != nil {
			return 0, err
		}
		if end != itemOff+itemLen {
			return 0, fmt.Errorf("%w: item %d stores %d, ends at %d",
				ErrLength, i, itemLen, end-itemOff)
		}
		off = itemOff + itemLen
	}
	return off, nil
}
