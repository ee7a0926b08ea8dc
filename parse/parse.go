package parse

import (
	"encoding/binary"
	"fmt"

	"github.com/blobfig/go-blobfig/wire"
)

// Parse validates the header of a blobfig buffer and returns a View of
// the root value. No value decoding happens here; children decode on
// access. The returned View (and everything reachable from it) borrows
// from data and is valid only while data is alive and unmodified.
func Parse(data []byte) (*View, error) {
	if len(data) < wire.HeaderSize {
		return nil, fmt.Errorf("%w: %d byte header in %d bytes",
			ErrTruncated, wire.HeaderSize, len(data))
	}
	if string(data[:len(wire.Magic)]) != wire.Magic {
		return nil, fmt.Errorf("%w: % x", ErrBadMagic, data[:len(wire.Magic)])
	}
	version := binary.LittleEndian.Uint16(data[len(wire.Magic):])
	if version != wire.Version {
		return nil, fmt.Errorf("%w: %d, expected %d", ErrVersion, version, wire.Version)
	}
	root := binary.LittleEndian.Uint32(data[len(wire.Magic)+2:])
	if uint64(root) >= uint64(len(data)) {
		return nil, fmt.Errorf("%w: root offset %d of %d", ErrTruncated, root, len(data))
	}
	return &View{buf: data, off: int(root)}, nil
}

// View is a decoded handle over one value's region of a parsed buffer.
// It owns nothing and copies nothing; its zero value is not usable.
type View struct {
	buf []byte
	off int
}

// Kind reads the value's tag byte without decoding anything else.
func (v *View) Kind() (wire.Tag, error) {
	b, _, err := readByte(v.buf, v.off)
	if err != nil {
		return 0, err
	}
	return wire.ParseTag(b)
}

// Offset returns the value's absolute offset in the parsed buffer.
func (v *View) Offset() int {
	return v.off
}

func (v *View) tagged(want wire.Tag) (int, error) {
	got, err := v.Kind()
	if err != nil {
		return 0, err
	}
	if got != want {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrTagMismatch, got, want)
	}
	return v.off + 1, nil
}
