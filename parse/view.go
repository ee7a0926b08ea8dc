package parse

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/blobfig/go-blobfig/wire"
)

// IsNull reports whether the view is a null value.
func (v *View) IsNull() (bool, error) {
	k, err := v.Kind()
	if err != nil {
		return false, err
	}
	return k == wire.NullTag, nil
}

// AsBool decodes a bool value. Scalars are copied out, never borrowed.
func (v *View) AsBool() (bool, error) {
	off, err := v.tagged(wire.BoolTag)
	if err != nil {
		return false, err
	}
	b, _, err := readByte(v.buf, off)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// AsInt decodes a 64-bit signed integer value.
func (v *View) AsInt() (int64, error) {
	off, err := v.tagged(wire.IntTag)
	if err != nil {
		return 0, err
	}
	u, _, err := readU64(v.buf, off)
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// AsFloat decodes a 64-bit float value.
func (v *View) AsFloat() (float64, error) {
	off, err := v.tagged(wire.FloatTag)
	if err != nil {
		return 0, err
	}
	u, _, err := readU64(v.buf, off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// AsString decodes a string value. The returned string aliases the
// buffer; it is valid only while the buffer is, and the buffer must not
// be modified.
func (v *View) AsString() (string, error) {
	off, err := v.tagged(wire.StringTag)
	if err != nil {
		return "", err
	}
	n, off, err := readU32(v.buf, off)
	if err != nil {
		return "", err
	}
	b, _, err := readBytes(v.buf, off, int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: string payload at %d", ErrUTF8, off)
	}
	return bstr(b), nil
}

// AsFile decodes a file value. The mime string and payload alias the
// buffer.
func (v *View) AsFile() (*FileView, error) {
	off, err := v.tagged(wire.FileTag)
	if err != nil {
		return nil, err
	}
	n, off, err := readU32(v.buf, off)
	if err != nil {
		return nil, err
	}
	mime, off, err := readBytes(v.buf, off, int(n))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(mime) {
		return nil, fmt.Errorf("%w: mime type at %d", ErrUTF8, off)
	}
	n, off, err = readU32(v.buf, off)
	if err != nil {
		return nil, err
	}
	data, _, err := readBytes(v.buf, off, int(n))
	if err != nil {
		return nil, err
	}
	return &FileView{Mime: bstr(mime), Data: data}, nil
}

// AsObject decodes the object header and returns a lazy view over its
// entries. Entries themselves are not decoded.
func (v *View) AsObject() (*ObjectView, error) {
	off, err := v.tagged(wire.ObjectTag)
	if err != nil {
		return nil, err
	}
	count, off, err := readU32(v.buf, off)
	if err != nil {
		return nil, err
	}
	return &ObjectView{buf: v.buf, off: off, count: int(count)}, nil
}

// AsList decodes the list header and returns a lazy view over its
// items.
func (v *View) AsList() (*ListView, error) {
	off, err := v.tagged(wire.ListTag)
	if err != nil {
		return nil, err
	}
	count, off, err := readU32(v.buf, off)
	if err != nil {
		return nil, err
	}
	return &ListView{buf: v.buf, off: off, count: int(count)}, nil
}
