package encode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

// ToBytes encodes v into one finished buffer. On error no buffer is
// returned; there is no partial output.
func ToBytes(v *ir.Value, opts ...Option) ([]byte, error) {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	size, err := valueSize(v, wire.HeaderSize, es)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, wire.HeaderSize+size)
	buf = append(buf, wire.Magic...)
	buf = binary.LittleEndian.AppendUint16(buf, wire.Version)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(wire.HeaderSize))
	buf, err = appendValue(buf, v, es)
	if err != nil {
		return nil, err
	}
	if len(buf) != wire.HeaderSize+size {
		return nil, fmt.Errorf("%w: wrote %d bytes, sized %d",
			ErrEncoding, len(buf), wire.HeaderSize+size)
	}
	return buf, nil
}

// Encode encodes v and writes the finished buffer to w in a single
// call. Nothing is written on error.
func Encode(v *ir.Value, w io.Writer, opts ...Option) error {
	buf, err := ToBytes(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// valueSize computes the exact encoded size of v when its tag byte is
// placed at absolute offset off, validating the tree along the way.
// Array padding depends on off, so sizes are position-dependent.
func valueSize(v *ir.Value, off int, es *encState) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil value", ErrBadValue)
	}
	switch v.Type {
	case wire.NullTag:
		return 1, nil
	case wire.BoolTag:
		return 2, nil
	case wire.IntTag, wire.FloatTag:
		return 9, nil
	case wire.StringTag:
		if !utf8.ValidString(v.String) {
			return 0, fmt.Errorf("%w: string value", ErrBadString)
		}
		if err := checkLen(len(v.String)); err != nil {
			return 0, err
		}
		return 1 + 4 + len(v.String), nil
	case wire.ArrayTag:
		return arraySize(v.Array, off)
	case wire.FileTag:
		if !utf8.ValidString(v.File.Mime) {
			return 0, fmt.Errorf("%w: mime type %q", ErrBadString, v.File.Mime)
		}
		if err := checkLen(len(v.File.Mime)); err != nil {
			return 0, err
		}
		if err := checkLen(len(v.File.Data)); err != nil {
			return 0, err
		}
		return 1 + 4 + len(v.File.Mime) + 4 + len(v.File.Data), nil
	case wire.ObjectTag:
		fields, err := objectFields(v, es)
		if err != nil {
			return 0, err
		}
		n := 1 + 4
		for i := range fields {
			key := fields[i].Key
			if err := checkLen(len(key)); err != nil {
				return 0, err
			}
			n += 4 + len(key) + 4
			childSize, err := valueSize(fields[i].Value, off+n, es)
			if err != nil {
				return 0, err
			}
			if err := checkLen(childSize); err != nil {
				return 0, err
			}
			n += childSize
		}
		return n, nil
	case wire.ListTag:
		n := 1 + 4
		for _, item := range v.Items {
			n += 4
			itemSize, err := valueSize(item, off+n, es)
			if err != nil {
				return 0, err
			}
			if err := checkLen(itemSize); err != nil {
				return 0, err
			}
			n += itemSize
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: tag 0x%02x", ErrBadValue, uint8(v.Type))
}

func arraySize(a *ir.Array, off int) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: nil array", ErrBadValue)
	}
	if a.DType.Size() == 0 {
		return 0, fmt.Errorf("%w: %w 0x%02x", ErrBadValue, wire.ErrBadDType, uint8(a.DType))
	}
	n, ok := ir.Elems(a.Shape)
	if !ok {
		return 0, fmt.Errorf("%w: shape product overflows", ErrTooLarge)
	}
	want := n * uint64(a.DType.Size())
	if want > math.MaxUint32 {
		return 0, fmt.Errorf("%w: array payload of %d bytes", ErrTooLarge, want)
	}
	if uint64(len(a.Data)) != want {
		return 0, fmt.Errorf("%w: %d bytes for %s%v (want %d)",
			ErrArraySize, len(a.Data), a.DType, a.Shape, want)
	}
	head := 1 + 1 + 4 + 4*len(a.Shape)
	pad := wire.Pad(off+head, a.DType.Size())
	return head + pad + len(a.Data), nil
}

// appendValue appends the encoding of v to buf. The absolute offset of
// the value is len(buf): the buffer always starts at the artifact's
// first byte, so alignment arithmetic works directly on buffer length.
func appendValue(buf []byte, v *ir.Value, es *encState) ([]byte, error) {
	switch v.Type {
	case wire.NullTag:
		return append(buf, byte(wire.NullTag)), nil
	case wire.BoolTag:
		buf = append(buf, byte(wire.BoolTag))
		if v.Bool {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case wire.IntTag:
		buf = append(buf, byte(wire.IntTag))
		return binary.LittleEndian.AppendUint64(buf, uint64(v.Int)), nil
	case wire.FloatTag:
		buf = append(buf, byte(wire.FloatTag))
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.Float)), nil
	case wire.StringTag:
		buf = append(buf, byte(wire.StringTag))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v.String)))
		return append(buf, v.String...), nil
	case wire.ArrayTag:
		return appendArray(buf, v.Array)
	case wire.FileTag:
		buf = append(buf, byte(wire.FileTag))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v.File.Mime)))
		buf = append(buf, v.File.Mime...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v.File.Data)))
		return append(buf, v.File.Data...), nil
	case wire.ObjectTag:
		fields, err := objectFields(v, es)
		if err != nil {
			return nil, err
		}
		buf = append(buf, byte(wire.ObjectTag))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(fields)))
		for i := range fields {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(len(fields[i].Key)))
			buf = append(buf, fields[i].Key...)
			childSize, err := valueSize(fields[i].Value, len(buf)+4, es)
			if err != nil {
				return nil, err
			}
			buf = binary.LittleEndian.AppendUint32(buf, uint32(childSize))
			buf, err = appendValue(buf, fields[i].Value, es)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case wire.ListTag:
		buf = append(buf, byte(wire.ListTag))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v.Items)))
		for _, item := range v.Items {
			itemSize, err := valueSize(item, len(buf)+4, es)
			if err != nil {
				return nil, err
			}
			buf = binary.LittleEndian.AppendUint32(buf, uint32(itemSize))
			buf, err = appendValue(buf, item, es)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	}
	return nil, fmt.Errorf("%w: tag 0x%02x", ErrBadValue, uint8(v.Type))
}

func appendArray(buf []byte, a *ir.Array) ([]byte, error) {
	buf = append(buf, byte(wire.ArrayTag))
	buf = append(buf, byte(a.DType))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(a.Shape)))
	for _, dim := range a.Shape {
		buf = binary.LittleEndian.AppendUint32(buf, dim)
	}
	pad := wire.Pad(len(buf), a.DType.Size())
	for range pad {
		buf = append(buf, 0)
	}
	return append(buf, a.Data...), nil
}

// objectFields validates keys and applies the duplicate-key policy,
// returning the entries that will actually be written.
func objectFields(v *ir.Value, es *encState) ([]ir.Field, error) {
	seen := make(map[string]int, len(v.Fields))
	fields := make([]ir.Field, 0, len(v.Fields))
	for i := range v.Fields {
		key := v.Fields[i].Key
		if !utf8.ValidString(key) {
			return nil, fmt.Errorf("%w: %q is not valid UTF-8", ErrBadKey, key)
		}
		if strings.ContainsRune(key, '/') {
			return nil, fmt.Errorf("%w: %q contains '/'", ErrBadKey, key)
		}
		if at, dup := seen[key]; dup {
			if !es.keepLast {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
			}
			fields[at].Value = v.Fields[i].Value
			continue
		}
		seen[key] = len(fields)
		fields = append(fields, v.Fields[i])
	}
	return fields, nil
}

func checkLen(n int) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, n)
	}
	return nil
}
