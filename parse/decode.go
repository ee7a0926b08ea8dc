package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

// Decode materializes the view into an owned ir tree, copying every
// payload out of the buffer. The result does not reference the buffer
// and outlives it.
func (v *View) Decode() (*ir.Value, error) {
	return v.decode(0)
}

func (v *View) decode(depth int) (*ir.Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, depth)
	}
	kind, err := v.Kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case wire.NullTag:
		return ir.Null(), nil
	case wire.BoolTag:
		b, err := v.AsBool()
		if err != nil {
			return nil, err
		}
		return ir.FromBool(b), nil
	case wire.IntTag:
		i, err := v.AsInt()
		if err != nil {
			return nil, err
		}
		return ir.FromInt(i), nil
	case wire.FloatTag:
		f, err := v.AsFloat()
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	case wire.StringTag:
		s, err := v.AsString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(strings.Clone(s)), nil
	case wire.ArrayTag:
		a, err := v.AsArray()
		if err != nil {
			return nil, err
		}
		owned, err := ir.NewArray(a.DType, slices.Clone(a.Shape), slices.Clone(a.Data))
		if err != nil {
			return nil, err
		}
		return ir.FromArray(owned), nil
	case wire.FileTag:
		f, err := v.AsFile()
		if err != nil {
			return nil, err
		}
		return ir.FromFile(ir.NewFile(strings.Clone(f.Mime), slices.Clone(f.Data))), nil
	case wire.ObjectTag:
		obj, err := v.AsObject()
		if err != nil {
			return nil, err
		}
		fields := make([]ir.Field, 0, obj.capHint())
		off := obj.off
		for range obj.count {
			keyBytes, childOff, childLen, err := obj.entry(off)
			if err != nil {
				return nil, err
			}
			child := &View{buf: obj.buf, off: childOff}
			cv, err := child.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ir.Field{Key: string(keyBytes), Value: cv})
			off = childOff + childLen
		}
		return ir.FromFields(fields), nil
	case wire.ListTag:
		list, err := v.AsList()
		if err != nil {
			return nil, err
		}
		items := make([]*ir.Value, 0, list.capHint())
		off := list.off
		for range list.count {
			itemOff, itemLen, err := list.item(off)
			if err != nil {
				return nil, err
			}
			item := &View{buf: list.buf, off: itemOff}
			iv, err := item.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			items = append(items, iv)
			off = itemOff + itemLen
		}
		return ir.FromSlice(items), nil
	}
	return nil, fmt.Errorf("%w: 0x%02x", wire.ErrBadTag, uint8(kind))
}
