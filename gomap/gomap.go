package gomap

import (
	"fmt"
	"math"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

// KV is one object entry in stored order.
type KV struct {
	Key   string
	Value any
}

const maxDepth = 1000

// FromIR converts an owned value tree to plain Go values. Objects
// become map[string]any, which drops entry order; use FromIROrdered
// when order matters.
func FromIR(v *ir.Value) (any, error) {
	return fromIR(v, false, 0)
}

// FromIROrdered is FromIR with objects converted to []KV in stored
// order instead of map[string]any.
func FromIROrdered(v *ir.Value) (any, error) {
	return fromIR(v, true, 0)
}

func fromIR(v *ir.Value, ordered bool, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, depth)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrUnsupported)
	}
	switch v.Type {
	case wire.NullTag:
		return nil, nil
	case wire.BoolTag:
		return v.Bool, nil
	case wire.IntTag:
		return v.Int, nil
	case wire.FloatTag:
		return v.Float, nil
	case wire.StringTag:
		return v.String, nil
	case wire.ArrayTag:
		return v.Array, nil
	case wire.FileTag:
		return v.File, nil
	case wire.ObjectTag:
		if ordered {
			kvs := make([]KV, 0, len(v.Fields))
			for _, f := range v.Fields {
				fv, err := fromIR(f.Value, ordered, depth+1)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, KV{Key: f.Key, Value: fv})
			}
			return kvs, nil
		}
		m := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			fv, err := fromIR(f.Value, ordered, depth+1)
			if err != nil {
				return nil, err
			}
			m[f.Key] = fv
		}
		return m, nil
	case wire.ListTag:
		items := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			iv, err := fromIR(item, ordered, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, iv)
		}
		return items, nil
	}
	return nil, fmt.Errorf("%w: tag 0x%02x", ErrUnsupported, uint8(v.Type))
}

// ToIR converts plain Go values to an owned value tree. Maps become
// objects with sorted keys; []KV becomes an object in the given order;
// slices become lists. All Go integer types narrow to the int value;
// uint64 values past math.MaxInt64 are ErrOverflow. *ir.Array,
// *ir.File, and *ir.Value pass through. Anything else, struct types
// included, is ErrUnsupported.
func ToIR(x any) (*ir.Value, error) {
	return toIR(x, 0)
}

func toIR(x any, depth int) (*ir.Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, depth)
	}
	switch x := x.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return toIRUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return toIRUint(x)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case *ir.Array:
		return ir.FromArray(x), nil
	case *ir.File:
		return ir.FromFile(x), nil
	case *ir.Value:
		return x, nil
	case map[string]any:
		sub := make(map[string]*ir.Value, len(x))
		for k, mv := range x {
			cv, err := toIR(mv, depth+1)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			sub[k] = cv
		}
		return ir.FromMap(sub), nil
	case []KV:
		fields := make([]ir.Field, 0, len(x))
		for _, kv := range x {
			cv, err := toIR(kv.Value, depth+1)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", kv.Key, err)
			}
			fields = append(fields, ir.Field{Key: kv.Key, Value: cv})
		}
		return ir.FromFields(fields), nil
	case []any:
		items := make([]*ir.Value, 0, len(x))
		for i, iv := range x {
			cv, err := toIR(iv, depth+1)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, cv)
		}
		return ir.FromSlice(items), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
}

func toIRUint(u uint64) (*ir.Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", ErrOverflow, u)
	}
	return ir.FromInt(int64(u)), nil
}
