package ir

import (
	"maps"
	"slices"

	"github.com/blobfig/go-blobfig/wire"
)

// Value is an owned blobfig value. The Type field selects which of the
// payload fields is meaningful; all others are zero.
type Value struct {
	Type wire.Tag

	Bool   bool
	Int    int64
	Float  float64
	String string
	Array  *Array
	File   *File

	// Fields is the ordered entry list of an object value.
	Fields []Field

	// Items is the element list of a list value.
	Items []*Value
}

// Field is one (key, value) entry of an object. Keys are unique within
// one object and may not contain '/'.
type Field struct {
	Key   string
	Value *Value
}

func Null() *Value {
	return &Value{Type: wire.NullTag}
}

func FromBool(v bool) *Value {
	return &Value{Type: wire.BoolTag, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: wire.IntTag, Int: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: wire.FloatTag, Float: v}
}

func FromString(v string) *Value {
	return &Value{Type: wire.StringTag, String: v}
}

func FromArray(a *Array) *Value {
	return &Value{Type: wire.ArrayTag, Array: a}
}

func FromFile(f *File) *Value {
	return &Value{Type: wire.FileTag, File: f}
}

// FromFields builds an object value preserving entry order.
func FromFields(fields []Field) *Value {
	return &Value{Type: wire.ObjectTag, Fields: fields}
}

// FromMap builds an object value with entries in sorted key order.
func FromMap(m map[string]*Value) *Value {
	fields := make([]Field, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		fields = append(fields, Field{Key: key, Value: m[key]})
	}
	return FromFields(fields)
}

// FromSlice builds a list value.
func FromSlice(items []*Value) *Value {
	return &Value{Type: wire.ListTag, Items: items}
}

// Get returns the value of the first field named key, or nil.
func (v *Value) Get(key string) *Value {
	if v.Type != wire.ObjectTag {
		return nil
	}
	for i := range v.Fields {
		if v.Fields[i].Key == key {
			return v.Fields[i].Value
		}
	}
	return nil
}

func (v *Value) AsBool() (bool, bool) {
	if v.Type != wire.BoolTag {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) AsInt() (int64, bool) {
	if v.Type != wire.IntTag {
		return 0, false
	}
	return v.Int, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.Type != wire.FloatTag {
		return 0, false
	}
	return v.Float, true
}

func (v *Value) AsString() (string, bool) {
	if v.Type != wire.StringTag {
		return "", false
	}
	return v.String, true
}

func (v *Value) AsArray() (*Array, bool) {
	if v.Type != wire.ArrayTag {
		return nil, false
	}
	return v.Array, true
}

func (v *Value) AsFile() (*File, bool) {
	if v.Type != wire.FileTag {
		return nil, false
	}
	return v.File, true
}

func (v *Value) AsObject() ([]Field, bool) {
	if v.Type != wire.ObjectTag {
		return nil, false
	}
	return v.Fields, true
}

func (v *Value) AsList() ([]*Value, bool) {
	if v.Type != wire.ListTag {
		return nil, false
	}
	return v.Items, true
}

// Clone deep-copies the value, including array and file payloads.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		Bool:   v.Bool,
		Int:    v.Int,
		Float:  v.Float,
		String: v.String,
	}
	if v.Array != nil {
		res.Array = &Array{
			DType: v.Array.DType,
			Shape: slices.Clone(v.Array.Shape),
			Data:  slices.Clone(v.Array.Data),
		}
	}
	if v.File != nil {
		res.File = &File{
			Mime: v.File.Mime,
			Data: slices.Clone(v.File.Data),
		}
	}
	if v.Fields != nil {
		res.Fields = make([]Field, len(v.Fields))
		for i := range v.Fields {
			res.Fields[i] = Field{
				Key:   v.Fields[i].Key,
				Value: v.Fields[i].Value.Clone(),
			}
		}
	}
	if v.Items != nil {
		res.Items = make([]*Value, len(v.Items))
		for i := range v.Items {
			res.Items[i] = v.Items[i].Clone()
		}
	}
	return res
}

// Visit walks the tree. f is called for each value before (isPost false)
// and after (isPost true) its children; returning false from the pre
// call skips the children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for i := range v.Fields {
			if err := v.Fields[i].Value.Visit(f); err != nil {
				return err
			}
		}
		for _, item := range v.Items {
			if err := item.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(v, true)
	return err
}
