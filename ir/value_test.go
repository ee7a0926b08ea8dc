package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blobfig/go-blobfig/wire"
)

func TestConstructorsAndAccessors(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		tag   wire.Tag
	}{
		{"null", Null(), wire.NullTag},
		{"bool", FromBool(true), wire.BoolTag},
		{"int", FromInt(-42), wire.IntTag},
		{"float", FromFloat(3.25), wire.FloatTag},
		{"string", FromString("hello"), wire.StringTag},
		{"file", FromFile(NewFile("text/plain", []byte("hi"))), wire.FileTag},
		{"object", FromFields(nil), wire.ObjectTag},
		{"list", FromSlice(nil), wire.ListTag},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value.Type != tc.tag {
				t.Fatalf("type = %v, want %v", tc.value.Type, tc.tag)
			}
		})
	}

	if b, ok := FromBool(true).AsBool(); !ok || !b {
		t.Error("AsBool failed on bool")
	}
	if _, ok := FromBool(true).AsInt(); ok {
		t.Error("AsInt must fail on bool")
	}
	if i, ok := FromInt(-42).AsInt(); !ok || i != -42 {
		t.Error("AsInt failed on int")
	}
	if s, ok := FromString("x").AsString(); !ok || s != "x" {
		t.Error("AsString failed on string")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	v := FromMap(map[string]*Value{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	keys := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		keys = append(keys, f.Key)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	v := FromFields([]Field{
		{Key: "x", Value: FromInt(1)},
		{Key: "y", Value: FromInt(2)},
	})
	if got := v.Get("y"); got == nil || got.Int != 2 {
		t.Errorf("Get(y) = %v", got)
	}
	if got := v.Get("z"); got != nil {
		t.Errorf("Get(z) = %v, want nil", got)
	}
	if got := FromInt(1).Get("x"); got != nil {
		t.Errorf("Get on non-object = %v, want nil", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromFields([]Field{
		{Key: "blob", Value: FromFile(NewFile("application/octet-stream", []byte{1, 2, 3}))},
		{Key: "arr", Value: ArrayFromFloat32s([]uint32{2}, []float32{1, 2})},
		{Key: "list", Value: FromSlice([]*Value{FromInt(7)})},
	})
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	clone.Fields[0].Value.File.Data[0] = 99
	clone.Fields[1].Value.Array.Data[0] = 99
	if orig.Fields[0].Value.File.Data[0] == 99 {
		t.Error("file payload shared between clone and original")
	}
	if orig.Fields[1].Value.Array.Data[0] == 99 {
		t.Error("array payload shared between clone and original")
	}
}

func TestVisitOrder(t *testing.T) {
	v := FromFields([]Field{
		{Key: "a", Value: FromInt(1)},
		{Key: "l", Value: FromSlice([]*Value{FromInt(2), FromInt(3)})},
	})
	var pre, post int
	err := v.Visit(func(v *Value, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a, l, 2, 3
	if pre != 5 || post != 5 {
		t.Errorf("pre = %d post = %d, want 5 each", pre, post)
	}
}
