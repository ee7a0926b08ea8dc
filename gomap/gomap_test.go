package gomap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

func TestFromIR(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "flag", Value: ir.FromBool(true)},
		{Key: "n", Value: ir.FromInt(-3)},
		{Key: "x", Value: ir.FromFloat(1.5)},
		{Key: "s", Value: ir.FromString("hi")},
		{Key: "none", Value: ir.Null()},
		{Key: "list", Value: ir.FromSlice([]*ir.Value{
			ir.FromInt(1),
			ir.FromString("two"),
		})},
	})
	got, err := FromIR(v)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"flag": true,
		"n":    int64(-3),
		"x":    1.5,
		"s":    "hi",
		"none": nil,
		"list": []any{int64(1), "two"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromIROrdered(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "z", Value: ir.FromInt(1)},
		{Key: "a", Value: ir.FromInt(2)},
	})
	got, err := FromIROrdered(v)
	if err != nil {
		t.Fatal(err)
	}
	want := []KV{
		{Key: "z", Value: int64(1)},
		{Key: "a", Value: int64(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromIRPassThrough(t *testing.T) {
	arr := ir.ArrayFromFloat32s([]uint32{2}, []float32{1, 2})
	file := ir.NewFile("text/plain", []byte("x"))
	v := ir.FromFields([]ir.Field{
		{Key: "a", Value: arr},
		{Key: "f", Value: ir.FromFile(file)},
	})
	got, err := FromIR(v)
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if m["a"] != arr.Array {
		t.Error("array did not pass through by pointer")
	}
	if m["f"] != file {
		t.Error("file did not pass through by pointer")
	}
}

func TestToIR(t *testing.T) {
	got, err := ToIR(map[string]any{
		"b":    false,
		"n":    42,
		"u":    uint16(7),
		"x":    0.25,
		"s":    "str",
		"none": nil,
		"list": []any{int64(1), "two", nil},
	})
	if err != nil {
		t.Fatal(err)
	}
	// map keys come out sorted
	want := ir.FromFields([]ir.Field{
		{Key: "b", Value: ir.FromBool(false)},
		{Key: "list", Value: ir.FromSlice([]*ir.Value{
			ir.FromInt(1),
			ir.FromString("two"),
			ir.Null(),
		})},
		{Key: "n", Value: ir.FromInt(42)},
		{Key: "none", Value: ir.Null()},
		{Key: "s", Value: ir.FromString("str")},
		{Key: "u", Value: ir.FromInt(7)},
		{Key: "x", Value: ir.FromFloat(0.25)},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToIROrdered(t *testing.T) {
	got, err := ToIR([]KV{
		{Key: "z", Value: 1},
		{Key: "a", Value: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	fields, ok := got.AsObject()
	if !ok {
		t.Fatalf("got %v, want object", got.Type)
	}
	if fields[0].Key != "z" || fields[1].Key != "a" {
		t.Errorf("order not preserved: %q, %q", fields[0].Key, fields[1].Key)
	}
}

func TestToIRUintOverflow(t *testing.T) {
	if _, err := ToIR(uint64(math.MaxInt64)); err != nil {
		t.Errorf("MaxInt64: %v", err)
	}
	if _, err := ToIR(uint64(math.MaxInt64) + 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	if _, err := ToIR(map[string]any{"u": uint(math.MaxUint64)}); !errors.Is(err, ErrOverflow) {
		t.Errorf("nested: expected ErrOverflow, got %v", err)
	}
}

func TestToIRUnsupported(t *testing.T) {
	type opaque struct{ X int }
	for _, x := range []any{opaque{1}, &opaque{1}, make(chan int), []int{1, 2}} {
		if _, err := ToIR(x); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%T: expected ErrUnsupported, got %v", x, err)
		}
	}
}

func TestToIRCycle(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	if _, err := ToIR(m); !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
}

func TestRoundTripThroughGo(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "a", Value: ir.FromInt(1)},
		{Key: "b", Value: ir.FromSlice([]*ir.Value{
			ir.FromString("x"),
			ir.FromFields([]ir.Field{{Key: "c", Value: ir.FromFloat(2.5)}}),
		})},
	})
	plain, err := FromIROrdered(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ToIR(plain)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromIRBadValue(t *testing.T) {
	bad := &ir.Value{Type: wire.Tag(0x7f)}
	if _, err := FromIR(bad); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
