package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

func parseArray(t *testing.T, v *ir.Value) *ArrayView {
	t.Helper()
	root, err := Parse(mustEncode(t, v))
	if err != nil {
		t.Fatal(err)
	}
	arr, err := root.AsArray()
	if err != nil {
		t.Fatal(err)
	}
	return arr
}

func TestArrayReinterpret(t *testing.T) {
	arr := parseArray(t, ir.ArrayFromInt32s([]uint32{4}, []int32{-1, 0, 1, 1 << 30}))
	got, err := arr.Int32s()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int32{-1, 0, 1, 1 << 30}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArrayReinterpretFloats(t *testing.T) {
	want := []float64{0, -2.5, 1e300}
	arr := parseArray(t, ir.ArrayFromFloat64s([]uint32{3}, want))
	got, err := arr.Float64s()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArrayReinterpretWrongDType(t *testing.T) {
	arr := parseArray(t, ir.ArrayFromFloat32s([]uint32{2}, []float32{1, 2}))
	if _, err := arr.Float64s(); !errors.Is(err, ErrTagMismatch) {
		t.Errorf("f64 view of f32 array: %v", err)
	}
	if _, err := arr.Int32s(); !errors.Is(err, ErrTagMismatch) {
		t.Errorf("i32 view of f32 array: %v", err)
	}
}

func TestArrayReinterpretMisaligned(t *testing.T) {
	// A payload slice whose address is deliberately off by one. The
	// writer never produces this; a caller building an ArrayView over
	// foreign memory can.
	raw := make([]byte, 17)
	arr := &ArrayView{DType: wire.F64, Shape: []uint32{2}, Data: raw[1:17]}
	if _, err := arr.Float64s(); !errors.Is(err, ErrMisaligned) {
		t.Errorf("expected ErrMisaligned, got %v", err)
	}
}

func TestArrayEmpty(t *testing.T) {
	a, err := ir.NewArray(wire.F32, []uint32{0, 3}, nil)
	if err != nil {
		t.Fatal(err)
	}
	arr := parseArray(t, ir.FromArray(a))
	if arr.Elems() != 0 {
		t.Errorf("elems = %d", arr.Elems())
	}
	got, err := arr.Float32s()
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestArrayScalarShape(t *testing.T) {
	arr := parseArray(t, ir.ArrayFromFloat64s(nil, []float64{3.5}))
	if len(arr.Shape) != 0 {
		t.Fatalf("shape = %v", arr.Shape)
	}
	if arr.Elems() != 1 {
		t.Errorf("elems = %d", arr.Elems())
	}
	got, err := arr.Float64s()
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 3.5 {
		t.Errorf("got %v", got[0])
	}
}
