package ir

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blobfig/go-blobfig/wire"
)

func TestNewArray(t *testing.T) {
	a, err := NewArray(wire.F32, []uint32{2, 3}, make([]byte, 24))
	if err != nil {
		t.Fatal(err)
	}
	if a.Elems() != 6 {
		t.Errorf("elems = %d, want 6", a.Elems())
	}
	if a.ByteSize() != 24 {
		t.Errorf("byte size = %d, want 24", a.ByteSize())
	}
}

func TestNewArrayLengthMismatch(t *testing.T) {
	_, err := NewArray(wire.F32, []uint32{2, 3}, make([]byte, 23))
	if !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestNewArrayScalar(t *testing.T) {
	// An empty shape is a 0-dimensional array of one element.
	a, err := NewArray(wire.F64, nil, make([]byte, 8))
	if err != nil {
		t.Fatal(err)
	}
	if a.Elems() != 1 {
		t.Errorf("elems = %d, want 1", a.Elems())
	}
}

func TestNewArrayZeroDim(t *testing.T) {
	a, err := NewArray(wire.I64, []uint32{0, 5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Elems() != 0 {
		t.Errorf("elems = %d, want 0", a.Elems())
	}
}

func TestNewArrayOverflow(t *testing.T) {
	shape := []uint32{1 << 31, 1 << 31, 1 << 31}
	_, err := NewArray(wire.U8, shape, nil)
	if !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape on overflow, got %v", err)
	}
}

func TestArrayFromFloat32s(t *testing.T) {
	v := ArrayFromFloat32s([]uint32{3}, []float32{1, 2, 3})
	a, ok := v.AsArray()
	if !ok {
		t.Fatal("not an array value")
	}
	if a.DType != wire.F32 {
		t.Errorf("dtype = %v, want f32", a.DType)
	}
	want := []byte{
		0x00, 0x00, 0x80, 0x3f, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
		0x00, 0x00, 0x40, 0x40, // 3.0
	}
	if !bytes.Equal(a.Data, want) {
		t.Errorf("payload = % x, want % x", a.Data, want)
	}
}

func TestArrayFromInt64s(t *testing.T) {
	v := ArrayFromInt64s([]uint32{2}, []int64{-1, 1})
	a, _ := v.AsArray()
	if a.DType != wire.I64 || len(a.Data) != 16 {
		t.Errorf("dtype %v len %d", a.DType, len(a.Data))
	}
}
