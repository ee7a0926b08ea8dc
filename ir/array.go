package ir

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/blobfig/go-blobfig/wire"
)

// Array is an owned typed array: dtype, shape, and a contiguous
// row-major little-endian payload. The invariant
// len(Data) == product(Shape) * DType.Size() holds for every Array
// built through NewArray or the ArrayFrom* helpers.
type Array struct {
	DType wire.DType
	Shape []uint32
	Data  []byte
}

// NewArray validates the payload length against the shape and dtype.
func NewArray(dtype wire.DType, shape []uint32, data []byte) (*Array, error) {
	n, ok := Elems(shape)
	if !ok {
		return nil, fmt.Errorf("%w: shape product overflows", ErrShape)
	}
	size := n * uint64(dtype.Size())
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("%w: array of %d bytes", ErrShape, size)
	}
	if uint64(len(data)) != size {
		return nil, fmt.Errorf("%w: %d bytes for %s%v (want %d)",
			ErrShape, len(data), dtype, shape, size)
	}
	return &Array{DType: dtype, Shape: shape, Data: data}, nil
}

// Elems returns the element count of a shape, reporting overflow.
// An empty shape denotes a 0-dimensional scalar array of one element.
func Elems(shape []uint32) (uint64, bool) {
	n := uint64(1)
	for _, dim := range shape {
		hi, lo := bits.Mul64(n, uint64(dim))
		if hi != 0 {
			return 0, false
		}
		n = lo
	}
	return n, true
}

// Elems returns the array's element count.
func (a *Array) Elems() uint64 {
	n, _ := Elems(a.Shape)
	return n
}

// ByteSize returns the payload length the shape and dtype imply.
func (a *Array) ByteSize() uint64 {
	return a.Elems() * uint64(a.DType.Size())
}

func ArrayFromUint8s(shape []uint32, vals []uint8) *Value {
	return mustArray(wire.U8, shape, vals)
}

func ArrayFromInt32s(shape []uint32, vals []int32) *Value {
	return mustArray(wire.I32, shape, vals)
}

func ArrayFromInt64s(shape []uint32, vals []int64) *Value {
	return mustArray(wire.I64, shape, vals)
}

func ArrayFromFloat32s(shape []uint32, vals []float32) *Value {
	return mustArray(wire.F32, shape, vals)
}

func ArrayFromFloat64s(shape []uint32, vals []float64) *Value {
	return mustArray(wire.F64, shape, vals)
}

func mustArray[E any](dtype wire.DType, shape []uint32, vals []E) *Value {
	data, err := binary.Append(nil, binary.LittleEndian, vals)
	if err != nil {
		panic(err)
	}
	a, err := NewArray(dtype, shape, data)
	if err != nil {
		panic(err)
	}
	return FromArray(a)
}
