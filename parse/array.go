package parse

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"github.com/blobfig/go-blobfig/wire"
)

// ArrayView is a typed array decoded in place: dtype, shape, and a
// payload slice borrowed from the parsed buffer.
type ArrayView struct {
	DType wire.DType
	Shape []uint32
	Data  []byte
}

// AsArray decodes an array value. The shape is read out; the payload is
// borrowed, located at the aligned offset the writer placed it at. The
// shape product is overflow-checked before any length arithmetic.
func (v *View) AsArray() (*ArrayView, error) {
	off, err := v.tagged(wire.ArrayTag)
	if err != nil {
		return nil, err
	}
	b, off, err := readByte(v.buf, off)
	if err != nil {
		return nil, err
	}
	dtype, err := wire.ParseDType(b)
	if err != nil {
		return nil, err
	}
	ndim, off, err := readU32(v.buf, off)
	if err != nil {
		return nil, err
	}
	// bound ndim by the bytes actually present before allocating
	if uint64(ndim)*4 > uint64(len(v.buf)-off) {
		return nil, fmt.Errorf("%w: %d dims at %d of %d", ErrTruncated, ndim, off, len(v.buf))
	}
	shape := make([]uint32, ndim)
	elems := uint64(1)
	for i := range shape {
		shape[i], off, err = readU32(v.buf, off)
		if err != nil {
			return nil, err
		}
		hi, lo := bits.Mul64(elems, uint64(shape[i]))
		if hi != 0 {
			return nil, fmt.Errorf("%w: shape product", ErrOverflow)
		}
		elems = lo
	}
	size := elems * uint64(dtype.Size())
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d byte payload", ErrOverflow, size)
	}
	// skip the writer's alignment padding, derived the same way
	off += wire.Pad(off, dtype.Size())
	data, _, err := readBytes(v.buf, off, int(size))
	if err != nil {
		return nil, err
	}
	return &ArrayView{DType: dtype, Shape: shape, Data: data}, nil
}

// Elems returns the array's element count.
func (a *ArrayView) Elems() uint64 {
	n := uint64(1)
	for _, dim := range a.Shape {
		n *= uint64(dim)
	}
	return n
}

func (a *ArrayView) Uint8s() ([]uint8, error)   { return alias[uint8](a, wire.U8) }
func (a *ArrayView) Int8s() ([]int8, error)     { return alias[int8](a, wire.I8) }
func (a *ArrayView) Uint16s() ([]uint16, error) { return alias[uint16](a, wire.U16) }
func (a *ArrayView) Int16s() ([]int16, error)   { return alias[int16](a, wire.I16) }
func (a *ArrayView) Uint32s() ([]uint32, error) { return alias[uint32](a, wire.U32) }
func (a *ArrayView) Int32s() ([]int32, error)   { return alias[int32](a, wire.I32) }
func (a *ArrayView) Uint64s() ([]uint64, error) { return alias[uint64](a, wire.U64) }
func (a *ArrayView) Int64s() ([]int64, error)   { return alias[int64](a, wire.I64) }

// Float32s reinterprets the payload as its native element type without
// copying. The slice aliases the parsed buffer. Requires a
// little-endian host; use View.Decode for a portable copy.
func (a *ArrayView) Float32s() ([]float32, error) { return alias[float32](a, wire.F32) }
func (a *ArrayView) Float64s() ([]float64, error) { return alias[float64](a, wire.F64) }

func alias[E any](a *ArrayView, want wire.DType) ([]E, error) {
	if a.DType != want {
		return nil, fmt.Errorf("%w: array holds %s, want %s", ErrTagMismatch, a.DType, want)
	}
	n := len(a.Data) / want.Size()
	if n == 0 {
		return nil, nil
	}
	p := unsafe.Pointer(&a.Data[0])
	if uintptr(p)%uintptr(want.Size()) != 0 {
		return nil, fmt.Errorf("%w: payload at %p for %s", ErrMisaligned, p, want)
	}
	return unsafe.Slice((*E)(p), n), nil
}
