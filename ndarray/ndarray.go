package ndarray

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/parse"
	"github.com/blobfig/go-blobfig/wire"
)

// ErrUnsupported reports an array the matrix bridge cannot carry: a
// non-f64 dtype, a rank other than 1 or 2, or a matrix whose backing
// data is not contiguous row-major.
var ErrUnsupported = errors.New("unsupported array")

// ToDense views a rank-2 f64 array as a gonum matrix. The matrix
// shares the view's memory on little-endian hosts; treat it as
// read-only while the parsed buffer is.
func ToDense(a *parse.ArrayView) (*mat.Dense, error) {
	if len(a.Shape) != 2 {
		return nil, fmt.Errorf("%w: rank %d, want 2", ErrUnsupported, len(a.Shape))
	}
	vals, err := floats(a)
	if err != nil {
		return nil, err
	}
	r, c := int(a.Shape[0]), int(a.Shape[1])
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d matrix", ErrUnsupported, r, c)
	}
	return mat.NewDense(r, c, vals), nil
}

// ToVecDense views a rank-1 f64 array as a gonum vector.
func ToVecDense(a *parse.ArrayView) (*mat.VecDense, error) {
	if len(a.Shape) != 1 {
		return nil, fmt.Errorf("%w: rank %d, want 1", ErrUnsupported, len(a.Shape))
	}
	vals, err := floats(a)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrUnsupported)
	}
	return mat.NewVecDense(len(vals), vals), nil
}

func floats(a *parse.ArrayView) ([]float64, error) {
	if a.DType != wire.F64 {
		return nil, fmt.Errorf("%w: dtype %s, want f64", ErrUnsupported, a.DType)
	}
	return a.Float64s()
}

// FromDense copies a matrix into an owned f64 array of shape
// [rows cols]. Matrices with padded or transposed backing (a stride
// other than the column count) are rejected instead of re-packed.
func FromDense(m *mat.Dense) (*ir.Value, error) {
	raw := m.RawMatrix()
	if raw.Stride != raw.Cols {
		return nil, fmt.Errorf("%w: stride %d over %d columns", ErrUnsupported, raw.Stride, raw.Cols)
	}
	return ir.ArrayFromFloat64s(
		[]uint32{uint32(raw.Rows), uint32(raw.Cols)},
		slices.Clone(raw.Data),
	), nil
}

// FromVecDense copies a vector into an owned f64 array of shape [n].
func FromVecDense(v *mat.VecDense) (*ir.Value, error) {
	raw := v.RawVector()
	if raw.Inc != 1 {
		return nil, fmt.Errorf("%w: vector increment %d", ErrUnsupported, raw.Inc)
	}
	return ir.ArrayFromFloat64s([]uint32{uint32(raw.N)}, slices.Clone(raw.Data[:raw.N])), nil
}
