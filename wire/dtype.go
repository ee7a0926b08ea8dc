package wire

import (
	"errors"
	"fmt"
	"math"
)

// DType is the element type tag of a typed array.
type DType uint8

const (
	U8 DType = 0x01 + iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

var ErrBadDType = errors.New("bad dtype")

// Size returns the element size in bytes.
func (d DType) Size() int {
	switch d {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	}
	return 0
}

func (d DType) String() string {
	s, ok := map[DType]string{
		U8:  "u8",
		I8:  "i8",
		U16: "u16",
		I16: "i16",
		U32: "u32",
		I32: "i32",
		U64: "u64",
		I64: "i64",
		F32: "f32",
		F64: "f64",
	}[d]
	if ok {
		return s
	}
	return "<unknown dtype>"
}

// IsFloat reports whether the dtype is f32 or f64.
func (d DType) IsFloat() bool {
	return d == F32 || d == F64
}

// IntRange returns the representable range of an integer dtype. The
// u64 upper bound saturates at math.MaxInt64; values past that cannot
// travel through int64 element lists.
func (d DType) IntRange() (int64, int64) {
	switch d {
	case U8:
		return 0, math.MaxUint8
	case I8:
		return math.MinInt8, math.MaxInt8
	case U16:
		return 0, math.MaxUint16
	case I16:
		return math.MinInt16, math.MaxInt16
	case U32:
		return 0, math.MaxUint32
	case I32:
		return math.MinInt32, math.MaxInt32
	case U64:
		return 0, math.MaxInt64
	case I64:
		return math.MinInt64, math.MaxInt64
	}
	return 0, 0
}

func (d DType) MarshalText() ([]byte, error) {
	if d.Size() == 0 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadDType, uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *DType) UnmarshalText(text []byte) error {
	dd, err := ParseDTypeName(string(text))
	if err != nil {
		return err
	}
	*d = dd
	return nil
}

// ParseDType checks a dtype byte read from a buffer.
func ParseDType(b uint8) (DType, error) {
	d := DType(b)
	if d.Size() == 0 {
		return 0, fmt.Errorf("%w: 0x%02x", ErrBadDType, b)
	}
	return d, nil
}

// ParseDTypeName parses the textual dtype name used in manifests and
// the dump output ("u8", "i64", "f32", ...).
func ParseDTypeName(v string) (DType, error) {
	d, ok := map[string]DType{
		"u8":  U8,
		"i8":  I8,
		"u16": U16,
		"i16": I16,
		"u32": U32,
		"i32": I32,
		"u64": U64,
		"i64": I64,
		"f32": F32,
		"f64": F64,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadDType, v)
	}
	return d, nil
}

func DTypes() []DType {
	return []DType{U8, I8, U16, I16, U32, I32, U64, I64, F32, F64}
}
