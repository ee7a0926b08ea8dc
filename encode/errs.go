package encode

import "errors"

var (
	// ErrEncoding reports a size-accounting mismatch between the
	// measuring and writing passes. It indicates a bug in this package,
	// not bad input.
	ErrEncoding = errors.New("encoding error")

	// ErrDuplicateKey reports two entries with the same key in one object.
	ErrDuplicateKey = errors.New("duplicate object key")

	// ErrBadKey reports an object key that is not valid UTF-8 or that
	// contains '/', which would make it unaddressable by path.
	ErrBadKey = errors.New("bad object key")

	// ErrBadString reports a string value or file mime type that is not
	// valid UTF-8, which the parser would refuse to read back.
	ErrBadString = errors.New("string not valid UTF-8")

	// ErrArraySize reports an array whose payload length disagrees with
	// its shape and dtype.
	ErrArraySize = errors.New("array payload size mismatch")

	// ErrTooLarge reports an encoded length that exceeds the capacity of
	// its length field.
	ErrTooLarge = errors.New("encoded size exceeds length field")

	// ErrBadValue reports a nil value or an unknown tag in the input tree.
	ErrBadValue = errors.New("bad value")
)
