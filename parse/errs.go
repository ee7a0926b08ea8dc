package parse

import "errors"

var (
	// ErrBadMagic reports a buffer that does not start with the blobfig
	// magic bytes.
	ErrBadMagic = errors.New("bad magic, not a blobfig buffer")

	// ErrVersion reports an unsupported format version.
	ErrVersion = errors.New("unsupported format version")

	// ErrTruncated reports a read that would pass the end of the buffer.
	ErrTruncated = errors.New("truncated buffer")

	// ErrTagMismatch reports an accessor applied to a value of a
	// different kind.
	ErrTagMismatch = errors.New("value tag mismatch")

	// ErrOverflow reports shape or length arithmetic that would
	// overflow.
	ErrOverflow = errors.New("size arithmetic overflow")

	// ErrMisaligned reports an array payload whose address does not
	// permit reinterpretation at its element size.
	ErrMisaligned = errors.New("misaligned array payload")

	// ErrUTF8 reports a string or key payload that is not valid UTF-8.
	ErrUTF8 = errors.New("invalid UTF-8")

	// ErrDuplicateKey reports two entries with the same key in one
	// object, found during validation.
	ErrDuplicateKey = errors.New("duplicate object key")

	// ErrLength reports a stored child length that disagrees with the
	// child's actual encoding, found during validation.
	ErrLength = errors.New("stored child length mismatch")

	// ErrNotFound reports a path that does not resolve: a missing key,
	// an out-of-range list index, or a segment addressing into a
	// non-container value.
	ErrNotFound = errors.New("path not found")

	// ErrPath reports a malformed path (an empty interior segment).
	ErrPath = errors.New("malformed path")

	// ErrTooDeep reports nesting beyond the validation depth limit.
	ErrTooDeep = errors.New("nesting too deep")
)
