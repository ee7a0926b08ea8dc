package wire

import (
	"errors"
	"fmt"
)

// Tag is the one-byte discriminant that begins every encoded value.
type Tag uint8

const (
	NullTag Tag = iota
	BoolTag
	IntTag
	FloatTag
	StringTag
	ArrayTag
	FileTag
	ObjectTag
	ListTag
)

var ErrBadTag = errors.New("bad value tag")

func (t Tag) String() string {
	s, ok := map[Tag]string{
		NullTag:   "null",
		BoolTag:   "bool",
		IntTag:    "int",
		FloatTag:  "float",
		StringTag: "string",
		ArrayTag:  "array",
		FileTag:   "file",
		ObjectTag: "object",
		ListTag:   "list",
	}[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	if t > ListTag {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadTag, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	tt, ok := map[string]Tag{
		"null":   NullTag,
		"bool":   BoolTag,
		"int":    IntTag,
		"float":  FloatTag,
		"string": StringTag,
		"array":  ArrayTag,
		"file":   FileTag,
		"object": ObjectTag,
		"list":   ListTag,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadTag, d)
	}
	*t = tt
	return nil
}

// ParseTag checks a tag byte read from a buffer.
func ParseTag(b uint8) (Tag, error) {
	t := Tag(b)
	if t > ListTag {
		return 0, fmt.Errorf("%w: 0x%02x", ErrBadTag, b)
	}
	return t, nil
}

func Tags() []Tag {
	return []Tag{
		NullTag,
		BoolTag,
		IntTag,
		FloatTag,
		StringTag,
		ArrayTag,
		FileTag,
		ObjectTag,
		ListTag,
	}
}

// IsContainer reports whether values with this tag hold child values.
func (t Tag) IsContainer() bool {
	switch t {
	case ObjectTag, ListTag:
		return true
	}
	return false
}
