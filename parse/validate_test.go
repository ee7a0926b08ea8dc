package parse

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

func TestValidateOK(t *testing.T) {
	root, err := Parse(mustEncode(t, sampleTree()))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(root); err != nil {
		t.Fatal(err)
	}
}

func TestValidateBadTag(t *testing.T) {
	buf := mustEncode(t, ir.FromBool(true))
	buf[wire.HeaderSize] = 0x7f
	root, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(root); !errors.Is(err, wire.ErrBadTag) {
		t.Errorf("expected ErrBadTag, got %v", err)
	}
}

func TestValidateDuplicateKeys(t *testing.T) {
	// the writer refuses duplicates, so forge one by rewriting the
	// second key of a two-key object
	v := ir.FromFields([]ir.Field{
		{Key: "x", Value: ir.FromInt(1)},
		{Key: "y", Value: ir.FromInt(2)},
	})
	buf := mustEncode(t, v)
	// second key "y" sits after the first entry; rewrite it to "x"
	for i := wire.HeaderSize; i < len(buf); i++ {
		if buf[i] == 'y' {
			buf[i] = 'x'
		}
	}
	root, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(root); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestValidateChildLengthMismatch(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "k", Value: ir.FromInt(1)},
	})
	buf := mustEncode(t, v)
	// object layout: tag, u32 count, u32 keylen, key, u32 childlen, child
	lenOff := wire.HeaderSize + 1 + 4 + 4 + 1
	stored := binary.LittleEndian.Uint32(buf[lenOff:])
	binary.LittleEndian.PutUint32(buf[lenOff:], stored+1)
	// grow the buffer so the inflated length stays in bounds
	buf = append(buf, 0)
	root, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(root); !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}
}

func TestValidateDeepNesting(t *testing.T) {
	v := ir.FromInt(0)
	for range maxDepth + 1 {
		v = ir.FromFields([]ir.Field{{Key: "d", Value: v}})
	}
	buf := mustEncode(t, v)
	root, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(root); !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	if _, err := root.Decode(); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Decode: expected ErrTooDeep, got %v", err)
	}
}

// A tiny buffer may claim a huge entry count; sizing any allocation by
// that count before bounds-checking entries would abort the process on
// hostile input.
func TestInflatedCountAllocation(t *testing.T) {
	for _, tag := range []wire.Tag{wire.ObjectTag, wire.ListTag} {
		t.Run(tag.String(), func(t *testing.T) {
			buf := mustEncode(t, ir.Null())
			buf[wire.HeaderSize] = byte(tag)
			buf = append(buf, 0xff, 0xff, 0xff, 0xff) // count 4294967295
			root, err := Parse(buf)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := root.Decode(); !errors.Is(err, ErrTruncated) {
				t.Errorf("Decode: %v", err)
			}
			if err := Validate(root); !errors.Is(err, ErrTruncated) {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestValidateOverlongCounts(t *testing.T) {
	buf := mustEncode(t, ir.FromFields(nil))
	// claim 0xffffffff fields in an empty object
	binary.LittleEndian.PutUint32(buf[wire.HeaderSize+1:], 0xffffffff)
	root, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(root); err == nil {
		t.Error("expected error on inflated field count")
	}
	obj, err := root.AsObject()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := obj.Get("k"); err == nil {
		t.Error("expected error walking inflated object")
	}
}
