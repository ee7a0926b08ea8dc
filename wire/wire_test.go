package wire

import (
	"errors"
	"testing"
)

func TestTagText(t *testing.T) {
	for _, tag := range Tags() {
		d, err := tag.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", tag, err)
		}
		var back Tag
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != tag {
			t.Errorf("round trip %v != %v", back, tag)
		}
	}
	var tag Tag
	if err := tag.UnmarshalText([]byte("nope")); !errors.Is(err, ErrBadTag) {
		t.Errorf("expected ErrBadTag, got %v", err)
	}
}

func TestParseTag(t *testing.T) {
	if _, err := ParseTag(0x09); !errors.Is(err, ErrBadTag) {
		t.Errorf("tag 0x09 should be rejected, got %v", err)
	}
	if _, err := ParseTag(0xff); !errors.Is(err, ErrBadTag) {
		t.Errorf("tag 0xff should be rejected, got %v", err)
	}
	tag, err := ParseTag(0x07)
	if err != nil {
		t.Fatal(err)
	}
	if tag != ObjectTag {
		t.Errorf("got %v, want object", tag)
	}
}

func TestDTypeSizes(t *testing.T) {
	sizes := map[DType]int{
		U8: 1, I8: 1,
		U16: 2, I16: 2,
		U32: 4, I32: 4, F32: 4,
		U64: 8, I64: 8, F64: 8,
	}
	for d, want := range sizes {
		if got := d.Size(); got != want {
			t.Errorf("%v size = %d, want %d", d, got, want)
		}
	}
	if DType(0).Size() != 0 || DType(0x0B).Size() != 0 {
		t.Error("out-of-range dtypes must have size 0")
	}
}

func TestDTypeText(t *testing.T) {
	for _, d := range DTypes() {
		name := d.String()
		back, err := ParseDTypeName(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if back != d {
			t.Errorf("round trip %v != %v", back, d)
		}
	}
	if _, err := ParseDTypeName("f16"); !errors.Is(err, ErrBadDType) {
		t.Errorf("expected ErrBadDType, got %v", err)
	}
}

func TestPad(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8} {
		for off := 0; off < 32; off++ {
			p := Pad(off, align)
			if p < 0 || p >= align {
				t.Fatalf("Pad(%d, %d) = %d out of range", off, align, p)
			}
			if (off+p)%align != 0 {
				t.Fatalf("Pad(%d, %d) = %d does not align", off, align, p)
			}
		}
	}
}
