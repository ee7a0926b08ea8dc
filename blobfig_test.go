package blobfig

import (
	"errors"
	"testing"

	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/parse"
)

func TestMarshalGet(t *testing.T) {
	buf, err := Marshal(ir.FromFields([]ir.Field{
		{Key: "config", Value: ir.FromFields([]ir.Field{
			{Key: "version", Value: ir.FromInt(2)},
		})},
	}))
	if err != nil {
		t.Fatal(err)
	}
	v, err := Get(buf, "config/version")
	if err != nil {
		t.Fatal(err)
	}
	n, err := v.AsInt()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("version = %d", n)
	}
	if _, err := Get(buf, "config/nope"); !errors.Is(err, parse.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
