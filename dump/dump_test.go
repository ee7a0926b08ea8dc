package dump

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/blobfig/go-blobfig/encode"
	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/parse"
)

func parseValue(t *testing.T, v *ir.Value) *parse.View {
	t.Helper()
	buf, err := encode.ToBytes(v)
	if err != nil {
		t.Fatal(err)
	}
	root, err := parse.Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func render(t *testing.T, v *ir.Value, opts ...Option) string {
	t.Helper()
	var sb strings.Builder
	if err := Dump(parseValue(t, v), &sb, opts...); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func TestDumpTree(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "version", Value: ir.FromInt(1)},
		{Key: "name", Value: ir.FromString("demo")},
		{Key: "ratio", Value: ir.FromFloat(2)},
		{Key: "stats", Value: ir.FromFields([]ir.Field{
			{Key: "mean", Value: ir.ArrayFromFloat32s([]uint32{3}, []float32{1, 2, 3})},
		})},
		{Key: "notes", Value: ir.FromSlice([]*ir.Value{
			ir.FromString("first"),
			ir.FromFields([]ir.Field{{Key: "flag", Value: ir.FromBool(true)}}),
		})},
		{Key: "blob", Value: ir.FromFile(ir.NewFile("text/plain", []byte("hello")))},
		{Key: "empty", Value: ir.FromFields(nil)},
		{Key: "nothing", Value: ir.Null()},
	})
	want := strings.Join([]string{
		"version: 1",
		"name: demo",
		"ratio: 2.0",
		"stats:",
		"  mean: array(f32, [3], 12B)",
		"notes:",
		"  - first",
		"  -",
		"    flag: true",
		"blob: file(text/plain, 5B)",
		"empty: {}",
		"nothing: null",
		"",
	}, "\n")
	if diff := cmp.Diff(want, render(t, v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDumpScalarRoot(t *testing.T) {
	if got := render(t, ir.FromString("just me")); got != "just me\n" {
		t.Errorf("got %q", got)
	}
	if got := render(t, ir.FromSlice(nil)); got != "[]\n" {
		t.Errorf("got %q", got)
	}
}

func TestDumpInlineArrays(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "small", Value: ir.ArrayFromInt32s([]uint32{3}, []int32{-1, 0, 7})},
		{Key: "big", Value: ir.ArrayFromInt32s([]uint32{5}, []int32{1, 2, 3, 4, 5})},
	})
	got := render(t, v, InlineArrays(4))
	want := strings.Join([]string{
		"small: array(i32, [3], [-1 0 7])",
		"big: array(i32, [5], 20B)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDumpQuoting(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "plain key", Value: ir.FromString("with: colon")},
		{Key: "e", Value: ir.FromString("")},
		{Key: "kw", Value: ir.FromString("null")},
	})
	want := strings.Join([]string{
		`plain key: "with: colon"`,
		`e: ""`,
		`kw: "null"`,
		"",
	}, "\n")
	if diff := cmp.Diff(want, render(t, v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDumpIndent(t *testing.T) {
	v := ir.FromFields([]ir.Field{
		{Key: "a", Value: ir.FromFields([]ir.Field{
			{Key: "b", Value: ir.FromInt(1)},
		})},
	})
	got := render(t, v, Indent(4))
	if !strings.Contains(got, "\n    b: 1") {
		t.Errorf("got %q", got)
	}
}

func TestDumpColors(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	v := ir.FromFields([]ir.Field{{Key: "n", Value: ir.FromInt(1)}})
	got := render(t, v, WithColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escape sequences in %q", got)
	}
}
