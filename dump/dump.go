package dump

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/blobfig/go-blobfig/parse"
	"github.com/blobfig/go-blobfig/wire"
)

type Option func(*dumpState)

// Indent sets the indent width. The default is 2.
func Indent(n int) Option {
	return func(ds *dumpState) { ds.indent = n }
}

// WithColors colorizes the output.
func WithColors(c *Colors) Option {
	return func(ds *dumpState) { ds.color = c.Color }
}

// InlineArrays renders array payloads of up to n elements as literal
// element lists instead of summaries.
func InlineArrays(n int) Option {
	return func(ds *dumpState) { ds.inlineArrays = n }
}

type dumpState struct {
	indent       int
	inlineArrays int
	color        func(wire.Tag, ColorAttr, string) string
}

// Dump renders the value tree under v as indented text. Rendering
// walks lazily; a malformed region fails the walk when reached.
func Dump(v *parse.View, w io.Writer, opts ...Option) error {
	ds := &dumpState{
		indent: 2,
		color:  func(_ wire.Tag, _ ColorAttr, s string) string { return s },
	}
	for _, opt := range opts {
		opt(ds)
	}
	if err := dump(v, w, 0, ds); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// dump writes v without a trailing newline. Containers emit their own
// interior newlines; depth is the current indent level.
func dump(v *parse.View, w io.Writer, depth int, ds *dumpState) error {
	kind, err := v.Kind()
	if err != nil {
		return err
	}
	switch kind {
	case wire.ObjectTag:
		return dumpObject(v, w, depth, ds)
	case wire.ListTag:
		return dumpList(v, w, depth, ds)
	}
	s, err := scalarString(v, kind, ds)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func scalarString(v *parse.View, kind wire.Tag, ds *dumpState) (string, error) {
	switch kind {
	case wire.NullTag:
		return ds.color(kind, ValueColor, "null"), nil
	case wire.BoolTag:
		b, err := v.AsBool()
		if err != nil {
			return "", err
		}
		return ds.color(kind, ValueColor, strconv.FormatBool(b)), nil
	case wire.IntTag:
		i, err := v.AsInt()
		if err != nil {
			return "", err
		}
		return ds.color(kind, ValueColor, strconv.FormatInt(i, 10)), nil
	case wire.FloatTag:
		f, err := v.AsFloat()
		if err != nil {
			return "", err
		}
		return ds.color(kind, ValueColor, formatFloat(f)), nil
	case wire.StringTag:
		s, err := v.AsString()
		if err != nil {
			return "", err
		}
		return ds.color(kind, ValueColor, quoteIfNeeded(s)), nil
	case wire.ArrayTag:
		a, err := v.AsArray()
		if err != nil {
			return "", err
		}
		return ds.color(kind, SummaryColor, arrayString(a, ds)), nil
	case wire.FileTag:
		f, err := v.AsFile()
		if err != nil {
			return "", err
		}
		return ds.color(kind, SummaryColor,
			fmt.Sprintf("file(%s, %dB)", f.Mime, len(f.Data))), nil
	}
	return "", fmt.Errorf("%w: 0x%02x", wire.ErrBadTag, uint8(kind))
}

func dumpObject(v *parse.View, w io.Writer, depth int, ds *dumpState) error {
	obj, err := v.AsObject()
	if err != nil {
		return err
	}
	if obj.Len() == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}
	pad := strings.Repeat(" ", depth*ds.indent)
	i := 0
	for key, child := range obj.All() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		kind, err := child.Kind()
		if err != nil {
			return err
		}
		head := pad + ds.color(kind, FieldColor, quoteIfNeeded(key)) +
			ds.color(kind, SepColor, ":")
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := dumpChild(child, kind, w, depth, ds); err != nil {
			return err
		}
		i++
	}
	if i != obj.Len() {
		return fmt.Errorf("object stopped at entry %d of %d", i, obj.Len())
	}
	return nil
}

func dumpList(v *parse.View, w io.Writer, depth int, ds *dumpState) error {
	list, err := v.AsList()
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		_, err := io.WriteString(w, "[]")
		return err
	}
	pad := strings.Repeat(" ", depth*ds.indent)
	i := 0
	for _, item := range list.All() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		kind, err := item.Kind()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, pad+ds.color(kind, SepColor, "-")); err != nil {
			return err
		}
		if err := dumpChild(item, kind, w, depth, ds); err != nil {
			return err
		}
		i++
	}
	if i != list.Len() {
		return fmt.Errorf("list stopped at item %d of %d", i, list.Len())
	}
	return nil
}

// dumpChild writes one object entry's or list item's value: scalars
// inline after a space, non-empty containers on the following lines.
func dumpChild(child *parse.View, kind wire.Tag, w io.Writer, depth int, ds *dumpState) error {
	if kind.IsContainer() {
		n, err := containerLen(child, kind)
		if err != nil {
			return err
		}
		if n > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			return dump(child, w, depth+1, ds)
		}
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	return dump(child, w, depth, ds)
}

func containerLen(v *parse.View, kind wire.Tag) (int, error) {
	if kind == wire.ObjectTag {
		obj, err := v.AsObject()
		if err != nil {
			return 0, err
		}
		return obj.Len(), nil
	}
	list, err := v.AsList()
	if err != nil {
		return 0, err
	}
	return list.Len(), nil
}

func arrayString(a *parse.ArrayView, ds *dumpState) string {
	elems := a.Elems()
	if ds.inlineArrays > 0 && elems <= uint64(ds.inlineArrays) {
		var sb strings.Builder
		fmt.Fprintf(&sb, "array(%s, %v, [", a.DType, a.Shape)
		size := a.DType.Size()
		for i := uint64(0); i < elems; i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(elemString(a.DType, a.Data[i*uint64(size):]))
		}
		sb.WriteString("])")
		return sb.String()
	}
	return fmt.Sprintf("array(%s, %v, %dB)", a.DType, a.Shape, len(a.Data))
}

func elemString(d wire.DType, b []byte) string {
	switch d {
	case wire.U8:
		return strconv.FormatUint(uint64(b[0]), 10)
	case wire.I8:
		return strconv.FormatInt(int64(int8(b[0])), 10)
	case wire.U16:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint16(b)), 10)
	case wire.I16:
		return strconv.FormatInt(int64(int16(binary.LittleEndian.Uint16(b))), 10)
	case wire.U32:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(b)), 10)
	case wire.I32:
		return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(b))), 10)
	case wire.U64:
		return strconv.FormatUint(binary.LittleEndian.Uint64(b), 10)
	case wire.I64:
		return strconv.FormatInt(int64(binary.LittleEndian.Uint64(b)), 10)
	case wire.F32:
		return formatFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case wire.F64:
		return formatFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
	return "?"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// keep floats visually distinct from ints
	if !strings.ContainsAny(s, ".eNI") {
		s += ".0"
	}
	return s
}

// quoteIfNeeded leaves plain printable strings bare and quotes
// anything with leading/trailing space, control bytes, or characters
// the indented syntax uses.
func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	if strings.TrimSpace(s) != s {
		return strconv.Quote(s)
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f || r == ':' || r == '"' || r == '#' {
			return strconv.Quote(s)
		}
	}
	switch s {
	case "null", "true", "false", "{}", "[]", "-":
		return strconv.Quote(s)
	}
	return s
}
