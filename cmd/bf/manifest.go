package main

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/blobfig/go-blobfig/debug"
	"github.com/blobfig/go-blobfig/gomap"
	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/wire"
)

// Manifest documents are plain YAML/JSON trees in which two object
// spellings are special: {$file, $mime} embeds an external file and
// {$dtype, $shape, $data} builds a typed array. irToManifest emits the
// same spellings (with $data inline), so the mapping round-trips.

// manifestToIR converts a decoded manifest document to a value tree.
// $file paths resolve relative to baseDir.
func manifestToIR(x any, baseDir string) (*ir.Value, error) {
	switch x := x.(type) {
	case map[string]any:
		if _, ok := x["$file"]; ok {
			return manifestFile(x, baseDir)
		}
		if _, ok := x["$dtype"]; ok {
			return manifestArray(x)
		}
		if _, ok := x["$mime"]; ok {
			return manifestInlineFile(x)
		}
		sub := make(map[string]*ir.Value, len(x))
		for k, mv := range x {
			cv, err := manifestToIR(mv, baseDir)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			sub[k] = cv
		}
		return ir.FromMap(sub), nil
	case []any:
		items := make([]*ir.Value, 0, len(x))
		for i, iv := range x {
			cv, err := manifestToIR(iv, baseDir)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, cv)
		}
		return ir.FromSlice(items), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return ir.FromFloat(f), nil
	}
	return gomap.ToIR(x)
}

func manifestFile(m map[string]any, baseDir string) (*ir.Value, error) {
	rel, ok := m["$file"].(string)
	if !ok {
		return nil, fmt.Errorf("$file wants a path string, have %T", m["$file"])
	}
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mime := "application/octet-stream"
	if mv, ok := m["$mime"]; ok {
		mime, ok = mv.(string)
		if !ok {
			return nil, fmt.Errorf("$mime wants a string, have %T", mv)
		}
	}
	if debug.Pack() {
		debug.Logf("bf: embed %s: %d bytes as %s\n", path, len(data), mime)
	}
	return ir.FromFile(ir.NewFile(mime, data)), nil
}

func manifestInlineFile(m map[string]any) (*ir.Value, error) {
	mime, ok := m["$mime"].(string)
	if !ok {
		return nil, fmt.Errorf("$mime wants a string, have %T", m["$mime"])
	}
	enc, ok := m["$data"].(string)
	if !ok {
		return nil, fmt.Errorf("inline file $data wants a base64 string, have %T", m["$data"])
	}
	data, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, fmt.Errorf("bad $data: %w", err)
	}
	return ir.FromFile(ir.NewFile(mime, data)), nil
}

func manifestArray(m map[string]any) (*ir.Value, error) {
	name, ok := m["$dtype"].(string)
	if !ok {
		return nil, fmt.Errorf("$dtype wants a name string, have %T", m["$dtype"])
	}
	dtype, err := wire.ParseDTypeName(name)
	if err != nil {
		return nil, err
	}
	shape, err := manifestShape(m["$shape"])
	if err != nil {
		return nil, err
	}
	var data []byte
	switch d := m["$data"].(type) {
	case string:
		data, err = base64.StdEncoding.DecodeString(d)
		if err != nil {
			return nil, fmt.Errorf("bad $data: %w", err)
		}
	case []any:
		data, err = packElems(dtype, d)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("$data wants elements or a base64 string, have %T", d)
	}
	a, err := ir.NewArray(dtype, shape, data)
	if err != nil {
		return nil, err
	}
	return ir.FromArray(a), nil
}

func manifestShape(x any) ([]uint32, error) {
	dims, ok := x.([]any)
	if !ok {
		return nil, fmt.Errorf("$shape wants a list of dims, have %T", x)
	}
	shape := make([]uint32, 0, len(dims))
	for i, d := range dims {
		n, err := toInt64(d)
		if err != nil || n < 0 || n > math.MaxUint32 {
			return nil, fmt.Errorf("$shape dim %d: bad value %v", i, d)
		}
		shape = append(shape, uint32(n))
	}
	return shape, nil
}

func packElems(dtype wire.DType, items []any) ([]byte, error) {
	buf := make([]byte, 0, len(items)*dtype.Size())
	for i, item := range items {
		var err error
		buf, err = packElem(buf, dtype, item)
		if err != nil {
			return nil, fmt.Errorf("$data element %d: %w", i, err)
		}
	}
	return buf, nil
}

func packElem(buf []byte, dtype wire.DType, item any) ([]byte, error) {
	switch dtype {
	case wire.F32:
		f, err := toFloat64(item)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(f))), nil
	case wire.F64:
		f, err := toFloat64(item)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(f)), nil
	}
	n, err := toInt64(item)
	if err != nil {
		return nil, err
	}
	lo, hi := dtype.IntRange()
	if n < lo || n > hi {
		return nil, fmt.Errorf("%d out of range for %s", n, dtype)
	}
	switch dtype.Size() {
	case 1:
		return append(buf, byte(n)), nil
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(n)), nil
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(n)), nil
	}
	return binary.LittleEndian.AppendUint64(buf, uint64(n)), nil
}

func toInt64(x any) (int64, error) {
	switch x := x.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", x)
		}
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not an integer", x)
		}
		return int64(x), nil
	case json.Number:
		return strconv.ParseInt(x.String(), 10, 64)
	}
	return 0, fmt.Errorf("want an integer, have %T", x)
}

func toFloat64(x any) (float64, error) {
	switch x := x.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	case json.Number:
		return x.Float64()
	}
	return 0, fmt.Errorf("want a number, have %T", x)
}

// irToManifest projects a value tree onto plain JSON-able Go values,
// rendering arrays and files with the manifest $-spellings. Object
// entry order is lost; re-encoding sorts keys.
func irToManifest(v *ir.Value) (any, error) {
	switch v.Type {
	case wire.ArrayTag:
		return map[string]any{
			"$dtype": v.Array.DType.String(),
			"$shape": shapeToAny(v.Array.Shape),
			"$data":  base64.StdEncoding.EncodeToString(v.Array.Data),
		}, nil
	case wire.FileTag:
		return map[string]any{
			"$mime": v.File.Mime,
			"$data": base64.StdEncoding.EncodeToString(v.File.Data),
		}, nil
	case wire.ObjectTag:
		m := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			fv, err := irToManifest(f.Value)
			if err != nil {
				return nil, err
			}
			m[f.Key] = fv
		}
		return m, nil
	case wire.ListTag:
		items := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			iv, err := irToManifest(item)
			if err != nil {
				return nil, err
			}
			items = append(items, iv)
		}
		return items, nil
	}
	return gomap.FromIR(v)
}

func shapeToAny(shape []uint32) []any {
	dims := make([]any, 0, len(shape))
	for _, d := range shape {
		dims = append(dims, int64(d))
	}
	return dims
}
