// Package blobfig is the front door for the blobfig container format:
// a self-describing binary layout for trees of typed values (scalars,
// strings, typed arrays, file blobs, objects, lists) serialized into
// one contiguous buffer.
//
// The real work happens in the subpackages; this package only ties the
// common write-then-read path together:
//
//   - ir: owned value trees built in memory
//   - encode: ir tree to a finished buffer
//   - parse: zero-copy views over a buffer
//   - gomap, ndarray, dump: adapters and rendering
package blobfig

import (
	"github.com/blobfig/go-blobfig/encode"
	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/parse"
)

// Marshal encodes an owned value tree into one finished buffer.
func Marshal(v *ir.Value, opts ...encode.Option) ([]byte, error) {
	return encode.ToBytes(v, opts...)
}

// Parse returns a lazy view of the root value of an encoded buffer.
// The view borrows from data; see the parse package for the aliasing
// contract.
func Parse(data []byte) (*parse.View, error) {
	return parse.Parse(data)
}

// Get parses data and resolves a '/'-separated path in one step.
func Get(data []byte, path string) (*parse.View, error) {
	root, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	return root.Get(path)
}
