// Package encode serializes an owned ir tree into a single blobfig
// buffer.
//
// # Usage
//
//	v := ir.FromFields([]ir.Field{
//	    {Key: "version", Value: ir.FromInt(1)},
//	})
//	data, err := encode.ToBytes(v)
//
//	// Or through an io.Writer; the buffer is still built atomically
//	// and written in one call, never partially.
//	err = encode.Encode(v, w)
//
// Array payloads are placed so that their absolute offset from the start
// of the buffer is a multiple of the element size, with zero padding
// inserted before them. Object and list children are prefixed with their
// total encoded length, which is what lets the parser skip a subtree
// without decoding it.
//
// # Related Packages
//
//   - github.com/blobfig/go-blobfig/ir - owned value trees
//   - github.com/blobfig/go-blobfig/parse - bytes to lazy views
package encode
