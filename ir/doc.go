// Package ir provides the owned value model for building blobfig
// artifacts.
//
// # Overview
//
// A blobfig artifact is a tree of typed values: scalars (null, bool, int,
// float, string), typed multi-dimensional numeric arrays, tagged byte
// blobs (files), ordered key/value objects, and lists. This package
// defines the heap-resident representation of such a tree as it is built
// programmatically before being handed to the encoder.
//
// The ir tree is write-side only. The parser never produces ir values;
// it produces views that borrow from the parsed buffer (see the parse
// package). The two representations share only the wire vocabulary
// (tags and dtypes). parse.View.Decode converts a view back into an
// owned ir tree when a copy is wanted.
//
// # Value Structure
//
// A Value is a tagged union: the Type field selects which payload field
// is meaningful. Object values hold an ordered slice of Fields; order is
// preserved through a round trip and is observable.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromFields([]ir.Field{
//	    {Key: "version", Value: ir.FromInt(1)},
//	    {Key: "mean", Value: ir.FromArray(ir.ArrayFromFloat32s([]uint32{3}, []float32{1, 2, 3}))},
//	})
//
// # Related Packages
//
//   - github.com/blobfig/go-blobfig/encode - ir tree to bytes
//   - github.com/blobfig/go-blobfig/parse - bytes to lazy views
package ir
