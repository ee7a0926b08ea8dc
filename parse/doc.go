// Package parse provides zero-copy blobfig parsing support.
//
// # Overview
//
// Parse validates the fixed header of a blobfig buffer and returns a
// View positioned at the root value. Nothing else is decoded: object
// and list children are decoded on access, and each child's stored
// total length lets a lookup skip over unrelated subtrees without
// reading them.
//
// Every non-scalar payload a View hands back (string bytes, array
// payloads, file payloads) borrows from the caller's buffer. The buffer
// must stay alive and unmodified for as long as any View or payload
// derived from it is in use. This is what makes parsing directly over a
// read-only memory-mapped file safe and allocation-free; it also means
// a mapped file must only be unmapped after the last View is done.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	if err != nil { ... }
//	mean, err := root.Get("stats/mean")
//	if err != nil { ... }
//	arr, err := mean.AsArray()
//	if err != nil { ... }
//	vals, err := arr.Float32s() // aliases data, no copy
//
// # Malformed Input
//
// The buffer may come from disk or the network. Every read is
// bounds-checked and returns a typed error; no input can make the
// parser read past the buffer or panic. Header validation failures fail
// Parse itself; anything else fails only the accessor that touched the
// malformed region. Validate performs an eager full-tree check when a
// caller wants to reject a buffer up front.
//
// # Related Packages
//
//   - github.com/blobfig/go-blobfig/ir - owned value trees
//   - github.com/blobfig/go-blobfig/encode - ir tree to bytes
package parse
