// Package wire defines the blobfig wire vocabulary shared by the encoder
// and the parser: value tags, array element types, and the fixed header
// constants.
//
// The two sides of the codec share nothing else. The encoder operates on
// owned ir values; the parser hands out views over the caller's buffer.
//
// All multi-byte integers in the format are little-endian.
//
// # Related Packages
//
//   - github.com/blobfig/go-blobfig/ir - owned value trees for writing
//   - github.com/blobfig/go-blobfig/encode - ir tree to bytes
//   - github.com/blobfig/go-blobfig/parse - bytes to lazy views
package wire
