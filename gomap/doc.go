// Package gomap converts between ir value trees and plain Go values.
//
// Objects map to map[string]any (or []KV when entry order matters),
// lists to []any, and scalars to bool, int64, float64, and string.
// Arrays and files have no plain-Go equivalent and pass through as
// *ir.Array and *ir.File.
//
// The package exists so blobfig trees can meet the rest of the Go
// ecosystem: YAML and JSON manifests decode into map[string]any, and
// expression engines evaluate over it.
package gomap
