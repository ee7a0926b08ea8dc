// Package dump renders parsed blobfig values as indented text.
//
// The output is YAML-like and meant for eyes, not machines: objects
// indent, lists use dashes, and bulk payloads render as short
// summaries (`array(f32, [2 3], 24B)`, `file(text/plain, 11B)`)
// instead of bytes. Small array payloads can be inlined with
// InlineArrays. Colors colorizes per value kind for terminal output.
package dump
