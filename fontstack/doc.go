// Package fontstack turns font blobs into serialized SDF glyph ranges and
// face listings.
//
// Load enumerates every face in a font collection with its covered
// codepoints (spec.md §4.7); Range rasterizes a codepoint range across
// every face and serializes the result as a protocol-buffer byte stream
// matching the fixed Glyphs/Fontstack/Glyph schema in spec.md §6.
//
// Both are synchronous, single-threaded, and borrow the input font blob
// for the duration of the call only (spec.md §5).
package fontstack
