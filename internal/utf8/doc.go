// Package utf8 implements the UTF-8 text substrate used by the rest of this
// module: a packed code point, owned and borrowed strings with a cached
// code-point count, and bidirectional code-point iteration.
//
// This is a from-scratch codec, not a wrapper around the standard library's
// unicode/utf8: ordering here is length-then-bytewise (not Unicode
// collation), and decoding from a streaming cursor supports seek-back by one
// byte on a malformed continuation sequence. Both are deliberate departures
// from stdlib semantics and are documented, not accidental.
package utf8
