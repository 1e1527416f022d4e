// Package binary implements the compact, length-prefixed, type-tagged
// binary codec (§4.4, §6.2): little-endian on the wire regardless of
// host, no magic bytes, no version header. Framing is the caller's
// responsibility.
//
// Unlike the textual envelope codec, binary decoding offers no basic
// guarantee: any truncation or invalid tag fails the whole decode, never
// a partial store (§7).
package binary
