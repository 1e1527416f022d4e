// Package envelope implements the primary serialization format (§4.3,
// §6.1): a bracketed, semicolon-terminated textual grammar consisting of
// a header block and a data block,
//
//	@header={<field-list>};@data={<cell-list>};
//
// Decoding is liberal by default (the "basic guarantee" of §7): a
// malformed cell becomes a null cell with its declared name and parsing
// continues, with a summary error returned alongside the result. Mode
// Strict instead fails fast on the first error and returns no envelope.
// In Basic mode a single malformed cell never invalidates the enclosing
// envelope structure.
//
// Two parsing granularities are offered (§4.3 "Two parsing modes"):
// ParseHeaderOnly parses just the header block and records the data
// block's byte span for later lazy parsing by ParseDataSpan; ParseFull
// parses both blocks eagerly. Package view does not use this API; it
// indexes envelopes with its own []byte scanners.
package envelope
