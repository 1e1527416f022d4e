package envelope

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
)

// Envelope is the fully decoded result of ParseFull.
type Envelope struct {
	Header messaging.Header
	Store  *store.Store
}

// HeaderOnlyResult is the result of ParseHeaderOnly: the header plus the
// data block's unparsed byte span, retained for later lazy consumption by
// ParseDataSpan.
type HeaderOnlyResult struct {
	Header   messaging.Header
	DataSpan string
}

// ParseFull parses both the header and data blocks of a textual envelope.
// In Basic mode a non-nil *Envelope is always returned alongside a non-nil
// summary error when any cell was malformed; in Strict mode the first
// error aborts the parse and the Envelope return is nil.
func ParseFull(data string, mode Mode) (*Envelope, error) {
	h, dataInner, _, err := parseHeaderAndSpan(data)
	if err != nil {
		return nil, err
	}
	st, perr := parseCellList(dataInner, mode)
	if perr != nil && mode == Strict {
		return nil, perr
	}
	return &Envelope{Header: h, Store: st}, perr
}

// ParseHeaderOnly parses the header block eagerly and retains the data
// block's byte span, unparsed, for a later ParseDataSpan call.
func ParseHeaderOnly(data string, mode Mode) (*HeaderOnlyResult, error) {
	h, dataInner, _, err := parseHeaderAndSpan(data)
	if err != nil {
		return nil, err
	}
	return &HeaderOnlyResult{Header: h, DataSpan: dataInner}, nil
}

// ParseDataSpan lazily parses a data span previously retained by
// ParseHeaderOnly.
func ParseDataSpan(span string, mode Mode) (*store.Store, error) {
	return parseCellList(span, mode)
}

// parseEnvelopeBody parses a full "@header={...};@data={...};" body — used
// both at the top level and recursively for nested container values.
func parseEnvelopeBody(s string, mode Mode) (messaging.Header, *store.Store, error) {
	h, dataInner, _, err := parseHeaderAndSpan(s)
	if err != nil {
		return messaging.Header{}, nil, err
	}
	st, perr := parseCellList(dataInner, mode)
	if perr != nil && mode == Strict {
		return messaging.Header{}, nil, perr
	}
	return h, st, perr
}

func parseHeaderAndSpan(s string) (messaging.Header, string, int, error) {
	if !strings.HasPrefix(s, headerMarker) {
		return messaging.Header{}, "", 0, fmt.Errorf("envelope: missing %q: %w", headerMarker, cell.ErrMalformedEnvelope)
	}
	pos := len(headerMarker)

	headerBlock, pos, err := scanBraceBlock(s, pos)
	if err != nil {
		return messaging.Header{}, "", pos, fmt.Errorf("envelope: header block: %w", cell.ErrMalformedEnvelope)
	}
	h := parseHeaderFields(unwrapOnce(headerBlock))

	if !strings.HasPrefix(s[pos:], dataMarker) {
		return messaging.Header{}, "", pos, fmt.Errorf("envelope: missing %q: %w", dataMarker, cell.ErrMalformedEnvelope)
	}
	pos += len(dataMarker)

	dataBlock, pos, err := scanBraceBlock(s, pos)
	if err != nil {
		return messaging.Header{}, "", pos, fmt.Errorf("envelope: data block: %w", cell.ErrMalformedEnvelope)
	}
	return h, unwrapOnce(dataBlock), pos, nil
}

func parseHeaderFields(s string) messaging.Header {
	h := messaging.NewHeader()
	pos := 0
	for pos < len(s) {
		eq := strings.IndexByte(s[pos:], '=')
		if eq < 0 {
			break
		}
		key := s[pos : pos+eq]
		pos += eq + 1
		if pos >= len(s) || s[pos] != '[' {
			break
		}
		pos++
		rawVal, newPos, err := scanEscaped(s, pos, "]")
		if err != nil {
			break
		}
		pos = newPos + 1 // past ']'
		if pos < len(s) && s[pos] == ';' {
			pos++
		}
		val := unescapeString(rawVal)
		switch key {
		case "source":
			h.SourceID = val
		case "source_sub":
			h.SourceSubID = val
		case "target":
			h.TargetID = val
		case "target_sub":
			h.TargetSubID = val
		case "message_type":
			h.MessageType = val
		case "version":
			h.Version = val
			// Unknown fields are ignored (§4.3).
		}
	}
	return h
}

// parseCellList parses a sequence of "[name,tagchar,value];" entries. In
// Basic mode a malformed cell decodes as a null cell bearing its declared
// (or best-effort recovered) name, parsing resumes after it, and every
// issue encountered is folded into the returned summary error. In Strict
// mode the first issue aborts the parse.
func parseCellList(s string, mode Mode) (*store.Store, error) {
	st := store.New()
	var errs []error
	pos := 0
	for pos < len(s) {
		c, newPos, err := parseCellEntry(s, pos, mode)
		if err != nil {
			if mode == Strict {
				return nil, err
			}
			errs = append(errs, err)
		}
		if c != nil {
			st.AddCell(c)
		}
		if newPos <= pos {
			break // defensive: never spin without progress
		}
		pos = newPos
	}
	if len(errs) > 0 {
		return st, fmt.Errorf("envelope: %d malformed cell(s): %w", len(errs), errors.Join(errs...))
	}
	return st, nil
}

func parseCellEntry(s string, pos int, mode Mode) (*cell.Cell, int, error) {
	start := pos
	if pos >= len(s) || s[pos] != '[' {
		return cell.NewNull(""), skipToNextEntry(s, start), fmt.Errorf("envelope: expected '[' at offset %d: %w", pos, cell.ErrMalformedCell)
	}
	pos++

	rawName, pos, err := scanEscaped(s, pos, ",")
	if err != nil {
		return cell.NewNull(""), len(s), fmt.Errorf("envelope: %w", cell.ErrMalformedCell)
	}
	name := unescapeString(rawName)

	if pos >= len(s) || s[pos] != ',' {
		return cell.NewNull(name), skipToNextEntry(s, start), fmt.Errorf("envelope: missing tag separator for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++

	if pos >= len(s) {
		return cell.NewNull(name), len(s), fmt.Errorf("envelope: truncated cell %q: %w", name, cell.ErrMalformedCell)
	}
	tagChar := s[pos]
	pos++

	if pos >= len(s) || s[pos] != ',' {
		return cell.NewNull(name), skipToNextEntry(s, start), fmt.Errorf("envelope: missing value separator for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++

	tag, ok := cell.TagFromWireChar(tagChar)
	if !ok {
		return cell.NewNull(name), skipToNextEntry(s, start), fmt.Errorf("envelope: invalid wire tag %q for %q: %w", tagChar, name, cell.ErrInvalidTag)
	}

	var rawValue string
	if pos < len(s) && s[pos] == '{' {
		block, newPos, err := scanBraceBlock(s, pos)
		if err != nil {
			return cell.NewNull(name), len(s), fmt.Errorf("envelope: unterminated nested value for %q: %w", name, cell.ErrMalformedCell)
		}
		rawValue, pos = block, newPos
	} else {
		raw, newPos, err := scanEscaped(s, pos, "]")
		if err != nil {
			return cell.NewNull(name), len(s), fmt.Errorf("envelope: unterminated value for %q: %w", name, cell.ErrMalformedCell)
		}
		rawValue, pos = raw, newPos
	}

	if pos >= len(s) || s[pos] != ']' {
		return cell.NewNull(name), skipToNextEntry(s, start), fmt.Errorf("envelope: missing ']' for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++
	if pos >= len(s) || s[pos] != ';' {
		return cell.NewNull(name), skipToNextEntry(s, start), fmt.Errorf("envelope: missing ';' for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++

	c, err := buildCell(name, tag, rawValue, mode)
	if err != nil {
		return cell.NewNull(name), pos, err
	}
	return c, pos, nil
}

// skipToNextEntry resyncs a Basic-mode parse to just past the next
// unescaped ';', so one malformed cell doesn't desynchronize the rest of
// the list.
func skipToNextEntry(s string, from int) int {
	pos := from
	for pos < len(s) {
		if s[pos] == '\\' && pos+1 < len(s) {
			pos += 2
			continue
		}
		if s[pos] == ';' {
			return pos + 1
		}
		pos++
	}
	return len(s)
}

func buildCell(name string, tag cell.Tag, raw string, mode Mode) (*cell.Cell, error) {
	switch tag {
	case cell.Null:
		return cell.NewNull(name), nil
	case cell.Bool:
		v, ok := cell.NewString("", unescapeString(raw)).ToBool()
		if !ok {
			return nil, fmt.Errorf("envelope: invalid bool %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewBool(name, v), nil
	case cell.Short:
		n, err := strconv.ParseInt(unescapeString(raw), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid short %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewShort(name, int16(n)), nil
	case cell.UShort:
		n, err := strconv.ParseUint(unescapeString(raw), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid ushort %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewUShort(name, uint16(n)), nil
	case cell.Int:
		n, err := strconv.ParseInt(unescapeString(raw), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid int %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewInt(name, int32(n)), nil
	case cell.UInt:
		n, err := strconv.ParseUint(unescapeString(raw), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid uint %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewUInt(name, uint32(n)), nil
	case cell.Long, cell.LLong:
		n, err := strconv.ParseInt(unescapeString(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid long %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewLong(name, n), nil
	case cell.ULong, cell.ULLong:
		n, err := strconv.ParseUint(unescapeString(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid ulong %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewULong(name, n), nil
	case cell.Float:
		f, err := strconv.ParseFloat(unescapeString(raw), 32)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid float %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewFloat(name, float32(f)), nil
	case cell.Double:
		f, err := strconv.ParseFloat(unescapeString(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid double %q for %q: %w", raw, name, cell.ErrMalformedCell)
		}
		return cell.NewDouble(name, f), nil
	case cell.String:
		return cell.NewString(name, decodeStringPayload(raw)), nil
	case cell.Bytes:
		b, err := hex.DecodeString(unescapeString(raw))
		if err != nil {
			return nil, fmt.Errorf("envelope: invalid hex bytes for %q: %w", name, cell.ErrMalformedCell)
		}
		return cell.NewBytes(name, b), nil
	case cell.Container:
		inner := stripLegacyBraces(unwrapOnce(raw))
		_, nested, err := parseEnvelopeBody(inner, mode)
		if err != nil && mode == Strict {
			return nil, fmt.Errorf("envelope: container %q: %w", name, err)
		}
		if nested == nil {
			nested = store.New()
		}
		return cell.NewContainer(name, nested), err
	case cell.Array:
		inner := stripLegacyBraces(unwrapOnce(raw))
		elems, err := parseCellList(inner, mode)
		if err != nil && mode == Strict {
			return nil, fmt.Errorf("envelope: array %q: %w", name, err)
		}
		var out []*cell.Cell
		elems.ForEach(func(_ string, e *cell.Cell) bool {
			out = append(out, e)
			return true
		})
		return cell.NewArray(name, out), err
	default:
		return nil, fmt.Errorf("envelope: unsupported wire tag for %q: %w", name, cell.ErrInvalidTag)
	}
}

// --- low-level scanners ---

// scanEscaped consumes s[pos:] up to (but not including) the first
// unescaped byte in stops, treating a backslash as always escaping the
// byte that follows it. It returns the raw (still-escaped) substring.
func scanEscaped(s string, pos int, stops string) (raw string, newPos int, err error) {
	start := pos
	for pos < len(s) {
		c := s[pos]
		if c == '\\' && pos+1 < len(s) {
			pos += 2
			continue
		}
		if strings.IndexByte(stops, c) >= 0 {
			return s[start:pos], pos, nil
		}
		pos++
	}
	return "", pos, fmt.Errorf("envelope: unterminated field: %w", cell.ErrMalformedEnvelope)
}

// scanBraceBlock consumes a balanced "{...}" block starting at s[pos],
// respecting backslash escaping, and returns it including both braces.
func scanBraceBlock(s string, pos int) (block string, newPos int, err error) {
	if pos >= len(s) || s[pos] != '{' {
		return "", pos, fmt.Errorf("envelope: expected '{' at offset %d: %w", pos, cell.ErrMalformedEnvelope)
	}
	start := pos
	depth := 0
	for pos < len(s) {
		c := s[pos]
		if c == '\\' && pos+1 < len(s) {
			pos += 2
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				pos++
				return s[start:pos], pos, nil
			}
		}
		pos++
	}
	return "", pos, fmt.Errorf("envelope: unterminated '{' block: %w", cell.ErrMalformedEnvelope)
}

// unwrapOnce strips one layer of surrounding braces from a block produced
// by scanBraceBlock. The caller guarantees block is at least "{}" .
func unwrapOnce(block string) string {
	if len(block) < 2 {
		return block
	}
	return block[1 : len(block)-1]
}

// decodeStringPayload unescapes a raw string payload, falling back to the
// legacy non-UTF-8 decode path (legacy.go) when the result isn't valid
// UTF-8.
func decodeStringPayload(raw string) string {
	return decodeLegacyString(unescapeString(raw))
}
