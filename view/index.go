package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/valuecore/cell"
)

// CellView is an undecoded reference into a Buffer: a name, a tag, and the
// still-escaped raw payload span. raw is a subslice of the Buffer's own
// backing array, not a copy — it stays valid only as long as the Buffer
// does. Call As to decode a scalar value, or Container/Elements to descend
// into a nested container or array without decoding the rest of the
// surrounding list.
type CellView struct {
	name string
	tag  cell.Tag
	raw  []byte
}

// Name returns the cell's key.
func (v CellView) Name() string { return v.name }

// Tag returns the cell's wire tag.
func (v CellView) Tag() cell.Tag { return v.tag }

// As decodes v as a scalar of type T. ok is false if v's tag doesn't
// decode to T or the payload is malformed; Container and Array views never
// decode through As — use Container or Elements instead. This is the only
// point in the lazy read path that allocates a Go value from the payload
// bytes; indexing copies only cell names, never payload bytes.
func As[T any](v CellView) (T, bool) {
	var zero T
	val, err := decodeScalar(v.tag, v.raw)
	if err != nil {
		return zero, false
	}
	t, ok := val.(T)
	return t, ok
}

// indexCells walks a data span's "[name,tagchar,value];" entries, capturing
// each one's name/tag/raw-payload span without decoding the payload or
// copying s. It mirrors codec/envelope's parseCellEntry up to (but not
// past) the point where that function calls buildCell.
func indexCells(s []byte) ([]CellView, error) {
	var out []CellView
	pos := 0
	for pos < len(s) {
		v, newPos, err := indexOneCell(s, pos)
		if err != nil {
			return out, err
		}
		out = append(out, v)
		if newPos <= pos {
			break
		}
		pos = newPos
	}
	return out, nil
}

func indexOneCell(s []byte, pos int) (CellView, int, error) {
	if pos >= len(s) || s[pos] != '[' {
		return CellView{}, pos, fmt.Errorf("view: expected '[' at offset %d: %w", pos, cell.ErrMalformedCell)
	}
	pos++

	rawName, pos, err := scanEscaped(s, pos, ",")
	if err != nil {
		return CellView{}, len(s), fmt.Errorf("view: %w", cell.ErrMalformedCell)
	}
	name := unescapeName(rawName)

	if pos >= len(s) || s[pos] != ',' {
		return CellView{}, len(s), fmt.Errorf("view: missing tag separator for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++

	if pos >= len(s) {
		return CellView{}, len(s), fmt.Errorf("view: truncated cell %q: %w", name, cell.ErrMalformedCell)
	}
	tagChar := s[pos]
	pos++

	if pos >= len(s) || s[pos] != ',' {
		return CellView{}, len(s), fmt.Errorf("view: missing value separator for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++

	tag, ok := cell.TagFromWireChar(tagChar)
	if !ok {
		return CellView{}, len(s), fmt.Errorf("view: invalid wire tag %q for %q: %w", tagChar, name, cell.ErrInvalidTag)
	}

	var raw []byte
	if pos < len(s) && s[pos] == '{' {
		block, newPos, err := scanBraceBlock(s, pos)
		if err != nil {
			return CellView{}, len(s), fmt.Errorf("view: unterminated nested value for %q: %w", name, cell.ErrMalformedCell)
		}
		raw, pos = unwrapOnce(block), newPos
	} else {
		val, newPos, err := scanEscaped(s, pos, "]")
		if err != nil {
			return CellView{}, len(s), fmt.Errorf("view: unterminated value for %q: %w", name, cell.ErrMalformedCell)
		}
		raw, pos = val, newPos
	}

	if pos >= len(s) || s[pos] != ']' {
		return CellView{}, len(s), fmt.Errorf("view: missing ']' for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++
	if pos >= len(s) || s[pos] != ';' {
		return CellView{}, len(s), fmt.Errorf("view: missing ';' for %q: %w", name, cell.ErrMalformedCell)
	}
	pos++

	return CellView{name: name, tag: tag, raw: raw}, pos, nil
}

// --- low-level scanners, mirroring codec/envelope's unexported ones but
// operating on []byte so indexing never copies the buffer it's given. ---

func scanEscaped(s []byte, pos int, stops string) (raw []byte, newPos int, err error) {
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
	return nil, pos, fmt.Errorf("view: unterminated field: %w", cell.ErrMalformedEnvelope)
}

func scanBraceBlock(s []byte, pos int) (block []byte, newPos int, err error) {
	if pos >= len(s) || s[pos] != '{' {
		return nil, pos, fmt.Errorf("view: expected '{' at offset %d: %w", pos, cell.ErrMalformedEnvelope)
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
	return nil, pos, fmt.Errorf("view: unterminated '{' block: %w", cell.ErrMalformedEnvelope)
}

func unwrapOnce(block []byte) []byte {
	if len(block) < 2 {
		return block
	}
	return block[1 : len(block)-1]
}

// unescapeName resolves backslash escapes into a new string. This is the
// one necessary allocation per cell name — names are short, and a
// CellView needs to hold its key as a comparable string regardless.
func unescapeName(s []byte) string {
	if bytes.IndexByte(s, '\\') < 0 {
		return string(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte(s[i+1])
		i++
	}
	return b.String()
}
