package view

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/joshuapare/valuecore/cell"
)

// decodeScalar decodes raw according to tag, returning the concrete Go
// value as an any. Container and Array are rejected here; callers use
// CellView.Container / CellView.Elements for those instead. raw is a
// subslice of the originating Buffer; decodeScalar is the only place that
// turns it into an owned Go value.
func decodeScalar(tag cell.Tag, raw []byte) (any, error) {
	switch tag {
	case cell.Null:
		return nil, nil
	case cell.Bool:
		v, ok := cell.NewString("", unescapeName(raw)).ToBool()
		if !ok {
			return nil, fmt.Errorf("view: invalid bool %q: %w", raw, cell.ErrMalformedCell)
		}
		return v, nil
	case cell.Short:
		n, err := strconv.ParseInt(unescapeName(raw), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("view: invalid short %q: %w", raw, cell.ErrMalformedCell)
		}
		return int16(n), nil
	case cell.UShort:
		n, err := strconv.ParseUint(unescapeName(raw), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("view: invalid ushort %q: %w", raw, cell.ErrMalformedCell)
		}
		return uint16(n), nil
	case cell.Int:
		n, err := strconv.ParseInt(unescapeName(raw), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("view: invalid int %q: %w", raw, cell.ErrMalformedCell)
		}
		return int32(n), nil
	case cell.UInt:
		n, err := strconv.ParseUint(unescapeName(raw), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("view: invalid uint %q: %w", raw, cell.ErrMalformedCell)
		}
		return uint32(n), nil
	case cell.Long, cell.LLong:
		n, err := strconv.ParseInt(unescapeName(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("view: invalid long %q: %w", raw, cell.ErrMalformedCell)
		}
		return n, nil
	case cell.ULong, cell.ULLong:
		n, err := strconv.ParseUint(unescapeName(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("view: invalid ulong %q: %w", raw, cell.ErrMalformedCell)
		}
		return n, nil
	case cell.Float:
		f, err := strconv.ParseFloat(unescapeName(raw), 32)
		if err != nil {
			return nil, fmt.Errorf("view: invalid float %q: %w", raw, cell.ErrMalformedCell)
		}
		return float32(f), nil
	case cell.Double:
		f, err := strconv.ParseFloat(unescapeName(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("view: invalid double %q: %w", raw, cell.ErrMalformedCell)
		}
		return f, nil
	case cell.String:
		return unescapeString(raw), nil
	case cell.Bytes:
		b, err := hex.DecodeString(unescapeName(raw))
		if err != nil {
			return nil, fmt.Errorf("view: invalid hex bytes: %w", cell.ErrMalformedCell)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("view: tag %s has no scalar decode: %w", tag, cell.ErrInvalidTag)
	}
}

// unescapeString mirrors codec/envelope's string unescape plus its legacy
// non-UTF-8 tolerance; duplicated here rather than exported from envelope
// to keep the two packages' decode paths independent.
func unescapeString(s []byte) string {
	return decodeLegacyString(unescapeName(s))
}
