package envelope

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/internal/cyclectx"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
)

// Encode renders a header and store as a textual envelope (§4.3, §6.1).
// Encoding always emits the canonical single-brace grammar; the
// double-brace legacy form is a decode-only tolerance (see legacy.go).
// s itself is on the cycle context from the start, so a nested reference
// back to it encodes as an empty nested envelope (§3.3 S3).
func Encode(h messaging.Header, s *store.Store) string {
	ctx := cyclectx.New()
	_, leave := ctx.Enter(s)
	defer leave()
	return encodeBody(h, s, ctx)
}

func encodeBody(h messaging.Header, s *store.Store, ctx *cyclectx.Context) string {
	var b strings.Builder
	b.WriteString(headerMarker)
	b.WriteByte('{')
	b.WriteString(encodeHeaderFields(h))
	b.WriteByte('}')
	b.WriteString(dataMarker)
	b.WriteByte('{')
	b.WriteString(encodeCellList(s, ctx))
	b.WriteByte('}')
	b.WriteString(trailer)
	return b.String()
}

func encodeHeaderFields(h messaging.Header) string {
	values := map[string]string{
		"source":       h.SourceID,
		"source_sub":   h.SourceSubID,
		"target":       h.TargetID,
		"target_sub":   h.TargetSubID,
		"message_type": h.MessageType,
		"version":      h.Version,
	}
	var b strings.Builder
	for _, key := range headerFieldOrder {
		b.WriteString(key)
		b.WriteString("=[")
		b.WriteString(escapeString(values[key]))
		b.WriteString("];")
	}
	return b.String()
}

func encodeCellList(s *store.Store, ctx *cyclectx.Context) string {
	var b strings.Builder
	s.ForEach(func(_ string, c *cell.Cell) bool {
		b.WriteString(encodeCellEntry(c, ctx))
		return true
	})
	return b.String()
}

// EncodeCell renders a single cell entry, using its own fresh cycle
// context. Mirrors codec/binary.EncodeCell for symmetry and direct
// per-cell unit testing.
func EncodeCell(c *cell.Cell) string {
	return encodeCellEntry(c, cyclectx.New())
}

func encodeCellEntry(c *cell.Cell, ctx *cyclectx.Context) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(escapeString(c.Name()))
	b.WriteByte(',')
	b.WriteByte(c.Tag().WireChar())
	b.WriteByte(',')
	b.WriteString(encodeCellValue(c, ctx))
	b.WriteByte(']')
	b.WriteByte(';')
	return b.String()
}

func encodeCellValue(c *cell.Cell, ctx *cyclectx.Context) string {
	switch c.Tag() {
	case cell.Null:
		return ""
	case cell.Bool:
		v, _ := c.GetBool()
		return strconv.FormatBool(v)
	case cell.Short:
		v, _ := c.GetShort()
		return strconv.FormatInt(int64(v), 10)
	case cell.UShort:
		v, _ := c.GetUShort()
		return strconv.FormatUint(uint64(v), 10)
	case cell.Int:
		v, _ := c.GetInt()
		return strconv.FormatInt(int64(v), 10)
	case cell.UInt:
		v, _ := c.GetUInt()
		return strconv.FormatUint(uint64(v), 10)
	case cell.Long:
		v, _ := c.GetLong()
		return strconv.FormatInt(v, 10)
	case cell.ULong:
		v, _ := c.GetULong()
		return strconv.FormatUint(v, 10)
	case cell.Float:
		v, _ := c.GetFloat()
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case cell.Double:
		v, _ := c.GetDouble()
		return strconv.FormatFloat(v, 'g', -1, 64)
	case cell.String:
		v, _ := c.GetString()
		return escapeString(v)
	case cell.Bytes:
		v, _ := c.GetBytes()
		return hex.EncodeToString(v)
	case cell.Container:
		con, _ := c.GetContainer()
		return encodeContainerValue(con, ctx)
	case cell.Array:
		arr, _ := c.GetArray()
		return encodeArrayValue(arr, ctx)
	default:
		return ""
	}
}

// encodeContainerValue renders a nested container as a fully nested
// envelope wrapped in one extra pair of braces:
// "{@header={...};@data={...};}". Nested containers don't carry their own
// routing metadata, so an empty messaging.Header is used.
func encodeContainerValue(con cell.Container, ctx *cyclectx.Context) string {
	if con == nil {
		return "{" + encodeBody(messaging.Header{}, store.New(), ctx) + "}"
	}
	already, leave := ctx.Enter(con)
	defer leave()
	if already {
		// §3.3 S3: re-entering a container already on the encoding
		// stack degrades to an empty nested envelope.
		return "{" + encodeBody(messaging.Header{}, store.New(), ctx) + "}"
	}
	st, ok := con.(*store.Store)
	if !ok {
		st = store.New()
		con.ForEach(func(_ string, c *cell.Cell) bool {
			st.AddCell(c)
			return true
		})
	}
	return "{" + encodeBody(messaging.Header{}, st, ctx) + "}"
}

// encodeArrayValue renders an array as a brace-wrapped cell list, with no
// header: "{<cell-list>}".
func encodeArrayValue(arr []*cell.Cell, ctx *cyclectx.Context) string {
	var b strings.Builder
	b.WriteByte('{')
	for _, e := range arr {
		b.WriteString(encodeCellEntry(e, ctx))
	}
	b.WriteByte('}')
	return b.String()
}
