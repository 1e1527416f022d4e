package binary

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/internal/cyclectx"
	"github.com/joshuapare/valuecore/store"
)

// Encode serializes a store to the compact binary wire format (§4.4,
// §6.2): a u32-LE count followed by that many cell encodings. s itself is
// on the cycle context from the start, so a nested reference back to it
// encodes as an empty container (§3.3 S3).
func Encode(s *store.Store) []byte {
	ctx := cyclectx.New()
	_, leave := ctx.Enter(s)
	defer leave()
	return encodeStore(s, ctx)
}

// EncodeCell serializes a single cell using its own fresh cycle context.
// Used when a caller wants to frame one cell at a time (e.g. the textual
// envelope codec's header-only/lazy modes never call this; it exists for
// symmetry with DecodeCell and for direct unit testing of the per-cell
// layout).
func EncodeCell(c *cell.Cell) []byte {
	return encodeCell(c, cyclectx.New())
}

func encodeStore(s *store.Store, ctx *cyclectx.Context) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(s.Size()))
	s.ForEach(func(_ string, c *cell.Cell) bool {
		out = append(out, encodeCell(c, ctx)...)
		return true
	})
	return out
}

func encodeContainer(con cell.Container, ctx *cyclectx.Context) []byte {
	if con == nil {
		return u32le(0)
	}
	already, leave := ctx.Enter(con)
	defer leave()
	if already {
		// §3.3 S3: re-entering a store already on the encoding stack
		// degrades to an empty container instead of failing.
		return u32le(0)
	}

	body := make([]byte, 4)
	binary.LittleEndian.PutUint32(body, uint32(con.Len()))
	con.ForEach(func(_ string, c *cell.Cell) bool {
		body = append(body, encodeCell(c, ctx)...)
		return true
	})

	out := u32le(uint32(len(body)))
	return append(out, body...)
}

func encodeCell(c *cell.Cell, ctx *cyclectx.Context) []byte {
	name := []byte(c.Name())
	out := u32le(uint32(len(name)))
	out = append(out, name...)
	out = append(out, byte(c.Tag()))

	switch c.Tag() {
	case cell.Null:
		// no payload
	case cell.Bool:
		v, _ := c.GetBool()
		if v {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	case cell.Short:
		v, _ := c.GetShort()
		out = appendU16(out, uint16(v))
	case cell.UShort:
		v, _ := c.GetUShort()
		out = appendU16(out, v)
	case cell.Int:
		v, _ := c.GetInt()
		out = appendU32(out, uint32(v))
	case cell.UInt:
		v, _ := c.GetUInt()
		out = appendU32(out, v)
	case cell.Long:
		v, _ := c.GetLong()
		out = appendU64(out, uint64(v))
	case cell.ULong:
		v, _ := c.GetULong()
		out = appendU64(out, v)
	case cell.Float:
		v, _ := c.GetFloat()
		out = appendU32(out, math.Float32bits(v))
	case cell.Double:
		v, _ := c.GetDouble()
		out = appendU64(out, math.Float64bits(v))
	case cell.String:
		v, _ := c.GetString()
		out = append(out, u32le(uint32(len(v)))...)
		out = append(out, v...)
	case cell.Bytes:
		v, _ := c.GetBytes()
		out = append(out, u32le(uint32(len(v)))...)
		out = append(out, v...)
	case cell.Container:
		con, _ := c.GetContainer()
		out = append(out, encodeContainer(con, ctx)...)
	case cell.Array:
		arr, _ := c.GetArray()
		out = append(out, u32le(uint32(len(arr)))...)
		for _, e := range arr {
			out = append(out, encodeCell(e, ctx)...)
		}
	}
	return out
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func appendU16(b []byte, v uint16) []byte {
	t := make([]byte, 2)
	binary.LittleEndian.PutUint16(t, v)
	return append(b, t...)
}

func appendU32(b []byte, v uint32) []byte {
	return append(b, u32le(v)...)
}

func appendU64(b []byte, v uint64) []byte {
	t := make([]byte, 8)
	binary.LittleEndian.PutUint64(t, v)
	return append(b, t...)
}

// Decode parses the binary wire format back into a store. Per §7, the
// binary codec offers no basic guarantee: any truncation or invalid tag
// fails the whole decode.
func Decode(b []byte) (*store.Store, error) {
	s, _, err := decodeStore(b)
	return s, err
}

// DecodeCell parses a single cell encoding and returns the number of
// bytes consumed.
func DecodeCell(b []byte) (*cell.Cell, int, error) {
	return decodeCell(b)
}

func decodeStore(b []byte) (*store.Store, int, error) {
	count, ok := readU32(b, 0)
	if !ok {
		return nil, 0, fmt.Errorf("binary: store count: %w", cell.ErrTruncatedBuffer)
	}
	off := 4
	s := store.New()
	for i := uint32(0); i < count; i++ {
		if off > len(b) {
			return nil, off, fmt.Errorf("binary: cell %d of %d: %w", i, count, cell.ErrTruncatedBuffer)
		}
		c, n, err := decodeCell(b[off:])
		if err != nil {
			return nil, off, fmt.Errorf("binary: cell %d of %d: %w", i, count, err)
		}
		s.AddCell(c)
		off += n
	}
	return s, off, nil
}

func decodeCell(b []byte) (*cell.Cell, int, error) {
	nameLen, ok := readU32(b, 0)
	if !ok {
		return nil, 0, fmt.Errorf("binary: name length: %w", cell.ErrTruncatedBuffer)
	}
	off := 4
	name, ok := sliceAt(b, off, int(nameLen))
	if !ok {
		return nil, 0, fmt.Errorf("binary: name bytes: %w", cell.ErrTruncatedBuffer)
	}
	off += int(nameLen)

	if off >= len(b) {
		return nil, 0, fmt.Errorf("binary: tag byte: %w", cell.ErrTruncatedBuffer)
	}
	tagByte := b[off]
	off++
	tg, err := cell.TagFromCode(tagByte)
	if err != nil {
		return nil, 0, err
	}

	nameStr := string(name)

	switch tg {
	case cell.Null:
		return cell.NewNull(nameStr), off, nil
	case cell.Bool:
		v, ok := sliceAt(b, off, 1)
		if !ok {
			return nil, 0, fmt.Errorf("binary: bool payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewBool(nameStr, v[0] != 0), off + 1, nil
	case cell.Short:
		v, ok := readU16(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: short payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewShort(nameStr, int16(v)), off + 2, nil
	case cell.UShort:
		v, ok := readU16(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: ushort payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewUShort(nameStr, v), off + 2, nil
	case cell.Int:
		v, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: int payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewInt(nameStr, int32(v)), off + 4, nil
	case cell.UInt:
		v, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: uint payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewUInt(nameStr, v), off + 4, nil
	case cell.Long:
		v, ok := readU64(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: long payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewLong(nameStr, int64(v)), off + 8, nil
	case cell.ULong:
		v, ok := readU64(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: ulong payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewULong(nameStr, v), off + 8, nil
	case cell.Float:
		v, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: float payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewFloat(nameStr, math.Float32frombits(v)), off + 4, nil
	case cell.Double:
		v, ok := readU64(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: double payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewDouble(nameStr, math.Float64frombits(v)), off + 8, nil
	case cell.String:
		n, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: string length: %w", cell.ErrTruncatedBuffer)
		}
		data, ok := sliceAt(b, off+4, int(n))
		if !ok {
			return nil, 0, fmt.Errorf("binary: string bytes: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewString(nameStr, string(data)), off + 4 + int(n), nil
	case cell.Bytes:
		n, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: bytes length: %w", cell.ErrTruncatedBuffer)
		}
		data, ok := sliceAt(b, off+4, int(n))
		if !ok {
			return nil, 0, fmt.Errorf("binary: bytes payload: %w", cell.ErrTruncatedBuffer)
		}
		return cell.NewBytes(nameStr, data), off + 4 + int(n), nil
	case cell.Container:
		innerLen, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: container length: %w", cell.ErrTruncatedBuffer)
		}
		inner, ok := sliceAt(b, off+4, int(innerLen))
		if !ok {
			return nil, 0, fmt.Errorf("binary: container payload: %w", cell.ErrTruncatedBuffer)
		}
		if innerLen == 0 {
			return cell.NewContainer(nameStr, store.New()), off + 4, nil
		}
		nested, _, err := decodeStore(inner)
		if err != nil {
			return nil, 0, fmt.Errorf("binary: nested container: %w", err)
		}
		return cell.NewContainer(nameStr, nested), off + 4 + int(innerLen), nil
	case cell.Array:
		n, ok := readU32(b, off)
		if !ok {
			return nil, 0, fmt.Errorf("binary: array count: %w", cell.ErrTruncatedBuffer)
		}
		cursor := off + 4
		elems := make([]*cell.Cell, 0, n)
		for i := uint32(0); i < n; i++ {
			if cursor > len(b) {
				return nil, 0, fmt.Errorf("binary: array element %d: %w", i, cell.ErrTruncatedBuffer)
			}
			e, consumed, err := decodeCell(b[cursor:])
			if err != nil {
				return nil, 0, fmt.Errorf("binary: array element %d: %w", i, err)
			}
			elems = append(elems, e)
			cursor += consumed
		}
		return cell.NewArray(nameStr, elems), cursor, nil
	default:
		// Unreachable: TagFromCode above already rejects codes > 15.
		return nil, 0, fmt.Errorf("binary: %w", cell.ErrInvalidTag)
	}
}

// --- bounds-checked little-endian readers, in the spirit of the
// teacher's internal/buf package. ---

func readU16(b []byte, off int) (uint16, bool) {
	s, ok := sliceAt(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

func readU32(b []byte, off int) (uint32, bool) {
	s, ok := sliceAt(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

func readU64(b []byte, off int) (uint64, bool) {
	s, ok := sliceAt(b, off, 8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(s), true
}

// sliceAt returns b[off:off+n] if it fits within bounds, guarding the
// integer overflow that a naive off+n comparison would miss.
func sliceAt(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end := off + n
	if end < off || end > len(b) { // overflow or out of range
		return nil, false
	}
	return b[off:end], true
}
