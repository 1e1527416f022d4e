package json

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/store"
)

// wireCell is the JSON projection of a single cell (§4.5).
type wireCell struct {
	Name  string `json:"name"`
	Type  uint8  `json:"type"`
	Value any    `json:"value"`
}

func init() {
	cell.SetContainerProjector(func(con cell.Container) string {
		b, err := MarshalContainer(con)
		if err != nil {
			return "[]"
		}
		return string(b)
	})
}

// MarshalStore renders every entry of s as a JSON array of cell
// projections, in insertion order. An array rather than an object, since
// a store may hold duplicate keys that a JSON object can't represent.
func MarshalStore(s *store.Store) ([]byte, error) {
	return MarshalContainer(s)
}

// MarshalContainer is MarshalStore's Container-typed counterpart; it is
// also what cell.ToString calls for a Container-tagged cell (via the
// init-time projector registration above).
func MarshalContainer(con cell.Container) ([]byte, error) {
	return json.Marshal(containerToWireSlice(con))
}

// MarshalCell renders a single cell's JSON projection.
func MarshalCell(c *cell.Cell) ([]byte, error) {
	return json.Marshal(cellToWire(c))
}

func cellToWire(c *cell.Cell) wireCell {
	w := wireCell{Name: c.Name(), Type: uint8(c.Tag())}
	switch c.Tag() {
	case cell.Null:
		w.Value = nil
	case cell.Bool:
		v, _ := c.GetBool()
		w.Value = v
	case cell.Short:
		v, _ := c.GetShort()
		w.Value = v
	case cell.UShort:
		v, _ := c.GetUShort()
		w.Value = v
	case cell.Int:
		v, _ := c.GetInt()
		w.Value = v
	case cell.UInt:
		v, _ := c.GetUInt()
		w.Value = v
	case cell.Long:
		v, _ := c.GetLong()
		w.Value = v
	case cell.ULong:
		v, _ := c.GetULong()
		w.Value = v
	case cell.Float:
		v, _ := c.GetFloat()
		w.Value = v
	case cell.Double:
		v, _ := c.GetDouble()
		w.Value = v
	case cell.String:
		v, _ := c.GetString()
		w.Value = v
	case cell.Bytes:
		v, _ := c.GetBytes()
		w.Value = hex.EncodeToString(v)
	case cell.Container:
		con, _ := c.GetContainer()
		w.Value = containerToWireSlice(con)
	case cell.Array:
		arr, _ := c.GetArray()
		elems := make([]wireCell, len(arr))
		for i, e := range arr {
			elems[i] = cellToWire(e)
		}
		w.Value = elems
	}
	return w
}

func containerToWireSlice(con cell.Container) []wireCell {
	if con == nil {
		return []wireCell{}
	}
	out := make([]wireCell, 0, con.Len())
	con.ForEach(func(_ string, c *cell.Cell) bool {
		out = append(out, cellToWire(c))
		return true
	})
	return out
}

// rawCell mirrors wireCell but keeps Value undecoded until the tag is
// known, since the target Go type depends on it.
type rawCell struct {
	Name  string          `json:"name"`
	Type  uint8           `json:"type"`
	Value json.RawMessage `json:"value"`
}

// UnmarshalStore parses a JSON array of cell projections back into a
// store, in the order given.
func UnmarshalStore(data []byte) (*store.Store, error) {
	var raws []rawCell
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("json: %w: %v", cell.ErrMalformedEnvelope, err)
	}
	s := store.New()
	for _, r := range raws {
		c, err := rawToCell(r)
		if err != nil {
			return nil, err
		}
		s.AddCell(c)
	}
	return s, nil
}

// UnmarshalCell parses a single cell projection.
func UnmarshalCell(data []byte) (*cell.Cell, error) {
	var r rawCell
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("json: %w: %v", cell.ErrMalformedCell, err)
	}
	return rawToCell(r)
}

func rawToCell(r rawCell) (*cell.Cell, error) {
	tag, err := cell.TagFromCode(r.Type)
	if err != nil {
		return nil, err
	}

	unmarshalValue := func(v any) error {
		if err := json.Unmarshal(r.Value, v); err != nil {
			return fmt.Errorf("json: value for %q: %w: %v", r.Name, cell.ErrMalformedCell, err)
		}
		return nil
	}

	switch tag {
	case cell.Null:
		return cell.NewNull(r.Name), nil
	case cell.Bool:
		var v bool
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewBool(r.Name, v), nil
	case cell.Short:
		var v int16
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewShort(r.Name, v), nil
	case cell.UShort:
		var v uint16
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewUShort(r.Name, v), nil
	case cell.Int:
		var v int32
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewInt(r.Name, v), nil
	case cell.UInt:
		var v uint32
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewUInt(r.Name, v), nil
	case cell.Long, cell.LLong:
		var v int64
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewLong(r.Name, v), nil
	case cell.ULong, cell.ULLong:
		var v uint64
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewULong(r.Name, v), nil
	case cell.Float:
		var v float32
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewFloat(r.Name, v), nil
	case cell.Double:
		var v float64
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewDouble(r.Name, v), nil
	case cell.String:
		var v string
		if err := unmarshalValue(&v); err != nil {
			return nil, err
		}
		return cell.NewString(r.Name, v), nil
	case cell.Bytes:
		var hexStr string
		if err := unmarshalValue(&hexStr); err != nil {
			return nil, err
		}
		b, err := hex.DecodeString(hexStr)
		if err != nil {
			return nil, fmt.Errorf("json: invalid hex bytes for %q: %w", r.Name, cell.ErrMalformedCell)
		}
		return cell.NewBytes(r.Name, b), nil
	case cell.Container:
		var raws []rawCell
		if err := unmarshalValue(&raws); err != nil {
			return nil, err
		}
		inner := store.New()
		for _, rc := range raws {
			c, err := rawToCell(rc)
			if err != nil {
				return nil, err
			}
			inner.AddCell(c)
		}
		return cell.NewContainer(r.Name, inner), nil
	case cell.Array:
		var raws []rawCell
		if err := unmarshalValue(&raws); err != nil {
			return nil, err
		}
		elems := make([]*cell.Cell, len(raws))
		for i, rc := range raws {
			c, err := rawToCell(rc)
			if err != nil {
				return nil, err
			}
			elems[i] = c
		}
		return cell.NewArray(r.Name, elems), nil
	default:
		return nil, fmt.Errorf("json: %w", cell.ErrInvalidTag)
	}
}
