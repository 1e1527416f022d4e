package xml

import (
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/store"
)

// wireValue is the XML projection of a single cell. Scalar cells carry
// their value as character data (Text); container and array cells carry
// it as nested <value> children instead, leaving Text empty.
type wireValue struct {
	XMLName  xml.Name    `xml:"value"`
	Name     string      `xml:"name,attr"`
	Type     string      `xml:"type,attr"`
	Text     string      `xml:",chardata"`
	Children []wireValue `xml:"value"`
}

// wireStore wraps a store's entries under a single <store> root element.
type wireStore struct {
	XMLName xml.Name    `xml:"store"`
	Entries []wireValue `xml:"value"`
}

// MarshalStore renders every entry of s as a <store> document, in
// insertion order.
func MarshalStore(s *store.Store) ([]byte, error) {
	ws := wireStore{Entries: containerToWireSlice(s)}
	return xml.MarshalIndent(ws, "", "  ")
}

// MarshalCell renders a single cell's XML projection.
func MarshalCell(c *cell.Cell) ([]byte, error) {
	return xml.MarshalIndent(cellToWire(c), "", "  ")
}

func cellToWire(c *cell.Cell) wireValue {
	w := wireValue{Name: c.Name(), Type: c.Tag().String()}
	switch c.Tag() {
	case cell.Container:
		con, _ := c.GetContainer()
		w.Children = containerToWireSlice(con)
	case cell.Array:
		arr, _ := c.GetArray()
		w.Children = make([]wireValue, len(arr))
		for i, e := range arr {
			w.Children[i] = cellToWire(e)
		}
	default:
		// Every other tag's textual form is exactly what Cell.ToString
		// already renders: decimal for numerics, "true"/"false" for
		// bool, lowercase hex for bytes, the raw text for string.
		w.Text = c.ToString()
	}
	return w
}

func containerToWireSlice(con cell.Container) []wireValue {
	if con == nil {
		return nil
	}
	out := make([]wireValue, 0, con.Len())
	con.ForEach(func(_ string, c *cell.Cell) bool {
		out = append(out, cellToWire(c))
		return true
	})
	return out
}

// UnmarshalStore parses a <store> document back into a store, in document
// order.
func UnmarshalStore(data []byte) (*store.Store, error) {
	var ws wireStore
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("xml: %w: %v", cell.ErrMalformedEnvelope, err)
	}
	s := store.New()
	for _, wv := range ws.Entries {
		c, err := wireToCell(wv)
		if err != nil {
			return nil, err
		}
		s.AddCell(c)
	}
	return s, nil
}

// UnmarshalCell parses a single <value> element.
func UnmarshalCell(data []byte) (*cell.Cell, error) {
	var wv wireValue
	if err := xml.Unmarshal(data, &wv); err != nil {
		return nil, fmt.Errorf("xml: %w: %v", cell.ErrMalformedCell, err)
	}
	return wireToCell(wv)
}

func wireToCell(wv wireValue) (*cell.Cell, error) {
	tag, ok := tagFromName(wv.Type)
	if !ok {
		return nil, fmt.Errorf("xml: unknown type %q for %q: %w", wv.Type, wv.Name, cell.ErrInvalidTag)
	}

	switch tag {
	case cell.Null:
		return cell.NewNull(wv.Name), nil
	case cell.Bool:
		v, ok := cell.NewString("", wv.Text).ToBool()
		if !ok {
			return nil, fmt.Errorf("xml: invalid bool %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewBool(wv.Name, v), nil
	case cell.Short:
		n, err := strconv.ParseInt(wv.Text, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid short %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewShort(wv.Name, int16(n)), nil
	case cell.UShort:
		n, err := strconv.ParseUint(wv.Text, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid ushort %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewUShort(wv.Name, uint16(n)), nil
	case cell.Int:
		n, err := strconv.ParseInt(wv.Text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid int %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewInt(wv.Name, int32(n)), nil
	case cell.UInt:
		n, err := strconv.ParseUint(wv.Text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid uint %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewUInt(wv.Name, uint32(n)), nil
	case cell.Long, cell.LLong:
		n, err := strconv.ParseInt(wv.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid long %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewLong(wv.Name, n), nil
	case cell.ULong, cell.ULLong:
		n, err := strconv.ParseUint(wv.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid ulong %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewULong(wv.Name, n), nil
	case cell.Float:
		f, err := strconv.ParseFloat(wv.Text, 32)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid float %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewFloat(wv.Name, float32(f)), nil
	case cell.Double:
		f, err := strconv.ParseFloat(wv.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid double %q for %q: %w", wv.Text, wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewDouble(wv.Name, f), nil
	case cell.String:
		return cell.NewString(wv.Name, wv.Text), nil
	case cell.Bytes:
		b, err := hex.DecodeString(wv.Text)
		if err != nil {
			return nil, fmt.Errorf("xml: invalid hex bytes for %q: %w", wv.Name, cell.ErrMalformedCell)
		}
		return cell.NewBytes(wv.Name, b), nil
	case cell.Container:
		inner := store.New()
		for _, child := range wv.Children {
			c, err := wireToCell(child)
			if err != nil {
				return nil, err
			}
			inner.AddCell(c)
		}
		return cell.NewContainer(wv.Name, inner), nil
	case cell.Array:
		elems := make([]*cell.Cell, len(wv.Children))
		for i, child := range wv.Children {
			c, err := wireToCell(child)
			if err != nil {
				return nil, err
			}
			elems[i] = c
		}
		return cell.NewArray(wv.Name, elems), nil
	default:
		return nil, fmt.Errorf("xml: %w", cell.ErrInvalidTag)
	}
}

func tagFromName(name string) (cell.Tag, bool) {
	switch name {
	case "null":
		return cell.Null, true
	case "bool":
		return cell.Bool, true
	case "short":
		return cell.Short, true
	case "ushort":
		return cell.UShort, true
	case "int":
		return cell.Int, true
	case "uint":
		return cell.UInt, true
	case "long":
		return cell.Long, true
	case "ulong":
		return cell.ULong, true
	case "llong":
		return cell.LLong, true
	case "ullong":
		return cell.ULLong, true
	case "float":
		return cell.Float, true
	case "double":
		return cell.Double, true
	case "string":
		return cell.String, true
	case "bytes":
		return cell.Bytes, true
	case "container":
		return cell.Container, true
	case "array":
		return cell.Array, true
	default:
		return cell.Null, false
	}
}
