package simd

import (
	"fmt"

	"github.com/joshuapare/valuecore/cell"
)

// SumArray reduces an Array cell whose elements are uniformly Float or
// Double, using p. It rejects arrays with mixed or non-numeric element
// tags rather than guessing a coercion.
func SumArray(c *cell.Cell, p Policy) (float64, error) {
	elems, ok := c.GetArray()
	if !ok {
		return 0, fmt.Errorf("simd: %q is not an array cell", c.Name())
	}
	if len(elems) == 0 {
		return 0, nil
	}
	switch elems[0].Tag() {
	case cell.Float:
		vs := make([]float32, 0, len(elems))
		for _, e := range elems {
			v, ok := e.GetFloat()
			if !ok {
				return 0, fmt.Errorf("simd: %q: mixed element tags, want float", c.Name())
			}
			vs = append(vs, v)
		}
		return float64(p.SumFloats(vs)), nil
	case cell.Double:
		vs := make([]float64, 0, len(elems))
		for _, e := range elems {
			v, ok := e.GetDouble()
			if !ok {
				return 0, fmt.Errorf("simd: %q: mixed element tags, want double", c.Name())
			}
			vs = append(vs, v)
		}
		return p.SumDoubles(vs), nil
	default:
		return 0, fmt.Errorf("simd: %q: element tag %s has no accelerated reduction", c.Name(), elems[0].Tag())
	}
}
