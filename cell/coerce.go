package cell

import (
	"math"
	"strconv"
	"strings"
)

// ContainerProjector renders a Container as its JSON projection for use by
// ToString. codec/json registers itself here via SetContainerProjector at
// package init time; this indirection avoids an import cycle (codec/json
// must import cell for the Cell type, so cell cannot import codec/json).
var containerProjector func(Container) string

// SetContainerProjector installs the function ToString uses to render a
// Container payload. Called once, from codec/json's init().
func SetContainerProjector(fn func(Container) string) { containerProjector = fn }

// containerCloner deep-clones a Container payload. store registers itself
// here at init time, for the same import-cycle reason as
// SetContainerProjector above.
var containerCloner func(Container) Container

// SetContainerCloner installs the function Cell.Clone uses to deep-copy a
// Container payload. Called once, from store's init().
func SetContainerCloner(fn func(Container) Container) { containerCloner = fn }

// numView is an internal numeric reading of a cell's payload, used as the
// common intermediate representation for every coercion.
type numView struct {
	i          int64
	u          uint64
	f          float64
	isFloat    bool
	isUnsigned bool
}

func (c *Cell) numView() (numView, bool) {
	switch c.tag {
	case Bool:
		v, _ := c.GetBool()
		var i int64
		if v {
			i = 1
		}
		return numView{i: i, u: uint64(i), f: float64(i)}, true
	case Short:
		v, _ := c.GetShort()
		return numView{i: int64(v), u: uint64(int64(v)), f: float64(v)}, true
	case UShort:
		v, _ := c.GetUShort()
		return numView{i: int64(v), u: uint64(v), f: float64(v)}, true
	case Int:
		v, _ := c.GetInt()
		return numView{i: int64(v), u: uint64(int64(v)), f: float64(v)}, true
	case UInt:
		v, _ := c.GetUInt()
		return numView{i: int64(v), u: uint64(v), f: float64(v)}, true
	case Long:
		v, _ := c.GetLong()
		return numView{i: v, u: uint64(v), f: float64(v)}, true
	case ULong:
		v, _ := c.GetULong()
		return numView{i: int64(v), u: v, f: float64(v), isUnsigned: true}, true
	case Float:
		v, _ := c.GetFloat()
		return numView{f: float64(v), isFloat: true}, true
	case Double:
		v, _ := c.GetDouble()
		return numView{f: v, isFloat: true}, true
	case String:
		s, _ := c.GetString()
		if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
			return numView{i: iv, u: uint64(iv), f: float64(iv)}, true
		}
		if uv, err := strconv.ParseUint(s, 10, 64); err == nil {
			return numView{i: int64(uv), u: uv, f: float64(uv), isUnsigned: true}, true
		}
		return numView{}, false
	default:
		return numView{}, false
	}
}

func saturateSigned(nv numView, lo, hi int64) (int64, bool) {
	switch {
	case nv.isFloat:
		f := nv.f
		if f != f { // NaN
			return 0, true
		}
		if f > float64(hi) {
			return hi, true
		}
		if f < float64(lo) {
			return lo, true
		}
		return int64(f), false
	case nv.isUnsigned:
		if nv.u > uint64(hi) {
			return hi, true
		}
		return int64(nv.u), false
	default:
		if nv.i > hi {
			return hi, true
		}
		if nv.i < lo {
			return lo, true
		}
		return nv.i, false
	}
}

func saturateUnsigned(nv numView, hi uint64) (uint64, bool) {
	switch {
	case nv.isFloat:
		f := nv.f
		if f != f || f < 0 {
			return 0, true
		}
		if f > float64(hi) {
			return hi, true
		}
		return uint64(f), false
	case nv.isUnsigned:
		if nv.u > hi {
			return hi, true
		}
		return nv.u, false
	default:
		if nv.i < 0 {
			return 0, true
		}
		if uint64(nv.i) > hi {
			return hi, true
		}
		return uint64(nv.i), false
	}
}

// ToBool coerces per §4.1: numeric zero/non-zero, bool identity,
// string case-insensitive "true"/"1"/"t" / "false"/"0"/"f"/"". The second
// return value is false ("error flag" in spec terms) for an unrecognized
// string and for a non-numeric source (null, bytes, container, array); in
// those cases the result is false.
func (c *Cell) ToBool() (bool, bool) {
	switch c.tag {
	case Bool:
		v, _ := c.GetBool()
		return v, true
	case String:
		s, _ := c.GetString()
		switch strings.ToLower(s) {
		case "true", "1", "t":
			return true, true
		case "false", "0", "f", "":
			return false, true
		default:
			return false, false
		}
	default:
		nv, ok := c.numView()
		if !ok {
			return false, false
		}
		if nv.isFloat {
			return nv.f != 0, true
		}
		if nv.isUnsigned {
			return nv.u != 0, true
		}
		return nv.i != 0, true
	}
}

// ToShort coerces to int16 with saturation; the second return value is
// false on overflow or on an unparseable/non-numeric source (overflow
// flag / CoercionFailure, per §4.1).
func (c *Cell) ToShort() (int16, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	v, of := saturateSigned(nv, math.MinInt16, math.MaxInt16)
	return int16(v), !of
}

func (c *Cell) ToUShort() (uint16, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	v, of := saturateUnsigned(nv, math.MaxUint16)
	return uint16(v), !of
}

func (c *Cell) ToInt() (int32, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	v, of := saturateSigned(nv, math.MinInt32, math.MaxInt32)
	return int32(v), !of
}

func (c *Cell) ToUInt() (uint32, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	v, of := saturateUnsigned(nv, math.MaxUint32)
	return uint32(v), !of
}

func (c *Cell) ToLong() (int64, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	v, of := saturateSigned(nv, math.MinInt64, math.MaxInt64)
	return v, !of
}

func (c *Cell) ToULong() (uint64, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	v, of := saturateUnsigned(nv, math.MaxUint64)
	return v, !of
}

// ToLLong and ToULLong are identical to ToLong/ToULong: per Invariant T2,
// llong/ullong are never distinct storage from long/ulong in this
// implementation.
func (c *Cell) ToLLong() (int64, bool)   { return c.ToLong() }
func (c *Cell) ToULLong() (uint64, bool) { return c.ToULong() }

func (c *Cell) ToFloat() (float32, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	if nv.isFloat {
		return float32(nv.f), true
	}
	if nv.isUnsigned {
		return float32(nv.u), true
	}
	return float32(nv.i), true
}

func (c *Cell) ToDouble() (float64, bool) {
	nv, ok := c.numView()
	if !ok {
		return 0, false
	}
	if nv.isFloat {
		return nv.f, true
	}
	if nv.isUnsigned {
		return float64(nv.u), true
	}
	return float64(nv.i), true
}

// ToString renders per §4.1: numerics use shortest round-trip decimal
// form, bool "true"/"false", bytes lowercase hex with no separator,
// container its JSON projection, array "[e1,e2,...]".
func (c *Cell) ToString() string {
	switch c.tag {
	case Null:
		return ""
	case Bool:
		v, _ := c.GetBool()
		return strconv.FormatBool(v)
	case Short:
		v, _ := c.GetShort()
		return strconv.FormatInt(int64(v), 10)
	case UShort:
		v, _ := c.GetUShort()
		return strconv.FormatUint(uint64(v), 10)
	case Int:
		v, _ := c.GetInt()
		return strconv.FormatInt(int64(v), 10)
	case UInt:
		v, _ := c.GetUInt()
		return strconv.FormatUint(uint64(v), 10)
	case Long:
		v, _ := c.GetLong()
		return strconv.FormatInt(v, 10)
	case ULong:
		v, _ := c.GetULong()
		return strconv.FormatUint(v, 10)
	case Float:
		v, _ := c.GetFloat()
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case Double:
		v, _ := c.GetDouble()
		return strconv.FormatFloat(v, 'g', -1, 64)
	case String:
		v, _ := c.GetString()
		return v
	case Bytes:
		v, _ := c.GetBytes()
		const hexDigits = "0123456789abcdef"
		out := make([]byte, len(v)*2)
		for i, b := range v {
			out[i*2] = hexDigits[b>>4]
			out[i*2+1] = hexDigits[b&0x0f]
		}
		return string(out)
	case Container:
		v, _ := c.GetContainer()
		if containerProjector == nil || v == nil {
			return "{}"
		}
		return containerProjector(v)
	case Array:
		v, _ := c.GetArray()
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e.ToString())
		}
		b.WriteByte(']')
		return b.String()
	default:
		return ""
	}
}
