package cell

import "sync/atomic"

// Container is the minimal read/iterate surface a nested value store must
// expose to live inside a Cell's Container-tagged payload (§3.1 tag 14).
//
// It is an interface rather than a concrete *store.Store to avoid a
// cell<->store import cycle: store.Store depends on cell.Cell for its
// entries, so cell cannot also depend on store. store.Store implements
// this interface; decoders hand back a Container built from a concrete
// store.Store. See the cell section of DESIGN.md for the trade-off.
type Container interface {
	// Len reports the number of entries.
	Len() int
	// Get returns the first cell for key, or (nil, false) if absent.
	Get(key string) (*Cell, bool)
	// GetAll returns every cell for key in insertion order.
	GetAll(key string) []*Cell
	// ForEach visits entries in insertion order; stops early if fn
	// returns false.
	ForEach(fn func(key string, c *Cell) bool)
	// Keys returns the distinct keys in first-occurrence order.
	Keys() []string
}

// AccessStats is a point-in-time snapshot of a Cell's instrumentation
// counters. The counters themselves are monotonic and exist purely for
// observability (§3.2); they never affect equality or serialization.
type AccessStats struct {
	Reads  uint64
	Writes uint64
}

// Cell is a named, tagged sum holding exactly one of the 16 payload
// variants. name is immutable after construction; the payload and tag
// always change together (Invariant V1) via set, never independently.
type Cell struct {
	name    string
	tag     Tag
	payload any

	reads  atomic.Uint64
	writes atomic.Uint64
}

// newCell is the single choke point every constructor and setter funnels
// through, so tag/payload always change atomically and writes is
// accounted consistently.
func newCell(name string, tag Tag, payload any) *Cell {
	c := &Cell{name: name, tag: CollapseAlias(tag), payload: payload}
	c.writes.Add(1)
	return c
}

func (c *Cell) set(tag Tag, payload any) {
	c.tag = CollapseAlias(tag)
	c.payload = payload
	c.writes.Add(1)
}

// Name returns the cell's key. Empty string is a valid, permitted name.
func (c *Cell) Name() string { return c.name }

// Tag returns the logical tag, already folded through Invariant T2.
func (c *Cell) Tag() Tag {
	c.reads.Add(1)
	return c.tag
}

// AccessStats returns a snapshot of the read/write instrumentation
// counters. Reads taken by Tag/Get*/coercion accessors count as reads;
// constructors and setters count as writes.
func (c *Cell) AccessStats() AccessStats {
	return AccessStats{Reads: c.reads.Load(), Writes: c.writes.Load()}
}

// --- Typed constructors (tag inferred from the Go type of value). ---

func NewNull(name string) *Cell              { return newCell(name, Null, nil) }
func NewBool(name string, v bool) *Cell       { return newCell(name, Bool, v) }
func NewShort(name string, v int16) *Cell     { return newCell(name, Short, v) }
func NewUShort(name string, v uint16) *Cell   { return newCell(name, UShort, v) }
func NewInt(name string, v int32) *Cell       { return newCell(name, Int, v) }
func NewUInt(name string, v uint32) *Cell     { return newCell(name, UInt, v) }
func NewLong(name string, v int64) *Cell      { return newCell(name, Long, v) }
func NewULong(name string, v uint64) *Cell    { return newCell(name, ULong, v) }
func NewLLong(name string, v int64) *Cell     { return newCell(name, LLong, v) }
func NewULLong(name string, v uint64) *Cell   { return newCell(name, ULLong, v) }
func NewFloat(name string, v float32) *Cell   { return newCell(name, Float, v) }
func NewDouble(name string, v float64) *Cell  { return newCell(name, Double, v) }
func NewString(name string, v string) *Cell   { return newCell(name, String, v) }
func NewBytes(name string, v []byte) *Cell    { return newCell(name, Bytes, append([]byte(nil), v...)) }
func NewContainer(name string, v Container) *Cell { return newCell(name, Container, v) }
func NewArray(name string, v []*Cell) *Cell   { return newCell(name, Array, append([]*Cell(nil), v...)) }

// --- Typed getters: ok is false ("absent") whenever the stored tag
// doesn't match the requested type. They never panic and never mutate.

func (c *Cell) GetBool() (bool, bool)       { v, ok := c.payload.(bool); c.reads.Add(1); return v, ok && c.tag == Bool }
func (c *Cell) GetShort() (int16, bool)     { v, ok := c.payload.(int16); c.reads.Add(1); return v, ok && c.tag == Short }
func (c *Cell) GetUShort() (uint16, bool)   { v, ok := c.payload.(uint16); c.reads.Add(1); return v, ok && c.tag == UShort }
func (c *Cell) GetInt() (int32, bool)       { v, ok := c.payload.(int32); c.reads.Add(1); return v, ok && c.tag == Int }
func (c *Cell) GetUInt() (uint32, bool)     { v, ok := c.payload.(uint32); c.reads.Add(1); return v, ok && c.tag == UInt }
func (c *Cell) GetLong() (int64, bool)      { v, ok := c.payload.(int64); c.reads.Add(1); return v, ok && c.tag == Long }
func (c *Cell) GetULong() (uint64, bool)    { v, ok := c.payload.(uint64); c.reads.Add(1); return v, ok && c.tag == ULong }
func (c *Cell) GetFloat() (float32, bool)   { v, ok := c.payload.(float32); c.reads.Add(1); return v, ok && c.tag == Float }
func (c *Cell) GetDouble() (float64, bool)  { v, ok := c.payload.(float64); c.reads.Add(1); return v, ok && c.tag == Double }
func (c *Cell) GetString() (string, bool)   { v, ok := c.payload.(string); c.reads.Add(1); return v, ok && c.tag == String }
func (c *Cell) GetBytes() ([]byte, bool) {
	c.reads.Add(1)
	v, ok := c.payload.([]byte)
	if !ok || c.tag != Bytes {
		return nil, false
	}
	return v, true
}
func (c *Cell) GetContainer() (Container, bool) {
	c.reads.Add(1)
	v, ok := c.payload.(Container)
	return v, ok && c.tag == Container
}
func (c *Cell) GetArray() ([]*Cell, bool) {
	c.reads.Add(1)
	v, ok := c.payload.([]*Cell)
	return v, ok && c.tag == Array
}

// --- Typed setters: replace tag+payload atomically (Invariant V1). ---

func (c *Cell) SetBool(v bool)             { c.set(Bool, v) }
func (c *Cell) SetShort(v int16)           { c.set(Short, v) }
func (c *Cell) SetUShort(v uint16)         { c.set(UShort, v) }
func (c *Cell) SetInt(v int32)             { c.set(Int, v) }
func (c *Cell) SetUInt(v uint32)           { c.set(UInt, v) }
func (c *Cell) SetLong(v int64)            { c.set(Long, v) }
func (c *Cell) SetULong(v uint64)          { c.set(ULong, v) }
func (c *Cell) SetFloat(v float32)         { c.set(Float, v) }
func (c *Cell) SetDouble(v float64)        { c.set(Double, v) }
func (c *Cell) SetString(v string)         { c.set(String, v) }
func (c *Cell) SetBytes(v []byte)          { c.set(Bytes, append([]byte(nil), v...)) }
func (c *Cell) SetContainer(v Container)   { c.set(Container, v) }
func (c *Cell) SetArray(v []*Cell)         { c.set(Array, append([]*Cell(nil), v...)) }
func (c *Cell) SetNull()                   { c.set(Null, nil) }

// Equal compares two cells structurally: name, tag, and payload must all
// match (Invariant V2: name participates in cell equality even though it
// never participates in payload equality). Containers compare by
// recursive structural equality of their entries; arrays element-wise.
func (c *Cell) Equal(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.name != o.name || c.tag != o.tag {
		return false
	}
	switch c.tag {
	case Null:
		return true
	case Bytes:
		a, _ := c.GetBytes()
		b, _ := o.GetBytes()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	case Container:
		ac, _ := c.GetContainer()
		bc, _ := o.GetContainer()
		return equalContainers(ac, bc)
	case Array:
		aa, _ := c.GetArray()
		ba, _ := o.GetArray()
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !aa[i].Equal(ba[i]) {
				return false
			}
		}
		return true
	default:
		return c.payload == o.payload
	}
}

// Clone returns a deep, structurally independent copy of c: Container and
// Array payloads are copied recursively; scalar/string/bytes payloads are
// copied by value. The clone starts with fresh access counters: zero
// reads and the single write recorded by its construction.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	switch c.tag {
	case Container:
		inner, _ := c.GetContainer()
		if inner == nil || containerCloner == nil {
			return newCell(c.name, Container, inner)
		}
		return newCell(c.name, Container, containerCloner(inner))
	case Array:
		arr, _ := c.GetArray()
		cloned := make([]*Cell, len(arr))
		for i, e := range arr {
			cloned[i] = e.Clone()
		}
		return newCell(c.name, Array, cloned)
	case Bytes:
		b, _ := c.GetBytes()
		return newCell(c.name, Bytes, append([]byte(nil), b...))
	default:
		return newCell(c.name, c.tag, c.payload)
	}
}

func equalContainers(a, b Container) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Len() != b.Len() {
		return false
	}
	aKeys := a.Keys()
	if len(aKeys) != len(b.Keys()) {
		return false
	}
	for _, key := range aKeys {
		aAll := a.GetAll(key)
		bAll := b.GetAll(key)
		if len(aAll) != len(bAll) {
			return false
		}
		for i := range aAll {
			if !aAll[i].Equal(bAll[i]) {
				return false
			}
		}
	}
	return true
}
