package cell

// Visitor is a polymorphic function over all 16 variants, used by codecs,
// projections, and user-defined aggregations (§4.1 "Visit"). Exactly one
// method is invoked per call to Visit, matching the cell's current tag.
type Visitor interface {
	VisitNull()
	VisitBool(v bool)
	VisitShort(v int16)
	VisitUShort(v uint16)
	VisitInt(v int32)
	VisitUInt(v uint32)
	VisitLong(v int64)
	VisitULong(v uint64)
	VisitFloat(v float32)
	VisitDouble(v float64)
	VisitString(v string)
	VisitBytes(v []byte)
	VisitContainer(v Container)
	VisitArray(v []*Cell)
}

// Visit dispatches to exactly one method of vis, matching c's tag. Since
// LLong/ULLong always collapse to Long/ULong (Invariant T2), there are no
// separate VisitLLong/VisitULLong methods.
func (c *Cell) Visit(vis Visitor) {
	switch c.tag {
	case Null:
		vis.VisitNull()
	case Bool:
		v, _ := c.GetBool()
		vis.VisitBool(v)
	case Short:
		v, _ := c.GetShort()
		vis.VisitShort(v)
	case UShort:
		v, _ := c.GetUShort()
		vis.VisitUShort(v)
	case Int:
		v, _ := c.GetInt()
		vis.VisitInt(v)
	case UInt:
		v, _ := c.GetUInt()
		vis.VisitUInt(v)
	case Long:
		v, _ := c.GetLong()
		vis.VisitLong(v)
	case ULong:
		v, _ := c.GetULong()
		vis.VisitULong(v)
	case Float:
		v, _ := c.GetFloat()
		vis.VisitFloat(v)
	case Double:
		v, _ := c.GetDouble()
		vis.VisitDouble(v)
	case String:
		v, _ := c.GetString()
		vis.VisitString(v)
	case Bytes:
		v, _ := c.GetBytes()
		vis.VisitBytes(v)
	case Container:
		v, _ := c.GetContainer()
		vis.VisitContainer(v)
	case Array:
		v, _ := c.GetArray()
		vis.VisitArray(v)
	}
}
