// Package json implements the JSON projection of the value model (§4.5):
// each cell renders as {"name":..., "type": <tag code>, "value": ...},
// with numerics and booleans as native JSON types, bytes as a hex string,
// and containers/arrays recursively as JSON arrays of cell projections (a
// plain JSON object cannot represent a store's duplicate-key, ordered
// multimap semantics, so a container's projection is an array rather than
// an object keyed by name).
//
// This package's init registers itself as cell's container projector, so
// Cell.ToString on a Container-tagged cell renders this JSON form — the
// same indirection codec/binary's cyclectx.Context avoids on the encode
// side, used here to break the cell<->codec/json import cycle.
package json
