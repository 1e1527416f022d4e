// Package store implements the value store (§3.3, §4.2): an ordered
// multimap from key to *cell.Cell that preserves insertion order across
// duplicate keys, used both as a top-level envelope payload and as the
// nested payload of a Container-tagged cell.
//
// Store implements cell.Container so it can be installed directly into a
// Container-tagged cell without an import cycle back to this package.
package store
