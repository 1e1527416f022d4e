// Package cell implements the typed value model at the core of the
// container system: a closed set of 16 logical types (tag.go), the
// tagged-sum value cell that holds exactly one of them (cell.go), and
// the coercion rules used to convert between them (coerce.go).
//
// A Cell never exposes a half-mutated payload: switching its tag replaces
// the payload atomically (Invariant V1 in the design notes). Construction
// from malformed wire bytes never panics; the cell downgrades to Null.
package cell
