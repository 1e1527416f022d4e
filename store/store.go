package store

import "github.com/joshuapare/valuecore/cell"

// entry pairs a key with its cell, preserving the order it was added.
type entry struct {
	key string
	val *cell.Cell
}

// Store is an ordered multimap of (key, cell) entries; keys may repeat.
// Lookup is O(1) via an index from key to the positions of its entries in
// insertion order (Invariant S1); iteration always walks entries in
// insertion order (needed for deterministic textual-envelope output).
//
// Store is not safe for concurrent use; concurrent/SafeStore wraps it
// with a shared/exclusive lock for that purpose.
type Store struct {
	entries []entry
	index   map[string][]int // key -> indices into entries, in insertion order
}

// New returns an empty store.
func New() *Store {
	return &Store{index: make(map[string][]int)}
}

// Add appends a new cell under key. If key already exists, the prior
// cells are retained and lookup order still returns the earliest one
// (Invariant S1).
func (s *Store) Add(key string, c *cell.Cell) {
	s.index[key] = append(s.index[key], len(s.entries))
	s.entries = append(s.entries, entry{key: key, val: c})
}

// AddCell is a convenience wrapper that uses c.Name() as the key.
func (s *Store) AddCell(c *cell.Cell) {
	s.Add(c.Name(), c)
}

// Set replaces all prior cells under key with a single new cell.
func (s *Store) Set(key string, c *cell.Cell) {
	s.Remove(key)
	s.Add(key, c)
}

// Remove deletes all cells under key and returns how many were removed.
func (s *Store) Remove(key string) int {
	idxs, ok := s.index[key]
	if !ok {
		return 0
	}
	n := len(idxs)
	s.rebuildWithout(idxs)
	return n
}

// rebuildWithout removes the entries at the given (ascending, from
// s.index) positions and repairs the index.
func (s *Store) rebuildWithout(remove []int) {
	drop := make(map[int]bool, len(remove))
	for _, i := range remove {
		drop[i] = true
	}
	newEntries := make([]entry, 0, len(s.entries)-len(remove))
	for i, e := range s.entries {
		if drop[i] {
			continue
		}
		newEntries = append(newEntries, e)
	}
	s.entries = newEntries
	s.reindex()
}

func (s *Store) reindex() {
	idx := make(map[string][]int, len(s.index))
	for i, e := range s.entries {
		idx[e.key] = append(idx[e.key], i)
	}
	s.index = idx
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.entries = nil
	s.index = make(map[string][]int)
}

// Get returns the first cell under key, matching Invariant S1. ok is
// false ("absent") if key has no entries.
func (s *Store) Get(key string) (*cell.Cell, bool) {
	idxs, ok := s.index[key]
	if !ok || len(idxs) == 0 {
		return nil, false
	}
	return s.entries[idxs[0]].val, true
}

// GetAll returns every cell under key, in insertion order.
func (s *Store) GetAll(key string) []*cell.Cell {
	idxs := s.index[key]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*cell.Cell, len(idxs))
	for i, ix := range idxs {
		out[i] = s.entries[ix].val
	}
	return out
}

// Size returns the total number of entries (including duplicate keys).
func (s *Store) Size() int { return len(s.entries) }

// Len satisfies cell.Container.
func (s *Store) Len() int { return s.Size() }

// Empty reports whether the store has no entries.
func (s *Store) Empty() bool { return len(s.entries) == 0 }

// Keys returns the distinct keys, in first-occurrence order.
func (s *Store) Keys() []string {
	seen := make(map[string]bool, len(s.index))
	out := make([]string, 0, len(s.index))
	for _, e := range s.entries {
		if !seen[e.key] {
			seen[e.key] = true
			out = append(out, e.key)
		}
	}
	return out
}

// ForEach visits every entry in insertion order; it stops early if fn
// returns false.
func (s *Store) ForEach(fn func(key string, c *cell.Cell) bool) {
	for _, e := range s.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// BulkRead exposes the store for efficient batched read-only access under
// a single lock acquisition when wrapped by concurrent.SafeStore. On a
// bare Store it is equivalent to calling fn(s) directly.
func (s *Store) BulkRead(fn func(*Store)) {
	fn(s)
}

// BulkUpdate exposes the store for batched mutation under a single lock
// acquisition when wrapped by concurrent.SafeStore.
func (s *Store) BulkUpdate(fn func(*Store)) {
	fn(s)
}

// CompareExchange atomically replaces the first cell under key with
// desired iff the current first cell equals expected (by cell.Equal).
// Returns false if key is absent or the current value doesn't match.
func (s *Store) CompareExchange(key string, expected, desired *cell.Cell) bool {
	idxs, ok := s.index[key]
	if !ok || len(idxs) == 0 {
		return false
	}
	cur := s.entries[idxs[0]].val
	if !cur.Equal(expected) {
		return false
	}
	s.entries[idxs[0]].val = desired
	return true
}

// Clone returns a deep, structurally independent copy: nested Container
// payloads are cloned recursively so mutating the clone never affects the
// source (used by concurrent.SafeStore to build concurrent.SnapshotReader
// snapshots).
func (s *Store) Clone() *Store {
	out := New()
	for _, e := range s.entries {
		out.Add(e.key, e.val.Clone())
	}
	return out
}

func init() {
	cell.SetContainerCloner(func(c cell.Container) cell.Container {
		st, ok := c.(*Store)
		if !ok || st == nil {
			return c
		}
		return st.Clone()
	})
}
