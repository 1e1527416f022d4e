package concurrent

import (
	"sync/atomic"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/store"
)

// SnapshotReader serves wait-free reads against an immutable, atomically
// swapped snapshot of a SafeStore (RCU-style). Reads never block a
// concurrent Refresh and vice versa; a reader observes the snapshot that
// was current when it called its method, even if Refresh swaps in a newer
// one immediately after.
type SnapshotReader struct {
	src      *SafeStore
	snapshot atomic.Pointer[store.Store]
}

// NewSnapshotReader builds a reader over src, taking an initial snapshot
// immediately.
func NewSnapshotReader(src *SafeStore) *SnapshotReader {
	r := &SnapshotReader{src: src}
	r.snapshot.Store(src.snapshot())
	return r
}

// Refresh blocks until a fresh clone of the source store has been taken
// and atomically swapped in. Concurrent reads are never blocked by this
// call; they simply keep observing the old snapshot until the swap
// completes.
func (r *SnapshotReader) Refresh() {
	r.snapshot.Store(r.src.snapshot())
}

// Get returns the first cell under key in the current snapshot.
func (r *SnapshotReader) Get(key string) (*cell.Cell, bool) {
	return r.snapshot.Load().Get(key)
}

// GetAll returns every cell under key in the current snapshot, in
// insertion order.
func (r *SnapshotReader) GetAll(key string) []*cell.Cell {
	return r.snapshot.Load().GetAll(key)
}

// Len returns the entry count of the current snapshot.
func (r *SnapshotReader) Len() int {
	return r.snapshot.Load().Len()
}

// Keys returns the distinct keys of the current snapshot, in
// first-occurrence order.
func (r *SnapshotReader) Keys() []string {
	return r.snapshot.Load().Keys()
}

// ForEach visits every entry of the current snapshot in insertion order.
func (r *SnapshotReader) ForEach(fn func(key string, c *cell.Cell) bool) {
	r.snapshot.Load().ForEach(fn)
}
