package concurrent

import (
	"sync"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/store"
)

// SafeStore wraps a store.Store with a shared/exclusive (RWMutex) lock so
// it can be used directly from multiple goroutines. Readers take the
// shared lock; writers take the exclusive lock.
type SafeStore struct {
	mu sync.RWMutex
	s  *store.Store
}

// NewSafeStore wraps an existing store. A nil store is treated as empty.
func NewSafeStore(s *store.Store) *SafeStore {
	if s == nil {
		s = store.New()
	}
	return &SafeStore{s: s}
}

// Get returns the first cell under key (Invariant S1).
func (ss *SafeStore) Get(key string) (*cell.Cell, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Get(key)
}

// GetAll returns every cell under key, in insertion order.
func (ss *SafeStore) GetAll(key string) []*cell.Cell {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.GetAll(key)
}

// Len returns the total number of entries.
func (ss *SafeStore) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Len()
}

// Keys returns the distinct keys, in first-occurrence order.
func (ss *SafeStore) Keys() []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Keys()
}

// ForEach visits every entry in insertion order under the shared lock; fn
// must not call back into ss or it will deadlock.
func (ss *SafeStore) ForEach(fn func(key string, c *cell.Cell) bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	ss.s.ForEach(fn)
}

// Add appends a new cell under key.
func (ss *SafeStore) Add(key string, c *cell.Cell) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Add(key, c)
}

// Set replaces all prior cells under key with a single new cell.
func (ss *SafeStore) Set(key string, c *cell.Cell) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Set(key, c)
}

// Remove deletes all cells under key and returns how many were removed.
func (ss *SafeStore) Remove(key string) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Remove(key)
}

// Clear removes all entries.
func (ss *SafeStore) Clear() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Clear()
}

// CompareExchange atomically replaces the first cell under key with
// desired iff the current first cell equals expected.
func (ss *SafeStore) CompareExchange(key string, expected, desired *cell.Cell) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.CompareExchange(key, expected, desired)
}

// BulkRead exposes the underlying store for a batch of reads taken under
// a single shared-lock acquisition.
func (ss *SafeStore) BulkRead(fn func(*store.Store)) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	ss.s.BulkRead(fn)
}

// BulkUpdate exposes the underlying store for a batch of writes taken
// under a single exclusive-lock acquisition.
func (ss *SafeStore) BulkUpdate(fn func(*store.Store)) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.BulkUpdate(fn)
}

// snapshot returns a deep, independent clone of the current store, taken
// under the shared lock. Used by SnapshotReader.Refresh.
func (ss *SafeStore) snapshot() *store.Store {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Clone()
}
