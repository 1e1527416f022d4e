// Package concurrent adds thread-safety on top of an otherwise
// single-threaded store.Store (§4.6). SafeStore wraps a Store with a
// shared/exclusive lock for direct concurrent access; SnapshotReader
// layers a wait-free, RCU-style read path on top of a SafeStore by
// atomically swapping in an immutable cloned snapshot; AutoRefreshReader
// drives that swap from a background goroutine on a fixed interval.
package concurrent
