package concurrent

import (
	"sync"
	"time"
)

// AutoRefreshReader drives a SnapshotReader's Refresh from a background
// goroutine on a fixed interval, so callers get an eventually-consistent
// view without calling Refresh themselves.
type AutoRefreshReader struct {
	*SnapshotReader

	interval  time.Duration
	closing   chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

// NewAutoRefreshReader starts a background goroutine that calls Refresh
// every interval until Stop is called.
func NewAutoRefreshReader(src *SafeStore, interval time.Duration) *AutoRefreshReader {
	r := &AutoRefreshReader{
		SnapshotReader: NewSnapshotReader(src),
		interval:       interval,
		closing:        make(chan struct{}),
		done:           make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *AutoRefreshReader) run() {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.closing:
			return
		case <-ticker.C:
			r.Refresh()
		}
	}
}

// Stop halts the background refresh goroutine and waits for it to exit.
// Safe to call more than once or from multiple goroutines.
func (r *AutoRefreshReader) Stop() {
	r.closeOnce.Do(func() {
		close(r.closing)
	})
	<-r.done
}
