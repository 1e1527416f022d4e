package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/cmd/storeview/logger"
	"github.com/joshuapare/valuecore/codec/binary"
	"github.com/joshuapare/valuecore/codec/envelope"
	vjson "github.com/joshuapare/valuecore/codec/json"
	vxml "github.com/joshuapare/valuecore/codec/xml"
	"github.com/joshuapare/valuecore/concurrent"
	"github.com/joshuapare/valuecore/store"
)

func loadStore(path, format string) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storeview: read %s: %w", path, err)
	}
	switch format {
	case "binary":
		return binary.Decode(data)
	case "textual":
		env, err := envelope.ParseFull(string(data), envelope.Basic)
		if env == nil {
			return nil, err
		}
		return env.Store, nil
	case "json":
		return vjson.UnmarshalStore(data)
	case "xml":
		return vxml.UnmarshalStore(data)
	default:
		return nil, fmt.Errorf("storeview: unknown format %q", format)
	}
}

// sourceReader is whichever of concurrent's two reader shapes is backing
// the root pane: a plain SnapshotReader when refresh is manual, an
// AutoRefreshReader when a --refresh interval was given.
type sourceReader struct {
	path   string
	format string
	safe   *concurrent.SafeStore
	*concurrent.SnapshotReader
	auto *concurrent.AutoRefreshReader
}

func newSourceReader(path, format string, interval time.Duration) (*sourceReader, error) {
	s, err := loadStore(path, format)
	if err != nil {
		return nil, err
	}
	safe := concurrent.NewSafeStore(s)
	sr := &sourceReader{path: path, format: format, safe: safe}
	sr.SnapshotReader = concurrent.NewSnapshotReader(safe)
	if interval > 0 {
		sr.auto = concurrent.NewAutoRefreshReader(safe, interval)
		sr.SnapshotReader = sr.auto.SnapshotReader
	}
	return sr, nil
}

// Reload re-reads the source file from disk into the underlying SafeStore
// and refreshes the snapshot, so the TUI reflects whatever the file
// currently holds.
func (sr *sourceReader) Reload() error {
	fresh, err := loadStore(sr.path, sr.format)
	if err != nil {
		logger.Warn("reload failed", "path", sr.path, "error", err)
		return err
	}
	sr.safe.BulkUpdate(func(dst *store.Store) {
		dst.Clear()
		fresh.ForEach(func(key string, c *cell.Cell) bool {
			dst.Add(key, c)
			return true
		})
	})
	sr.Refresh()
	logger.Debug("reloaded source", "path", sr.path, "entries", fresh.Len())
	return nil
}

func (sr *sourceReader) Close() error {
	if sr.auto != nil {
		sr.auto.Stop()
	}
	return nil
}
