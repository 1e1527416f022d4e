package view

import (
	"fmt"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/codec/envelope"
	"github.com/joshuapare/valuecore/messaging"
)

// Store is a lazily-indexed, read-only view over one envelope's data
// block: its header is decoded eagerly, but each cell stays an undecoded
// CellView until As, Container, or Elements is called on it.
type Store struct {
	header  messaging.Header
	entries []CellView
}

// Open parses buf's header eagerly and indexes its data block's cells
// without decoding any of their payloads or copying buf's backing array.
func Open(buf *Buffer, mode envelope.Mode) (*Store, error) {
	return openBody(buf.Bytes(), mode)
}

func openBody(body []byte, mode envelope.Mode) (*Store, error) {
	header, dataSpan, err := splitHeader(body)
	if err != nil {
		return nil, fmt.Errorf("view: parse header: %w", err)
	}
	entries, err := indexCells(dataSpan)
	if err != nil && mode == envelope.Strict {
		return nil, fmt.Errorf("view: index cells: %w", err)
	}
	return &Store{header: header, entries: entries}, nil
}

// Header returns the envelope's decoded header.
func (s *Store) Header() messaging.Header { return s.header }

// Len returns the number of indexed cell entries.
func (s *Store) Len() int { return len(s.entries) }

// All returns every indexed entry, in file order, including duplicate
// keys (Invariant S1 is a store.Store concern; a raw view preserves
// whatever the file actually contains).
func (s *Store) All() []CellView { return s.entries }

// Get returns the first entry under name, undecoded.
func (s *Store) Get(name string) (CellView, bool) {
	for _, v := range s.entries {
		if v.name == name {
			return v, true
		}
	}
	return CellView{}, false
}

// Container opens a nested Store lazily from a Container-tagged view's
// data span.
func (v CellView) Container(mode envelope.Mode) (*Store, error) {
	if v.tag != cell.Container {
		return nil, fmt.Errorf("view: %q is tag %s, not container", v.name, v.tag)
	}
	return openBody(v.raw, mode)
}

// Elements indexes an Array-tagged view's member cells without decoding
// them.
func (v CellView) Elements() ([]CellView, error) {
	if v.tag != cell.Array {
		return nil, fmt.Errorf("view: %q is tag %s, not array", v.name, v.tag)
	}
	return indexCells(v.raw)
}
