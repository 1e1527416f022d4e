package main

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/joshuapare/valuecore/cell"
)

// row is one displayed line: a named cell, or an array element keyed by
// its index.
type row struct {
	label string
	tag   cell.Tag
	c     *cell.Cell
}

// Model is storeview's single bubbletea model: a breadcrumb stack of
// cell.Container frames with a cursor over the current frame's rows.
type Model struct {
	source *sourceReader

	path      []cell.Container
	pathNames []string
	rows      []row

	cursor   int
	viewport viewport.Model
	width    int
	height   int

	showHelp      bool
	statusMessage string
	err           error

	keys Keys
}

// NewModel loads path in format and builds the initial browsing frame at
// the store's root.
func NewModel(path, format string, refresh time.Duration) (Model, error) {
	src, err := newSourceReader(path, format, refresh)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		source:    src,
		path:      []cell.Container{src.SnapshotReader},
		pathNames: []string{"/"},
		viewport:  viewport.New(0, 0),
		keys:      defaultKeys(),
	}
	m.rebuildRows()
	return m, nil
}

// Close releases the source reader's background refresh goroutine, if
// any.
func (m Model) Close() error {
	return m.source.Close()
}

func (m *Model) current() cell.Container {
	return m.path[len(m.path)-1]
}

// rebuildRows re-derives the visible row list from the current frame,
// clamping the cursor back into range and refreshing the viewport.
func (m *Model) rebuildRows() {
	var rows []row
	m.current().ForEach(func(key string, c *cell.Cell) bool {
		rows = append(rows, row{label: key, tag: c.Tag(), c: c})
		return true
	})
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewport()
}

// updateViewport re-renders the row list into the viewport and scrolls it
// just enough to keep the cursor visible, mirroring the teacher's
// valuetable component.
func (m *Model) updateViewport() {
	m.viewport.SetContent(renderRowLines(m.rows, m.cursor))
	visible := m.viewport.Height
	if visible <= 0 {
		return
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	} else if m.cursor >= m.viewport.YOffset+visible {
		m.viewport.YOffset = m.cursor - visible + 1
	}
}
