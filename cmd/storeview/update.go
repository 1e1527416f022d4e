package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/valuecore/cell"
)

// Init satisfies tea.Model; there is nothing to kick off asynchronously.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3 // header + status lines
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.updateViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.updateViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.descend()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.ascend()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CopyValue):
		m.copySelected()
		return m, nil
	}
	return m, nil
}

func (m *Model) descend() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	switch r.tag {
	case cell.Container:
		con, ok := r.c.GetContainer()
		if !ok {
			return
		}
		m.path = append(m.path, con)
		m.pathNames = append(m.pathNames, r.label)
		m.cursor = 0
		m.rebuildRows()
	case cell.Array:
		// Arrays are unnamed-element lists; browse them as a synthetic
		// container view instead of via cell.Container.
		arr, ok := r.c.GetArray()
		if !ok {
			return
		}
		m.path = append(m.path, arrayContainer(arr))
		m.pathNames = append(m.pathNames, fmt.Sprintf("%s[]", r.label))
		m.cursor = 0
		m.rebuildRows()
	default:
		m.statusMessage = fmt.Sprintf("%s is a scalar; nothing to descend into", r.label)
	}
}

func (m *Model) ascend() {
	if len(m.path) <= 1 {
		m.statusMessage = "already at root"
		return
	}
	m.path = m.path[:len(m.path)-1]
	m.pathNames = m.pathNames[:len(m.pathNames)-1]
	m.cursor = 0
	m.rebuildRows()
}

func (m *Model) refresh() {
	if len(m.path) > 1 {
		m.statusMessage = "refresh only applies at the root; press h until you're back there"
		return
	}
	if err := m.source.Reload(); err != nil {
		m.statusMessage = fmt.Sprintf("refresh failed: %v", err)
		return
	}
	m.path[0] = m.source.SnapshotReader
	m.rebuildRows()
	m.statusMessage = "refreshed"
}

func (m *Model) copySelected() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	if r.tag == cell.Container || r.tag == cell.Array {
		m.statusMessage = fmt.Sprintf("%s is a %s; descend to copy its leaves", r.label, r.tag)
		return
	}
	val := r.c.ToString()
	if err := clipboard.WriteAll(val); err != nil {
		m.statusMessage = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.statusMessage = fmt.Sprintf("copied %s", r.label)
}
