package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/valuecore/cell"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.showHelp {
		bg := &mainViewModel{m: &m}
		help := helpOverlayModel{}
		return overlay.New(help, bg, overlay.Center, overlay.Center, 0, 0).View()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatus(),
	)
}

func (m Model) renderHeader() string {
	breadcrumb := strings.Join(m.pathNames, " / ")
	return headerStyle.Render(fmt.Sprintf("storeview  %s", breadcrumb))
}

func (m Model) renderRows() string {
	return m.viewport.View()
}

func renderRowLines(rows []row, cursor int) string {
	if len(rows) == 0 {
		return "  (empty)"
	}
	var b strings.Builder
	for i, r := range rows {
		line := fmt.Sprintf("%-24s %-10s %s", r.label, r.tag, valuePreview(r))
		if i == cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + tagStyle.Render(line))
		}
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	msg := m.statusMessage
	if msg == "" {
		msg = "enter: descend  backspace: up  r: refresh  c: copy  ?: help  q: quit"
	}
	return statusStyle.Render(msg)
}

func valuePreview(r row) string {
	switch r.tag {
	case cell.Container:
		con, _ := r.c.GetContainer()
		return fmt.Sprintf("<%d entries>", con.Len())
	case cell.Array:
		arr, _ := r.c.GetArray()
		return fmt.Sprintf("<%d elements>", len(arr))
	default:
		return r.c.ToString()
	}
}
