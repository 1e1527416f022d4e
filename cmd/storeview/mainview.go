package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// mainViewModel wraps Model's normal (non-help) rendering so it can serve
// as the overlay's background layer.
type mainViewModel struct {
	m *Model
}

func (v *mainViewModel) Init() tea.Cmd { return nil }

func (v *mainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *mainViewModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		v.m.renderHeader(),
		v.m.renderRows(),
		v.m.renderStatus(),
	)
}
