package main

import tea "github.com/charmbracelet/bubbletea"

// helpOverlayModel is the foreground layer shown over the main view when
// help is toggled on.
type helpOverlayModel struct{}

func (helpOverlayModel) Init() tea.Cmd { return nil }

func (helpOverlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return helpOverlayModel{}, nil }

func (helpOverlayModel) View() string {
	return helpStyle.Render(`storeview

  up/k, down/j   move cursor
  enter/l        descend into a container or array
  backspace/h    go to parent
  r              refresh from source (root level only)
  c              copy selected value to clipboard
  ?              close this help
  q              quit`)
}
