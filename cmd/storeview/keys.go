package main

import "github.com/charmbracelet/bubbles/key"

// Keys defines storeview's keyboard shortcuts.
type Keys struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Refresh   key.Binding
	CopyValue key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() Keys {
	return Keys{
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Enter:     key.NewBinding(key.WithKeys("enter", "l", "right")),
		Back:      key.NewBinding(key.WithKeys("backspace", "h", "left")),
		Refresh:   key.NewBinding(key.WithKeys("r")),
		CopyValue: key.NewBinding(key.WithKeys("c")),
		Help:      key.NewBinding(key.WithKeys("?")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}
