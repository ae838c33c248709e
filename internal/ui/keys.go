package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keys the display reacts to. The animation itself takes
// no input; only leaving it does.
type keyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "Quit"),
		),
	}
}
