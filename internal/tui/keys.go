package tui

import "github.com/charmbracelet/bubbles/key"

// Bindings for the delete confirmation overlay. The list and form screens
// react to raw key strings directly.
type keyMap struct {
	esc key.Binding
	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	esc: key.NewBinding(key.WithKeys("esc")),
	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
