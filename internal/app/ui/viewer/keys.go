package viewer

import (
	"github.com/charmbracelet/bubbles/key"

	"artspace/internal/app/ui/components"
)

// KeyMap defines the key bindings for the gallery view
type KeyMap struct {
	components.KeyMap
	Previous key.Binding
	Next     key.Binding
	Copy     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy citation"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.Copy, k.Help},
		{k.Quit, k.ForceQuit},
	}
}
