package gallery

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the gallery keybindings.
type KeyMap struct {
	NextTheme key.Binding
	NextSize  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard gallery bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle size"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.NextSize, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.NextSize},
		{k.Help, k.Quit},
	}
}
