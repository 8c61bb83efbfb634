package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the player bindings.
type KeyMap struct {
	PlayPause key.Binding
	Next      key.Binding
	Previous  key.Binding
	Shuffle   key.Binding
	Repeat    key.Binding

	SeekForward  key.Binding
	SeekBackward key.Binding
	SeekPercent  key.Binding

	Playlist key.Binding
	AddMore  key.Binding
	Layout   key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("N", "b"),
			key.WithHelp("N/b", "previous"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right", "shift+right"),
			key.WithHelp("→", "+5s"),
		),
		SeekBackward: key.NewBinding(
			key.WithKeys("left", "shift+left"),
			key.WithHelp("←", "-5s"),
		),
		SeekPercent: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "seek to 0-90%"),
		),
		Playlist: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p", "playlist"),
		),
		AddMore: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add songs"),
		),
		Layout: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Next, k.Previous, k.Playlist, k.AddMore, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Next, k.Previous, k.Shuffle, k.Repeat},
		{k.SeekForward, k.SeekBackward, k.SeekPercent},
		{k.Playlist, k.AddMore, k.Layout, k.Help, k.Quit},
	}
}

// importKeyMap defines the bindings of the import screen.
type importKeyMap struct {
	Add     key.Binding
	Replace key.Binding
	Start   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultImportKeyMap() importKeyMap {
	return importKeyMap{
		Add:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "import")),
		Replace: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "import as new playlist")),
		Start:   key.NewBinding(key.WithKeys("tab", "ctrl+s"), key.WithHelp("tab", "start")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to player")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k importKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Replace, k.Start, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k importKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
