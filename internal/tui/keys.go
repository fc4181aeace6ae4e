package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the browser
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Close    key.Binding
	LoadMore key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHelp returns the bindings shown under the thumbnail list
func (k KeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.LoadMore, k.PrevPage, k.NextPage, k.Quit}
}

// modalHelp returns the bindings shown under the open item
func (k KeyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close, k.Quit}
}
