package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding. It implements help.KeyMap.
type keyMap struct {
	Home      key.Binding
	YouTube   key.Binding
	TikTok    key.Binding
	Favorites key.Binding
	Profile   key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
	Fav   key.Binding

	Next  key.Binding
	Prev  key.Binding
	Pause key.Binding
	Close key.Binding

	Help  key.Binding
	Debug key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Home:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1-5", "tabs")),
	YouTube:   key.NewBinding(key.WithKeys("2")),
	TikTok:    key.NewBinding(key.WithKeys("3")),
	Favorites: key.NewBinding(key.WithKeys("4")),
	Profile:   key.NewBinding(key.WithKeys("5")),
	NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),

	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
	Fav:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),

	Next:  key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
	Prev:  key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "prev")),
	Pause: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pause")),
	Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Debug: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tabKeys maps the number bindings to their tab position.
var tabKeys = []key.Binding{keys.Home, keys.YouTube, keys.TikTok, keys.Favorites, keys.Profile}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Open, k.Fav, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Fav},
		{k.Next, k.Prev, k.Pause, k.Close},
		{k.Help, k.Debug, k.Quit},
	}
}

// playerKeys is the help shown while the overlay is open.
type playerKeys struct{ keyMap }

func (k playerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pause, k.Fav, k.Close}
}
