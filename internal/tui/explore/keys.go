package explore

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Direction key.Binding
	Narrower  key.Binding
	Wider     key.Binding
	Handlers  key.Binding
	Props     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "flip direction")),
		Narrower:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "drop top breakpoint")),
		Wider:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "restore breakpoint")),
		Handlers:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle handler table")),
		Props:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "show input props")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Direction, k.Narrower, k.Wider, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Direction, k.Handlers, k.Props},
		{k.Narrower, k.Wider},
		{k.Help, k.Quit},
	}
}
