package gallery

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every gallery binding. It implements help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Forward  key.Binding
	NextPane key.Binding
	Mode     key.Binding
	Reload   key.Binding
	Drawer   key.Binding
	StepNext key.Binding
	StepBack key.Binding
	Close    key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeys returns the standard bindings.
func DefaultKeys() KeyMap {
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
			key.WithHelp("enter", "open story"),
		),
		Back: key.NewBinding(
			key.WithKeys("[", "alt+left"),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
			key.WithHelp("]", "forward"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "preview/docs/tokens"),
		),
		Mode: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme mode"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload theme"),
		),
		Drawer: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "drawer demo"),
		),
		StepNext: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next step"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "previous step"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "d"),
			key.WithHelp("esc", "close"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
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
	return []key.Binding{k.Open, k.Back, k.Forward, k.Mode, k.Drawer, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.NextPane},
		{k.Back, k.Forward},
		{k.Mode, k.Reload, k.Dismiss},
		{k.Drawer, k.StepNext, k.StepBack, k.Close},
		{k.Help, k.Quit},
	}
}

// drawerKeys is the help shown while the drawer is open.
type drawerKeys struct{ KeyMap }

func (k drawerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.StepNext, k.StepBack, k.Forward, k.Close, k.Quit}
}

func (k drawerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
