package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal-mode bindings. It implements help.KeyMap.
type KeyMap struct {
	Next         key.Binding
	Previous     key.Binding
	First        key.Binding
	Last         key.Binding
	Jump         key.Binding
	Overview     key.Binding
	Fullscreen   key.Binding
	Presentation key.Binding
	Reload       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", " ", "l", "j", "pgdown", "enter"),
			key.WithHelp("→/space", "next slide"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "up", "h", "k", "pgup", "backspace"),
			key.WithHelp("←", "previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/", ":"),
			key.WithHelp("/", "jump to slide"),
		),
		Overview: key.NewBinding(
			key.WithKeys("o", "O"),
			key.WithHelp("o", "overview"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "fullscreen"),
		),
		Presentation: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "presentation mode"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload deck"),
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

// ShortHelp returns the bindings shown in the footer hint
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Overview, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.First, k.Last, k.Jump},
		{k.Overview, k.Fullscreen, k.Presentation},
		{k.Reload, k.Help, k.Quit},
	}
}
