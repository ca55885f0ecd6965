package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the observable key binding contract of the controller.
type keyMap struct {
	Faster   key.Binding
	Slower   key.Binding
	Backward key.Binding
	Forward  key.Binding
	Boost    key.Binding
	Brake    key.Binding
	Stop     key.Binding
	Switch   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Faster:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "speed +1000")),
		Slower:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "speed -1000")),
		Backward: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "direction backward")),
		Forward:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "direction forward")),
		Boost:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "speed +5000")),
		Brake:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "speed -5000")),
		Stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop motor")),
		Switch:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "change actuator (bucket or lift)")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Faster, k.Slower, k.Backward, k.Forward, k.Quit}
}

// FullHelp implements help.KeyMap. The two rows mirror the two help lines of
// the controls panel.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Faster, k.Slower, k.Backward, k.Forward, k.Quit},
		{k.Stop, k.Boost, k.Brake, k.Switch},
	}
}
