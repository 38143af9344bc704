package generator

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next          key.Binding
	Prev          key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Choose        key.Binding
	CompleteSet   key.Binding
	ResetProgress key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←→", "Option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Choose"),
		),
		CompleteSet: key.NewBinding(
			key.WithKeys("+", "s"),
			key.WithHelp("+", "Set done"),
		),
		ResetProgress: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
	}
}
