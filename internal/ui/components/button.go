package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/winterarc/winterarc/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		OnPress: onPress,
	}
}

// Update presses the button on enter or space while it is focused.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.Disabled {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			if b.OnPress != nil {
				return b, b.OnPress()
			}
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render("  " + b.Label + "  ")
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + b.Label + "  ")
	default:
		return theme.ButtonInactive.Render("  " + b.Label + "  ")
	}
}
