// Package screen defines what the router stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/winterarc/winterarc/internal/ui/layout"
)

// Screen is one full page of the TUI. The app draws the header and
// footer; View fills the area between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the header breadcrumb. Empty titles are skipped.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
