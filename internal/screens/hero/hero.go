// Package hero is the landing screen: a short reveal of the WinterArc
// banner followed by the main menu.
package hero

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/router"
	"github.com/winterarc/winterarc/internal/screen"
	"github.com/winterarc/winterarc/internal/ui/components"
	"github.com/winterarc/winterarc/internal/ui/layout"
	"github.com/winterarc/winterarc/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	menuAt       = 900 * time.Millisecond
)

const (
	tagline = "IT'S TIME TO GET"
	blurb   = "Build a workout in three steps, then tick off every set until the snow melts."
)

type tickMsg time.Time

// Screen shows the banner and the main menu. Any key pressed before the
// reveal finishes skips straight to the menu.
type Screen struct {
	menu    components.Menu
	elapsed time.Duration
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the hero screen. begin builds the generator screen; history
// builds the history screen and may be nil when no store is available.
func New(begin, history func() screen.Screen) *Screen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "Accept and Begin", Action: push(begin)},
		{Label: "History", Disabled: history == nil},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	if history != nil {
		items[1].Action = push(history)
	}

	return &Screen{menu: components.NewMenu(items)}
}

func (s *Screen) Title() string {
	return ""
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *Screen) revealed() bool {
	return s.elapsed >= menuAt
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if s.revealed() {
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case tea.KeyPressMsg:
		if !s.revealed() {
			s.elapsed = menuAt
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := layout.ColumnWidth(width)
	sections := []string{theme.Subtitle.Render(tagline)}

	if s.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(cw))
	}

	if s.revealed() {
		sections = append(sections,
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(cw, 60)).Align(lipgloss.Center).Render(blurb),
			"",
			s.menu.View(),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
