package generator

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/ui/components"
	"github.com/winterarc/winterarc/internal/ui/layout"
	"github.com/winterarc/winterarc/internal/ui/theme"
)

// page accumulates centered blocks and remembers where each one starts.
type page struct {
	width int
	lines []string
}

func (p *page) add(block string) int {
	start := len(p.lines)
	placed := lipgloss.PlaceHorizontal(p.width, lipgloss.Center, block)
	p.lines = append(p.lines, strings.Split(placed, "\n")...)
	return start
}

func (p *page) gap() {
	p.lines = append(p.lines, "")
}

func (p *page) String() string {
	return strings.Join(p.lines, "\n")
}

// anchors are the first content lines of the focusable blocks.
type anchors struct {
	focus   int
	results int
}

func (s *Screen) View(width, height int) string {
	content, at := s.render(width)

	toasts := s.toasts.View(width)
	vpHeight := height
	if toasts != "" {
		vpHeight -= lipgloss.Height(toasts)
	}

	s.viewport.SetWidth(width)
	s.viewport.SetHeight(max(vpHeight, 1))
	s.viewport.SetContent(content)

	switch {
	case s.scrollPending:
		s.viewport.SetYOffset(at.results)
		s.scrollPending = false
		s.followFocus = false
	case s.followFocus:
		s.viewport.EnsureVisible(at.focus, 0, 0)
		s.followFocus = false
	}

	if toasts == "" {
		return s.viewport.View()
	}
	return toasts + "\n" + s.viewport.View()
}

func (s *Screen) render(width int) (string, anchors) {
	cw := layout.ColumnWidth(width)
	sel := s.machine.Selection()
	p := &page{width: width}
	var at anchors

	p.gap()
	p.add(theme.Label.Render("GENERATE YOUR PLAN"))
	p.add(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("It's ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Huge") +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(" o'clock"))
	p.gap()

	var chosenType []string
	if sel.WorkoutType != "" {
		chosenType = []string{string(sel.WorkoutType)}
	}
	var chosenGoal []string
	if sel.Goal != "" {
		chosenGoal = []string{string(sel.Goal)}
	}

	blocks := []struct {
		f     focus
		block string
	}{
		{focusType, s.types.View(chosenType, cw)},
		{focusMuscles, s.muscles.View(sel.Muscles, cw)},
		{focusGoal, s.goals.View(chosenGoal, cw)},
		{focusFormulate, s.formulate.View()},
	}
	for _, b := range blocks {
		start := p.add(b.block)
		if s.focus == b.f {
			at.focus = start
		}
		p.gap()
	}

	w, ok := s.builder.Current()
	if !ok {
		return p.String(), at
	}

	at.results = p.add(theme.SectionIndex.Render("YOUR PLAN") + "  " +
		theme.Label.Render(fmt.Sprintf("%s · %s · %s",
			catalog.Humanize(string(w.Selection.WorkoutType)),
			catalog.Humanize(strings.Join(w.Selection.Muscles, ", ")),
			catalog.Humanize(string(w.Selection.Goal)))))
	p.gap()

	for i, ex := range w.Exercises {
		tr, _ := s.builder.Tracker(i)
		start := p.add(components.ExerciseCard{
			Index:    i,
			Exercise: ex,
			Progress: tr,
			Focused:  s.focus == focusResults && i == s.card,
			Width:    cw,
		}.View())
		if s.focus == focusResults && i == s.card {
			at.focus = start
		}
		p.gap()
	}
	return p.String(), at
}
