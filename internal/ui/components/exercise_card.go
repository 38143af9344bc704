package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/plan"
	"github.com/winterarc/winterarc/internal/progress"
	"github.com/winterarc/winterarc/internal/ui/theme"
)

// ExerciseCard renders one exercise of a generated workout together with
// its set tracker.
type ExerciseCard struct {
	// Index is zero-based; it is shown as "01", "02", ...
	Index    int
	Exercise plan.Exercise
	Progress progress.Tracker
	Focused  bool
	Width    int
}

// View renders the card.
func (c ExerciseCard) View() string {
	inner := max(c.Width-4, 20)
	e := c.Exercise

	name := theme.SectionIndex.Render(fmt.Sprintf("%02d", c.Index+1)) + "  " +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(strings.ToUpper(e.DisplayName()))
	kind := theme.Label.Render(string(e.Type))
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(kind), 1)

	muscles := make([]string, len(e.Muscles))
	for i, m := range e.Muscles {
		muscles[i] = catalog.Humanize(m)
	}

	lines := []string{
		name + strings.Repeat(" ", gap) + kind,
		theme.Label.Render("Muscle Groups"),
		lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Join(muscles, " & ")),
		"",
	}
	wrap := lipgloss.NewStyle().Foreground(theme.TextDim).Width(inner)
	for _, p := range e.Paragraphs() {
		lines = append(lines, wrap.Render(p), "")
	}

	lines = append(lines,
		stat(strings.ToUpper(string(e.Unit)), fmt.Sprint(e.Amount))+"   "+
			stat("REST", fmt.Sprintf("%ds", e.Rest))+"   "+
			stat("TEMPO", e.Tempo),
		"",
		ProgressBar{
			Label:   "Sets Completed",
			Percent: c.Progress.Fraction(),
			Counter: fmt.Sprintf("%d / %d", c.Progress.SetsCompleted(), c.Progress.MaxSets()),
			Width:   inner,
		}.View(),
		"",
		c.buttons(),
	)

	style := theme.Card
	switch {
	case c.Progress.IsComplete():
		style = theme.CardComplete
	case c.Focused:
		style = theme.CardFocused
	}
	return style.Width(c.Width).Render(strings.Join(lines, "\n"))
}

func (c ExerciseCard) buttons() string {
	complete := Button{
		Label:    "Complete Set",
		Focused:  c.Focused,
		Disabled: c.Progress.IsComplete(),
	}
	if c.Progress.IsComplete() {
		complete.Label = "Done"
	}
	reset := Button{
		Label:    "Reset Progress",
		Disabled: c.Progress.SetsCompleted() == 0,
	}
	return complete.View() + "  " + reset.View()
}

func stat(label, value string) string {
	return theme.Label.Render(label+" ") + theme.Body.Bold(true).Render(value)
}
