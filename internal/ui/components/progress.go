package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	// Counter replaces the percentage suffix when set, e.g. "3 / 5".
	Counter     string
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	suffix := p.suffix()
	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		suffix

	return result
}

func (p ProgressBar) suffix() string {
	switch {
	case p.Counter != "":
		return theme.Label.Render("  " + p.Counter)
	case p.ShowPercent:
		return theme.Label.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return ""
}
