// Package layout renders the frame around every screen: the header bar,
// the footer with key hints and the terminal-too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactWidth is the width below which the footer drops hint
	// descriptions that do not fit.
	CompactWidth = 100

	// MaxColumnWidth caps the width of the centered content column.
	MaxColumnWidth = 96

	crumbSeparator = " › "
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ColumnWidth returns the width of the centered content column.
func ColumnWidth(width int) int {
	return min(width-4, MaxColumnWidth)
}

// HintsFromBindings builds footer hints from key bindings, skipping
// disabled ones.
func HintsFromBindings(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Terminal too small!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("Please resize to at least %d x %d", MinWidth, MinHeight)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Current: %d x %d", width, height)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderHeader draws the brand on the left, the screen breadcrumb in the
// middle and status (e.g. the catalog version) on the right.
func RenderHeader(crumbs []string, status string, width int) string {
	inner := max(width-4, 0)

	brand := theme.Body.Bold(true).Render("  Winter") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Arc")
	right := theme.Label.Render(status)

	title := ""
	if len(crumbs) > 0 {
		parts := make([]string, len(crumbs))
		for i, c := range crumbs {
			if i == len(crumbs)-1 {
				parts[i] = theme.Body.Render(c)
			} else {
				parts[i] = theme.Label.Render(c)
			}
		}
		title = strings.Join(parts, theme.Label.Render(crumbSeparator))
	}

	// The title is centered on the whole bar, not on the space left over.
	side := max(lipgloss.Width(brand), lipgloss.Width(right))
	middle := max(inner-2*side, 0)
	content := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) +
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, title) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right)

	return bar(content, width)
}

// RenderFooter lists the hints. On compact terminals, descriptions are
// dropped from the end until the line fits.
func RenderFooter(hints []KeyHint, width int) string {
	full := make([]bool, len(hints))
	for i := range full {
		full[i] = true
	}

	line := footerLine(hints, full)
	if IsCompactWidth(width) {
		for i := len(hints) - 1; i >= 0 && lipgloss.Width(line) > width-4; i-- {
			full[i] = false
			line = footerLine(hints, full)
		}
	}
	return bar(line, width)
}

func footerLine(hints []KeyHint, full []bool) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = theme.Body.Bold(true).Render(h.Key)
		if full[i] {
			parts[i] += " " + theme.Label.Render(h.Description)
		}
	}
	return "  " + strings.Join(parts, "   ")
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the rows between them.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
