package components

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/ui/theme"
)

// Picker is one numbered wizard section: a list of options with a cursor.
// A collapsible picker renders as a dropdown that only lists its options
// while open.
type Picker struct {
	Index       string
	Title       string
	Description string
	Placeholder string
	Options     []string
	Cursor      int
	Focused     bool
	Collapsible bool
	Open        bool
}

// NewPicker creates a picker over options.
func NewPicker(index, title, description string, options []string) Picker {
	return Picker{
		Index:       index,
		Title:       title,
		Description: description,
		Options:     options,
	}
}

// SetOptions replaces the options and moves the cursor back to the top.
func (p *Picker) SetOptions(options []string) {
	p.Options = options
	p.Cursor = 0
}

// Move shifts the cursor by delta, clamped to the option list.
func (p *Picker) Move(delta int) {
	if len(p.Options) == 0 {
		p.Cursor = 0
		return
	}
	p.Cursor = max(0, min(p.Cursor+delta, len(p.Options)-1))
}

// Current returns the option under the cursor.
func (p Picker) Current() (string, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Options) {
		return "", false
	}
	return p.Options[p.Cursor], true
}

// Expanded reports whether the options are listed.
func (p Picker) Expanded() bool {
	return !p.Collapsible || p.Open
}

// View renders the section. chosen lists the options currently picked, in
// the order they were picked.
func (p Picker) View(chosen []string, width int) string {
	header := theme.SectionIndex.Render(p.Index) + "  " + theme.Title.Render(p.Title)
	if p.Description != "" {
		header += "\n" + theme.Label.Render(p.Description)
	}

	var body string
	switch {
	case len(p.Options) == 0:
		body = theme.Hint.Render(p.Placeholder)
	case p.Collapsible:
		body = p.dropdown(chosen)
	default:
		body = p.row(chosen)
	}

	style := theme.Card
	if p.Focused {
		style = theme.CardFocused
	}
	return style.Width(width).Render(header + "\n\n" + body)
}

// row lays the options out side by side.
func (p Picker) row(chosen []string) string {
	cells := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		cells = append(cells, p.option(i, opt, slices.Contains(chosen, opt)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (p Picker) dropdown(chosen []string) string {
	summary := p.Placeholder
	if len(chosen) > 0 {
		names := make([]string, len(chosen))
		for i, c := range chosen {
			names[i] = catalog.Humanize(c)
		}
		summary = strings.Join(names, ", ")
	}
	arrow := "▾"
	if p.Open {
		arrow = "▴"
	}
	line := theme.Body.Render(summary + " " + arrow)
	if !p.Open {
		return line
	}

	lines := []string{line}
	for i, opt := range p.Options {
		mark := "[ ] "
		if slices.Contains(chosen, opt) {
			mark = "[x] "
		}
		lines = append(lines, p.option(i, mark+opt, false))
	}
	return strings.Join(lines, "\n")
}

func (p Picker) option(i int, label string, chosen bool) string {
	prefix := " "
	if p.Focused && i == p.Cursor {
		prefix = "▸"
	}
	label = prefix + catalog.Humanize(label) + " "
	switch {
	case chosen:
		return theme.Chosen.Render(label) + " "
	case prefix != " ":
		return theme.Selected.Render(label) + " "
	default:
		return theme.Unselected.Render(label) + " "
	}
}
