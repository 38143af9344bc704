// Package history lists previously generated workouts and the sets that
// were completed on them.
package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/progress"
	"github.com/winterarc/winterarc/internal/router"
	"github.com/winterarc/winterarc/internal/screen"
	"github.com/winterarc/winterarc/internal/store"
	"github.com/winterarc/winterarc/internal/ui/components"
	"github.com/winterarc/winterarc/internal/ui/layout"
	"github.com/winterarc/winterarc/internal/ui/theme"
)

// recentLimit is how many plans the screen lists.
const recentLimit = 50

type historyLoadedMsg struct {
	Plans []store.PlanRecord
	Err   error
}

type setsLoadedMsg struct {
	PlanID string
	Sets   map[int]int
	Err    error
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Details")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
	}
}

// HistoryScreen lists stored plans, newest first. Expanding one loads its
// set events and shows the completed sets per exercise.
type HistoryScreen struct {
	repo     store.PlanRepo
	keys     keyMap
	plans    []store.PlanRecord
	sets     map[string]map[int]int
	selected int
	expanded map[string]bool
	loaded   bool
	err      error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(repo store.PlanRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		keys:     defaultKeyMap(),
		sets:     make(map[string]map[int]int),
		expanded: make(map[string]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		plans, err := s.repo.RecentPlans(context.Background(), recentLimit)
		return historyLoadedMsg{Plans: plans, Err: err}
	}
}

func (s *HistoryScreen) loadSets(planID string) tea.Cmd {
	return func() tea.Msg {
		events, err := s.repo.SetEvents(context.Background(), planID)
		if err != nil {
			return setsLoadedMsg{PlanID: planID, Err: err}
		}
		return setsLoadedMsg{PlanID: planID, Sets: store.FinalSets(events)}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(s.keys.Toggle, s.keys.Up, s.keys.Back)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.plans, s.err = msg.Plans, msg.Err
		s.loaded = true

	case setsLoadedMsg:
		// A failed lookup leaves the plan without set counts.
		if msg.Err == nil {
			s.sets[msg.PlanID] = msg.Sets
		}

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, s.keys.Up):
			s.selected = max(s.selected-1, 0)
		case key.Matches(msg, s.keys.Down):
			s.selected = max(min(s.selected+1, len(s.plans)-1), 0)
		case key.Matches(msg, s.keys.Toggle):
			return s, s.toggle()
		}
	}
	return s, nil
}

func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.plans) {
		return nil
	}
	id := s.plans[s.selected].ID
	s.expanded[id] = !s.expanded[id]
	if _, ok := s.sets[id]; s.expanded[id] && !ok {
		return s.loadSets(id)
	}
	return nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := func(text string, style lipgloss.Style) string {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(text))
	}
	switch {
	case s.err != nil:
		return center("Error: "+s.err.Error(), lipgloss.NewStyle().Foreground(theme.Error))
	case !s.loaded:
		return center("Loading history...", theme.Label)
	case len(s.plans) == 0:
		return center("No workouts yet. Accept and begin!", theme.Hint)
	}

	cw := layout.ColumnWidth(width)
	var blocks []string
	for i, p := range s.plans {
		block := s.row(p, i == s.selected)
		if s.expanded[p.ID] {
			block = lipgloss.JoinVertical(lipgloss.Left, block, s.detail(p, cw-4))
		}
		if i == s.selected {
			block = theme.CardFocused.Width(cw).Render(block)
		} else {
			block = lipgloss.NewStyle().Padding(0, 2).Width(cw).Render(block)
		}
		blocks = append(blocks, block)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, window(blocks, s.selected, height))
}

func (s *HistoryScreen) row(p store.PlanRecord, selected bool) string {
	muscles := make([]string, len(p.Muscles))
	for i, m := range p.Muscles {
		muscles[i] = catalog.Humanize(m)
	}
	prefix, style := "  ", theme.Unselected
	if selected {
		prefix, style = "▸ ", theme.Selected
	}
	return style.Render(fmt.Sprintf("%s%s  %-10s  %-28s  %-12s", prefix,
		p.Timestamp.Local().Format("Jan 02 15:04"),
		catalog.Humanize(p.WorkoutType), strings.Join(muscles, ", "),
		catalog.Humanize(p.Goal))) +
		theme.Label.Render(fmt.Sprintf("%d exercises", len(p.Exercises)))
}

func (s *HistoryScreen) detail(p store.PlanRecord, width int) string {
	sets, loaded := s.sets[p.ID]
	lines := make([]string, 0, len(p.Exercises))
	for i, e := range p.Exercises {
		info := theme.Label.Render(fmt.Sprintf("    %02d  %-24s %3d %-7s rest %3ds  tempo %s",
			i+1, catalog.Humanize(e.Name), e.Amount, e.Unit, e.Rest, e.Tempo))
		lines = append(lines, info)
		if !loaded {
			continue
		}
		done := sets[i]
		bar := components.ProgressBar{
			Label:   "        Sets",
			Percent: float64(done) / float64(progress.MaxSets),
			Counter: fmt.Sprintf("%d / %d", done, progress.MaxSets),
			Width:   width,
		}
		lines = append(lines, bar.View())
	}
	return strings.Join(lines, "\n")
}

// window keeps the selected block on screen by dropping whole blocks from
// the top.
func window(blocks []string, selected, height int) string {
	start := 0
	for start < selected {
		used := 0
		for _, b := range blocks[start : selected+1] {
			used += lipgloss.Height(b)
		}
		if used <= height {
			break
		}
		start++
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks[start:]...)
}
