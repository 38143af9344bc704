package generator

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/winterarc/winterarc/internal/selection"
)

// scrollMsg is a delayed selection event coming back from the scheduler.
type scrollMsg selection.Event

// tickScheduler implements selection.Scheduler with tea.Tick. The machine
// schedules from inside Update, so ticks are queued until Flush.
type tickScheduler struct {
	pending []tea.Cmd
}

var _ selection.Scheduler = (*tickScheduler)(nil)

func (s *tickScheduler) After(d time.Duration, ev selection.Event) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return scrollMsg(ev)
	}))
}

func (s *tickScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
