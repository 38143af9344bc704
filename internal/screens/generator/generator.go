// Package generator is the workout wizard: pick a workout type, muscle
// groups and a goal, then formulate a plan and track its sets.
package generator

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/notify"
	"github.com/winterarc/winterarc/internal/plan"
	"github.com/winterarc/winterarc/internal/screen"
	"github.com/winterarc/winterarc/internal/selection"
	"github.com/winterarc/winterarc/internal/store"
	"github.com/winterarc/winterarc/internal/ui/components"
	"github.com/winterarc/winterarc/internal/ui/layout"
)

const (
	noTypeHint        = "Pick a workout type first"
	musclePlaceholder = "Select muscle groups"
)

type focus int

const (
	focusType focus = iota
	focusMuscles
	focusGoal
	focusFormulate
	focusResults
)

// Options configures the screen. Catalog is required.
type Options struct {
	Catalog *catalog.Catalog
	// Repo records generated plans and set progress when set.
	Repo store.PlanRepo
	// Notifier receives every notification in addition to the toasts.
	Notifier notify.Notifier
	Logger   *slog.Logger
	Rand     *rand.Rand
}

// Screen drives a selection.Machine from key presses and renders the
// wizard and the current workout in one scrollable page.
type Screen struct {
	catalog *catalog.Catalog
	machine *selection.Machine
	builder *plan.Builder
	toasts  *components.Toasts
	sched   *tickScheduler
	keys    keyMap
	log     *slog.Logger

	types     components.Picker
	muscles   components.Picker
	goals     components.Picker
	formulate components.Button

	focus focus
	card  int

	viewport      viewport.Model
	scrollPending bool
	followFocus   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the generator screen with an empty selection.
func New(opts Options) *Screen {
	s := &Screen{
		catalog: opts.Catalog,
		toasts:  components.NewToasts(),
		sched:   &tickScheduler{},
		keys:    defaultKeyMap(),
		log:     opts.Logger,
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}

	notifier := notify.Multi(s.toasts, opts.Notifier)
	s.builder = plan.NewBuilder(plan.Options{
		Catalog:  opts.Catalog,
		Rand:     opts.Rand,
		Repo:     opts.Repo,
		Notifier: notifier,
		Logger:   s.log,
	})
	s.machine = selection.New(selection.Options{
		Builder:   s.builder,
		Notifier:  notifier,
		Scheduler: s.sched,
		Events:    s.handleEvent,
	})

	var types []string
	for _, t := range opts.Catalog.WorkoutTypes() {
		types = append(types, string(t))
	}
	var goals []string
	for _, g := range opts.Catalog.Goals() {
		goals = append(goals, string(g))
	}

	s.types = components.NewPicker("01", "Pick your poison", "Select the workout you wish to endure.", types)
	s.muscles = components.NewPicker("02", "Lock on targets", "Select the muscles judged for annihilation.", nil)
	s.muscles.Collapsible = true
	s.muscles.Placeholder = noTypeHint
	s.goals = components.NewPicker("03", "Become Juggernaut", "Select your ultimate objective.", goals)
	s.formulate = components.NewButton("Formulate", func() tea.Cmd {
		s.submit()
		return nil
	})

	s.viewport = viewport.New()
	s.viewport.MouseWheelEnabled = true

	s.setFocus(focusType)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Generate Your Plan"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFromBindings(
		s.keys.Next, s.keys.Up, s.keys.Left, s.keys.Choose,
		s.keys.CompleteSet, s.keys.ResetProgress,
	)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case scrollMsg:
		s.scroll(selection.Event(msg))
	case components.ToastExpiredMsg:
		s.toasts.Update(msg)
	case tea.MouseWheelMsg:
		s.viewport, cmd = s.viewport.Update(msg)
	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)
	}
	return s, tea.Batch(cmd, s.toasts.Flush(), s.sched.Flush())
}

// scroll brings the results into view. Events from an earlier submission
// are dropped so a quick resubmit never scrolls to stale results.
func (s *Screen) scroll(ev selection.Event) {
	if ev.Kind != selection.EventScrollToResults || ev.Submission != s.machine.Submissions() {
		return
	}
	if _, ok := s.builder.Current(); !ok {
		return
	}
	s.card = 0
	s.setFocus(focusResults)
	s.scrollPending = true
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Next):
		s.setFocus(s.cycle(1))
	case key.Matches(msg, s.keys.Prev):
		s.setFocus(s.cycle(-1))
	case key.Matches(msg, s.keys.PageDown):
		s.viewport.PageDown()
	case key.Matches(msg, s.keys.PageUp):
		s.viewport.PageUp()
	case key.Matches(msg, s.keys.Up):
		s.vertical(-1)
	case key.Matches(msg, s.keys.Down):
		s.vertical(1)
	case key.Matches(msg, s.keys.Left):
		s.horizontal(-1)
	case key.Matches(msg, s.keys.Right):
		s.horizontal(1)
	case key.Matches(msg, s.keys.Choose):
		return s.choose(msg)
	case key.Matches(msg, s.keys.CompleteSet):
		if s.focus == focusResults {
			s.builder.IncrementSet(s.card)
		}
	case key.Matches(msg, s.keys.ResetProgress):
		if s.focus == focusResults {
			s.builder.ResetProgress(s.card)
		}
	}
	return nil
}

// lastFocus is the furthest section reachable: the results only exist
// once a workout has been generated.
func (s *Screen) lastFocus() focus {
	if _, ok := s.builder.Current(); ok {
		return focusResults
	}
	return focusFormulate
}

func (s *Screen) cycle(dir int) focus {
	n := int(s.lastFocus()) + 1
	return focus(((int(s.focus)+dir)%n + n) % n)
}

func (s *Screen) vertical(dir int) {
	switch {
	case s.focus == focusMuscles && s.muscles.Open:
		s.muscles.Move(dir)
	case s.focus == focusResults:
		w, _ := s.builder.Current()
		next := s.card + dir
		switch {
		case next < 0:
			s.setFocus(focusFormulate)
		case next < len(w.Exercises):
			s.card = next
			s.followFocus = true
		}
	default:
		next := s.focus + focus(dir)
		if next >= focusType && next <= s.lastFocus() {
			if next == focusResults {
				s.card = 0
			}
			s.setFocus(next)
		}
	}
}

func (s *Screen) horizontal(dir int) {
	switch s.focus {
	case focusType:
		s.types.Move(dir)
	case focusGoal:
		s.goals.Move(dir)
	case focusMuscles:
		if s.muscles.Open {
			s.muscles.Move(dir)
		}
	}
}

func (s *Screen) choose(msg tea.KeyPressMsg) tea.Cmd {
	switch s.focus {
	case focusType:
		if t, ok := s.types.Current(); ok {
			s.chooseType(catalog.WorkoutType(t))
		}
	case focusMuscles:
		switch {
		case len(s.muscles.Options) == 0:
		case !s.muscles.Open:
			s.muscles.Open = true
		default:
			if g, ok := s.muscles.Current(); ok {
				// Rejections reach the user through the notifier.
				_ = s.machine.ToggleMuscle(g)
			}
		}
	case focusGoal:
		if g, ok := s.goals.Current(); ok {
			s.machine.ChooseGoal(catalog.Goal(g))
		}
	case focusFormulate:
		var cmd tea.Cmd
		s.formulate, cmd = s.formulate.Update(msg)
		return cmd
	case focusResults:
		s.builder.IncrementSet(s.card)
	}
	return nil
}

func (s *Screen) chooseType(t catalog.WorkoutType) {
	s.machine.ChooseWorkoutType(t)
	s.muscles.SetOptions(s.catalog.MuscleOptions(t))
	s.muscles.Open = false
	s.muscles.Placeholder = musclePlaceholder
}

func (s *Screen) submit() {
	err := s.machine.Submit()
	var verr *selection.ValidationError
	if err != nil && !errors.As(err, &verr) {
		s.log.Error("workout generation failed", "selection", s.machine.Selection(), "error", err)
	}
}

// handleEvent reacts to presentation events from the machine.
func (s *Screen) handleEvent(ev selection.Event) {
	switch ev.Kind {
	case selection.EventSelectorClosed:
		s.muscles.Open = false
	case selection.EventResultsReset:
		s.card = 0
		if s.focus == focusResults {
			s.setFocus(focusFormulate)
		}
	case selection.EventPlanBuilt:
		s.card = 0
	}
}

func (s *Screen) setFocus(f focus) {
	s.focus = f
	if f != focusMuscles {
		s.muscles.Open = false
	}
	s.types.Focused = f == focusType
	s.muscles.Focused = f == focusMuscles
	s.goals.Focused = f == focusGoal
	s.formulate.Focused = f == focusFormulate

	inResults := f == focusResults
	s.keys.CompleteSet.SetEnabled(inResults)
	s.keys.ResetProgress.SetEnabled(inResults)
	s.followFocus = true
}
