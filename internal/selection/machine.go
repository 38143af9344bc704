package selection

import (
	"fmt"
	"slices"
	"time"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/notify"
)

// ScrollDelay gives the results time to mount before they are scrolled into view.
const ScrollDelay = 100 * time.Millisecond

// EventKind identifies a presentation event emitted by the Machine.
type EventKind int

const (
	// EventSelectorClosed asks the muscle selector to close.
	EventSelectorClosed EventKind = iota + 1
	// EventResultsReset reports that generated results were discarded.
	EventResultsReset
	// EventPlanBuilt reports a successful submission.
	EventPlanBuilt
	// EventScrollToResults asks the view to bring the results into view.
	EventScrollToResults
)

func (k EventKind) String() string {
	switch k {
	case EventSelectorClosed:
		return "selector-closed"
	case EventResultsReset:
		return "results-reset"
	case EventPlanBuilt:
		return "plan-built"
	case EventScrollToResults:
		return "scroll-to-results"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is delivered to the EventSink. Submission is the number of
// successful submissions at the time the event was raised.
type Event struct {
	Kind       EventKind
	Submission int
}

// EventSink receives presentation events. It may ignore any of them.
type EventSink func(Event)

// PlanBuilder turns a finalized selection into the current workout.
type PlanBuilder interface {
	BuildPlan(sel Selection) error
	// Reset discards generated results and their progress.
	Reset()
}

// Scheduler delivers ev to the presentation layer after d. Delivery is
// fire-and-forget.
type Scheduler interface {
	After(d time.Duration, ev Event)
}

// Options wires a Machine to its collaborators. Only Builder is required.
type Options struct {
	Builder   PlanBuilder
	Notifier  notify.Notifier
	Scheduler Scheduler
	Events    EventSink
}

// Machine holds the wizard's selection and enforces the selection rules.
// It is not safe for concurrent use; intents are processed one at a time.
type Machine struct {
	sel         Selection
	previous    *Selection
	submissions int

	builder   PlanBuilder
	notifier  notify.Notifier
	scheduler Scheduler
	events    EventSink
}

// New creates a Machine with an empty selection.
func New(opts Options) *Machine {
	if opts.Builder == nil {
		panic("selection: nil PlanBuilder")
	}
	return &Machine{
		builder:   opts.Builder,
		notifier:  opts.Notifier,
		scheduler: opts.Scheduler,
		events:    opts.Events,
	}
}

// Selection returns a copy of the current selection.
func (m *Machine) Selection() Selection {
	return m.sel.Clone()
}

// Previous returns a copy of the last successfully submitted selection.
func (m *Machine) Previous() (Selection, bool) {
	if m.previous == nil {
		return Selection{}, false
	}
	return m.previous.Clone(), true
}

// Submissions returns the number of successful submissions.
func (m *Machine) Submissions() int {
	return m.submissions
}

// ChooseWorkoutType sets the workout type and clears the muscle selection,
// since muscle options depend on the type.
func (m *Machine) ChooseWorkoutType(t catalog.WorkoutType) {
	m.sel.WorkoutType = t
	m.sel.Muscles = nil
}

// ChooseGoal sets the goal.
func (m *Machine) ChooseGoal(goal catalog.Goal) {
	m.sel.Goal = goal
}

// ToggleMuscle adds or removes group. Removing is always allowed. Adding
// to a full selection is rejected. For every type except individual the
// group replaces the selection.
func (m *Machine) ToggleMuscle(group string) error {
	if i := slices.Index(m.sel.Muscles, group); i >= 0 {
		m.sel.Muscles = slices.Delete(slices.Clone(m.sel.Muscles), i, i+1)
		return nil
	}

	if len(m.sel.Muscles) >= MaxMuscles {
		return m.reject(newValidationError(notify.Warning, ErrMaxMusclesExceeded))
	}

	if m.sel.WorkoutType != catalog.Individual {
		m.sel.Muscles = []string{group}
		m.emit(EventSelectorClosed)
		return nil
	}

	m.sel.Muscles = append(slices.Clone(m.sel.Muscles), group)
	if len(m.sel.Muscles) == MaxMuscles {
		m.emit(EventSelectorClosed)
	}
	return nil
}

// Submit validates the selection and hands it to the plan builder. A
// resubmission first resets the previously generated results.
func (m *Machine) Submit() error {
	if err := m.sel.Validate(); err != nil {
		return m.reject(newValidationError(notify.Error, err))
	}

	if m.previous != nil {
		m.Reset()
		m.notify(notify.Info, "Generating new workout...")
	}

	snapshot := m.sel.Clone()
	m.previous = &snapshot

	if err := m.builder.BuildPlan(m.sel.Clone()); err != nil {
		m.notify(notify.Error, "Could not generate a workout for this selection")
		return fmt.Errorf("build plan: %w", err)
	}

	m.submissions++
	m.emit(EventPlanBuilt)
	if m.scheduler != nil {
		m.scheduler.After(ScrollDelay, Event{Kind: EventScrollToResults, Submission: m.submissions})
	}
	return nil
}

// Reset discards generated results and their progress. The selection
// itself is kept so the user can regenerate.
func (m *Machine) Reset() {
	m.builder.Reset()
	m.emit(EventResultsReset)
}

func (m *Machine) reject(err *ValidationError) error {
	m.notify(err.Kind, err.Message())
	return err
}

func (m *Machine) notify(kind notify.Kind, msg string) {
	if m.notifier != nil {
		m.notifier.Notify(kind, msg)
	}
}

func (m *Machine) emit(kind EventKind) {
	if m.events != nil {
		m.events(Event{Kind: kind, Submission: m.submissions})
	}
}
