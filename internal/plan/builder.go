// Package plan turns a submitted selection into a workout and owns the
// per-card progress of the workout currently on screen.
package plan

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/notify"
	"github.com/winterarc/winterarc/internal/progress"
	"github.com/winterarc/winterarc/internal/selection"
	"github.com/winterarc/winterarc/internal/store"
)

// Workout is a generated plan.
type Workout struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	Selection      selection.Selection
	CatalogVersion string
	Exercises      []Exercise
}

// Record converts the workout to its stored form.
func (w Workout) Record() store.PlanRecord {
	rec := store.PlanRecord{
		ID:             w.ID.String(),
		Timestamp:      w.CreatedAt,
		WorkoutType:    string(w.Selection.WorkoutType),
		Goal:           string(w.Selection.Goal),
		Muscles:        slices.Clone(w.Selection.Muscles),
		CatalogVersion: w.CatalogVersion,
	}
	for _, e := range w.Exercises {
		rec.Exercises = append(rec.Exercises, store.PlanExercise{
			Name:   e.Name,
			Type:   string(e.Type),
			Muscle: e.Muscle,
			Amount: e.Amount,
			Unit:   string(e.Unit),
			Rest:   e.Rest,
			Tempo:  e.Tempo,
		})
	}
	return rec
}

// Options configures a Builder. Only Catalog is required.
type Options struct {
	Catalog *catalog.Catalog
	// Rand drives exercise selection. A time-seeded source is used when nil.
	Rand *rand.Rand
	// Repo records plans and set changes when set.
	Repo store.PlanRepo
	// Notifier is told about recording failures.
	Notifier notify.Notifier
	Logger   *slog.Logger
	Ctx      context.Context
}

// Builder implements selection.PlanBuilder. It holds at most one current
// workout together with one progress tracker per exercise card.
type Builder struct {
	catalog  *catalog.Catalog
	rng      *rand.Rand
	repo     store.PlanRepo
	notifier notify.Notifier
	log      *slog.Logger
	ctx      context.Context
	now      func() time.Time

	current  *Workout
	trackers []progress.Tracker
}

var _ selection.PlanBuilder = (*Builder)(nil)

// NewBuilder creates a Builder with no current workout.
func NewBuilder(opts Options) *Builder {
	if opts.Catalog == nil {
		panic("plan: nil catalog")
	}
	b := &Builder{
		catalog:  opts.Catalog,
		rng:      opts.Rand,
		repo:     opts.Repo,
		notifier: opts.Notifier,
		log:      opts.Logger,
		ctx:      opts.Ctx,
		now:      time.Now,
	}
	if b.rng == nil {
		seed := uint64(time.Now().UnixNano())
		b.rng = rand.New(rand.NewPCG(seed, seed>>32))
	}
	if b.log == nil {
		b.log = slog.New(slog.DiscardHandler)
	}
	if b.ctx == nil {
		b.ctx = context.Background()
	}
	return b
}

// BuildPlan generates a workout for sel and makes it current with fresh
// trackers. The previous workout, if any, is replaced.
func (b *Builder) BuildPlan(sel selection.Selection) error {
	exercises, err := Generate(b.catalog, sel, b.rng)
	if err != nil {
		return err
	}

	b.current = &Workout{
		ID:             uuid.New(),
		CreatedAt:      b.now().UTC(),
		Selection:      sel.Clone(),
		CatalogVersion: b.catalog.Version(),
		Exercises:      exercises,
	}
	b.trackers = make([]progress.Tracker, len(exercises))

	b.log.Info("workout generated",
		"id", b.current.ID,
		"type", sel.WorkoutType,
		"goal", sel.Goal,
		"exercises", len(exercises))

	if b.repo != nil {
		if err := b.repo.SavePlan(b.ctx, b.current.Record()); err != nil {
			b.recordFailed("save plan", err)
		}
	}
	return nil
}

// Reset discards the current workout and its trackers.
func (b *Builder) Reset() {
	b.current = nil
	b.trackers = nil
}

// Current returns the current workout.
func (b *Builder) Current() (Workout, bool) {
	if b.current == nil {
		return Workout{}, false
	}
	w := *b.current
	w.Selection = w.Selection.Clone()
	w.Exercises = slices.Clone(w.Exercises)
	return w, true
}

// Tracker returns the progress of card i.
func (b *Builder) Tracker(i int) (progress.Tracker, bool) {
	if i < 0 || i >= len(b.trackers) {
		return progress.Tracker{}, false
	}
	return b.trackers[i], true
}

// IncrementSet marks one more set of card i done. It reports whether the
// count changed.
func (b *Builder) IncrementSet(i int) bool {
	if i < 0 || i >= len(b.trackers) {
		return false
	}
	if !b.trackers[i].Increment() {
		return false
	}
	b.recordSet(i, store.SetCompleted)
	return true
}

// ResetProgress clears card i. It reports whether anything changed; a
// card with no completed sets is left alone.
func (b *Builder) ResetProgress(i int) bool {
	if i < 0 || i >= len(b.trackers) || b.trackers[i].SetsCompleted() == 0 {
		return false
	}
	b.trackers[i].Reset()
	b.recordSet(i, store.SetReset)
	return true
}

func (b *Builder) recordSet(i int, action store.SetAction) {
	if b.repo == nil {
		return
	}
	err := b.repo.AppendSetEvent(b.ctx, store.SetEventData{
		PlanID:        b.current.ID.String(),
		ExerciseIndex: i,
		Exercise:      b.current.Exercises[i].Name,
		Action:        action,
		SetsCompleted: b.trackers[i].SetsCompleted(),
	})
	if err != nil {
		b.recordFailed("save set event", err)
	}
}

func (b *Builder) recordFailed(what string, err error) {
	b.log.Warn("history not saved", "op", what, "error", err)
	if b.notifier != nil {
		b.notifier.Notify(notify.Warning, "Could not save workout history")
	}
}
