package plan

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/selection"
)

// MaxTimeUnderTension caps seconds per set for rep-based exercises:
// reps times the tempo's total seconds never exceeds it.
const MaxTimeUnderTension = 85

// AccessoryRepBonus is added to the rep count of accessory exercises.
const AccessoryRepBonus = 4

// Bounds for timed exercises, in seconds. Durations are rounded up to a
// multiple of durationStep.
const (
	minDuration  = 20
	durationSpan = 40
	durationStep = 5
)

// ErrNoExercises is returned when a selection yields an empty plan.
var ErrNoExercises = errors.New("no exercises match the selection")

// Exercise is one card of a generated workout.
type Exercise struct {
	catalog.Exercise

	// Muscle is the muscle the exercise was picked for.
	Muscle string
	// Amount is the rep count or the duration in seconds, per Unit.
	Amount int
	// Rest is the rest period in seconds.
	Rest  int
	Tempo string
}

// AmountLabel returns the amount with its unit, e.g. "12 reps".
func (e Exercise) AmountLabel() string {
	return fmt.Sprintf("%d %s", e.Amount, e.Unit)
}

// MusclesLabel returns the trained muscles joined for display.
func (e Exercise) MusclesLabel() string {
	return strings.Join(e.Muscles, " & ")
}

// Generate picks exercises for sel from c. The same rng state always
// yields the same plan.
func Generate(c *catalog.Catalog, sel selection.Selection, rng *rand.Rand) ([]Exercise, error) {
	scheme, err := c.Scheme(sel.Goal)
	if err != nil {
		return nil, err
	}
	muscles, err := c.TargetMuscles(sel.WorkoutType, sel.Muscles)
	if err != nil {
		return nil, err
	}
	if len(muscles) == 0 {
		return nil, ErrNoExercises
	}
	rng.Shuffle(len(muscles), func(i, j int) { muscles[i], muscles[j] = muscles[j], muscles[i] })

	pool := make([]catalog.Exercise, 0, len(c.Exercises()))
	for _, e := range c.Exercises() {
		if e.Environment != catalog.EnvHome {
			pool = append(pool, e)
		}
	}
	tempos := c.Tempos()

	var (
		out  []Exercise
		used = make(map[string]bool)
	)
	for i, slot := range slots(scheme) {
		muscle := muscles[i%len(muscles)]

		candidates := filter(pool, func(e catalog.Exercise) bool {
			return !used[e.Name] && e.Type == slot && e.Targets(muscle)
		})
		if len(candidates) == 0 {
			candidates = filter(pool, func(e catalog.Exercise) bool {
				return !used[e.Name] && e.Type != slot && trainsAny(e, muscles)
			})
		}
		if len(candidates) == 0 {
			continue
		}

		e := candidates[rng.IntN(len(candidates))]
		used[e.Name] = true

		tempo := tempos[rng.IntN(len(tempos))]
		out = append(out, Exercise{
			Exercise: e,
			Muscle:   muscle,
			Amount:   amount(e, scheme, tempo, rng),
			Rest:     scheme.RestFor(e.Type),
			Tempo:    tempo,
		})
	}

	if len(out) == 0 {
		return nil, ErrNoExercises
	}
	return out, nil
}

// slots lists the exercise type of each plan position: compound work first.
func slots(s catalog.Scheme) []catalog.ExerciseType {
	compound, accessory := s.Slots()
	out := make([]catalog.ExerciseType, 0, compound+accessory)
	for range compound {
		out = append(out, catalog.TypeCompound)
	}
	for range accessory {
		out = append(out, catalog.TypeAccessory)
	}
	return out
}

func amount(e catalog.Exercise, s catalog.Scheme, tempo string, rng *rand.Rand) int {
	if e.Unit == catalog.UnitSeconds {
		d := minDuration + rng.IntN(durationSpan)
		return (d + durationStep - 1) / durationStep * durationStep
	}

	reps := s.MinReps()
	if span := s.MaxReps() - s.MinReps(); span > 0 {
		reps += rng.IntN(span)
	}
	if e.Type == catalog.TypeAccessory {
		reps += AccessoryRepBonus
	}
	if sum := TempoSeconds(tempo); sum > 0 && sum*reps > MaxTimeUnderTension {
		reps = MaxTimeUnderTension / sum
	}
	return reps
}

// TempoSeconds sums the phases of a tempo such as "3 0 1".
func TempoSeconds(tempo string) int {
	var sum int
	for _, f := range strings.Fields(tempo) {
		if n, err := strconv.Atoi(f); err == nil {
			sum += n
		}
	}
	return sum
}

func filter(pool []catalog.Exercise, keep func(catalog.Exercise) bool) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func trainsAny(e catalog.Exercise, muscles []string) bool {
	for _, m := range muscles {
		if e.Targets(m) {
			return true
		}
	}
	return false
}
