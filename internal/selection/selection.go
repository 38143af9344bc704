package selection

import (
	"slices"

	"github.com/winterarc/winterarc/internal/catalog"
)

// MaxMuscles is the most muscle groups a selection can hold.
const MaxMuscles = 3

// Selection is the user's in-progress choice of workout type, muscle
// groups and goal. Muscles keeps insertion order and has no duplicates.
type Selection struct {
	WorkoutType catalog.WorkoutType
	Muscles     []string
	Goal        catalog.Goal
}

// Clone returns a deep copy; the muscle slice is never shared.
func (s Selection) Clone() Selection {
	s.Muscles = slices.Clone(s.Muscles)
	return s
}

// HasMuscle reports whether group is selected.
func (s Selection) HasMuscle(group string) bool {
	return slices.Contains(s.Muscles, group)
}

// Submittable reports whether every field is filled in.
func (s Selection) Submittable() bool {
	return s.WorkoutType != "" && len(s.Muscles) > 0 && s.Goal != ""
}

// Validate runs the submission checks in order and returns the first failure.
func (s Selection) Validate() error {
	switch {
	case s.WorkoutType == "":
		return ErrMissingWorkoutType
	case len(s.Muscles) == 0:
		return ErrMissingMuscleSelection
	case s.Goal == "":
		return ErrMissingGoal
	}
	return nil
}
