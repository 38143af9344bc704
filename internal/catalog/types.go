package catalog

import "strings"

// WorkoutType identifies a top-level workout category ("poison").
type WorkoutType string

// Individual is the only workout type that allows picking several muscle
// groups for one generation.
const Individual WorkoutType = "individual"

// Goal identifies a training scheme preset.
type Goal string

// ExerciseType distinguishes main lifts from supporting work.
type ExerciseType string

const (
	TypeCompound  ExerciseType = "compound"
	TypeAccessory ExerciseType = "accessory"
)

// Unit is how an exercise's work is measured.
type Unit string

const (
	UnitReps    Unit = "reps"
	UnitSeconds Unit = "seconds"
)

// Environment says where an exercise can be performed.
type Environment string

const (
	EnvGym  Environment = "gym"
	EnvHome Environment = "home"
	EnvBoth Environment = "both"
)

// descriptionSeparator splits an exercise description into paragraphs.
const descriptionSeparator = "___"

// MuscleGroup is one selectable option under a workout type. For the
// individual type a group is a single muscle; for the splits it bundles
// several muscles (e.g. "push" → chest, triceps, shoulders).
type MuscleGroup struct {
	Name    string   `yaml:"name" json:"name"`
	Muscles []string `yaml:"muscles,omitempty" json:"muscles,omitempty"`
}

// Targets returns the muscles the group trains. A group without an
// explicit list trains the muscle it is named after.
func (g MuscleGroup) Targets() []string {
	if len(g.Muscles) == 0 {
		return []string{g.Name}
	}
	return g.Muscles
}

// Workout is a workout type and its selectable muscle groups, in display order.
type Workout struct {
	Type   WorkoutType   `yaml:"type" json:"type"`
	Groups []MuscleGroup `yaml:"groups" json:"groups"`
}

// Scheme holds the set/rep parameters behind a goal.
type Scheme struct {
	Goal     Goal  `yaml:"goal" json:"goal"`
	RepRange []int `yaml:"rep_range" json:"rep_range"` // [min, max]
	Ratio    []int `yaml:"ratio" json:"ratio"`         // [compound slots, accessory slots]
	Rest     []int `yaml:"rest" json:"rest"`           // seconds, [compound, accessory]
}

// MinReps returns the lower bound of the rep range.
func (s Scheme) MinReps() int { return min(s.RepRange[0], s.RepRange[1]) }

// MaxReps returns the upper bound of the rep range.
func (s Scheme) MaxReps() int { return max(s.RepRange[0], s.RepRange[1]) }

// Slots returns the number of compound and accessory exercises in a plan.
func (s Scheme) Slots() (compound, accessory int) { return s.Ratio[0], s.Ratio[1] }

// RestFor returns the rest period in seconds for the given exercise type.
func (s Scheme) RestFor(t ExerciseType) int {
	if t == TypeCompound {
		return s.Rest[0]
	}
	return s.Rest[1]
}

// Exercise is a single catalog entry.
type Exercise struct {
	Name        string       `yaml:"name" json:"name"`
	Type        ExerciseType `yaml:"type" json:"type"`
	Environment Environment  `yaml:"environment" json:"environment"`
	Muscles     []string     `yaml:"muscles" json:"muscles"`
	Unit        Unit         `yaml:"unit" json:"unit"`
	Description string       `yaml:"description" json:"description"`
}

// DisplayName returns the name with underscores replaced by spaces.
func (e Exercise) DisplayName() string {
	return Humanize(e.Name)
}

// Paragraphs splits the description into its display paragraphs.
func (e Exercise) Paragraphs() []string {
	parts := strings.Split(e.Description, descriptionSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Targets reports whether the exercise trains the given muscle.
func (e Exercise) Targets(muscle string) bool {
	for _, m := range e.Muscles {
		if m == muscle {
			return true
		}
	}
	return false
}

// Humanize turns a snake_case identifier into words.
func Humanize(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
