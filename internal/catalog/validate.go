package catalog

import (
	"fmt"
	"strings"
)

// validateDocument performs the cross-reference checks the schema cannot
// express. Returns a combined error describing all problems found, or nil.
func validateDocument(doc document) error {
	var errs []string

	muscles := make(map[string]bool)
	for _, e := range doc.Exercises {
		for _, m := range e.Muscles {
			muscles[m] = true
		}
	}

	// Workout types and their groups
	types := make(map[WorkoutType]bool, len(doc.Workouts))
	for _, w := range doc.Workouts {
		if types[w.Type] {
			errs = append(errs, fmt.Sprintf("duplicate workout type: %q", w.Type))
		}
		types[w.Type] = true

		groups := make(map[string]bool, len(w.Groups))
		for _, g := range w.Groups {
			if groups[g.Name] {
				errs = append(errs, fmt.Sprintf("workout type %q has duplicate group %q", w.Type, g.Name))
			}
			groups[g.Name] = true
			for _, m := range g.Targets() {
				if !muscles[m] {
					errs = append(errs, fmt.Sprintf("group %q of %q targets %q, which no exercise trains", g.Name, w.Type, m))
				}
			}
		}
		if w.Type == Individual {
			for _, g := range w.Groups {
				if len(g.Targets()) != 1 || g.Targets()[0] != g.Name {
					errs = append(errs, fmt.Sprintf("individual group %q must target only itself", g.Name))
				}
			}
		}
	}
	if !types[Individual] {
		errs = append(errs, fmt.Sprintf("workout type %q is required", Individual))
	}

	// Schemes
	goals := make(map[Goal]bool, len(doc.Schemes))
	for _, s := range doc.Schemes {
		if goals[s.Goal] {
			errs = append(errs, fmt.Sprintf("duplicate goal: %q", s.Goal))
		}
		goals[s.Goal] = true
		if s.MinReps() == 0 {
			errs = append(errs, fmt.Sprintf("goal %q has a zero rep bound", s.Goal))
		}
		if c, a := s.Slots(); c+a == 0 {
			errs = append(errs, fmt.Sprintf("goal %q yields no exercises", s.Goal))
		}
	}

	// Exercises
	names := make(map[string]bool, len(doc.Exercises))
	for _, e := range doc.Exercises {
		if names[e.Name] {
			errs = append(errs, fmt.Sprintf("duplicate exercise: %q", e.Name))
		}
		names[e.Name] = true
		if len(e.Paragraphs()) == 0 {
			errs = append(errs, fmt.Sprintf("exercise %q has an empty description", e.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
