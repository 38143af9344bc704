package progress

// MaxSets is the number of work sets tracked per exercise.
const MaxSets = 5

// Tracker counts completed work sets for one exercise card.
// The zero value is a fresh tracker.
type Tracker struct {
	setsCompleted int
}

// SetsCompleted returns the number of sets marked done.
func (t *Tracker) SetsCompleted() int {
	return t.setsCompleted
}

// MaxSets returns the number of sets the tracker counts up to.
func (t *Tracker) MaxSets() int {
	return MaxSets
}

// IsComplete reports whether every set has been completed.
func (t *Tracker) IsComplete() bool {
	return t.setsCompleted == MaxSets
}

// Increment marks one more set done. It reports whether the count changed;
// a complete tracker ignores further increments.
func (t *Tracker) Increment() bool {
	if t.IsComplete() {
		return false
	}
	t.setsCompleted++
	return true
}

// Reset clears all completed sets.
func (t *Tracker) Reset() {
	t.setsCompleted = 0
}

// Fraction returns completion in the range [0, 1] for progress bars.
func (t *Tracker) Fraction() float64 {
	return float64(t.setsCompleted) / float64(MaxSets)
}
