package store

import (
	"context"
	"time"
)

// SetAction is what happened to an exercise card's set count.
type SetAction string

const (
	SetCompleted SetAction = "complete"
	SetReset     SetAction = "reset"
)

// PlanExercise is one persisted exercise card.
type PlanExercise struct {
	Name   string
	Type   string
	Muscle string
	Amount int // reps or seconds, depending on Unit
	Unit   string
	Rest   int
	Tempo  string
}

// PlanRecord is a generated workout as stored in history.
type PlanRecord struct {
	ID             string
	Timestamp      time.Time
	WorkoutType    string
	Goal           string
	Muscles        []string
	CatalogVersion string
	Exercises      []PlanExercise
}

// SetEventData captures a single change to a card's completed sets.
type SetEventData struct {
	PlanID        string
	ExerciseIndex int
	Exercise      string
	Action        SetAction
	SetsCompleted int // count after the change
}

// SetEventRecord is a persisted SetEventData.
type SetEventRecord struct {
	ID        int
	Timestamp time.Time
	SetEventData
}

// PlanRepo persists generated workouts and their set progress.
type PlanRepo interface {
	// SavePlan stores a generated workout. A zero Timestamp is set to now.
	SavePlan(ctx context.Context, plan PlanRecord) error

	// RecentPlans returns up to limit plans, newest first. A limit of
	// zero or less returns every plan.
	RecentPlans(ctx context.Context, limit int) ([]PlanRecord, error)

	// AppendSetEvent records a set change for a plan.
	AppendSetEvent(ctx context.Context, data SetEventData) error

	// SetEvents returns a plan's set changes in the order they were recorded.
	SetEvents(ctx context.Context, planID string) ([]SetEventRecord, error)
}

// FinalSets folds set events into the last known completed-set count per
// exercise index.
func FinalSets(events []SetEventRecord) map[int]int {
	out := make(map[int]int)
	for _, ev := range events {
		out[ev.ExerciseIndex] = ev.SetsCompleted
	}
	return out
}
