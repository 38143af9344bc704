package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterarc/winterarc/internal/catalog/catalogtest"
	"github.com/winterarc/winterarc/internal/notify"
	"github.com/winterarc/winterarc/internal/progress"
	"github.com/winterarc/winterarc/internal/selection"
	"github.com/winterarc/winterarc/internal/store"
)

// mockPlanRepo implements store.PlanRepo for testing.
type mockPlanRepo struct {
	plans  []store.PlanRecord
	events []store.SetEventData
	err    error
}

func (m *mockPlanRepo) SavePlan(_ context.Context, p store.PlanRecord) error {
	if m.err != nil {
		return m.err
	}
	m.plans = append(m.plans, p)
	return nil
}

func (m *mockPlanRepo) RecentPlans(_ context.Context, _ int) ([]store.PlanRecord, error) {
	return m.plans, m.err
}

func (m *mockPlanRepo) AppendSetEvent(_ context.Context, ev store.SetEventData) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *mockPlanRepo) SetEvents(_ context.Context, _ string) ([]store.SetEventRecord, error) {
	return nil, m.err
}

var pushChest = selection.Selection{WorkoutType: "push", Muscles: []string{"chest"}, Goal: "hypertrophy"}

func newTestBuilder(t *testing.T, repo store.PlanRepo, n notify.Notifier) *Builder {
	t.Helper()
	return NewBuilder(Options{
		Catalog:  catalogtest.New(t),
		Rand:     seeded(5),
		Repo:     repo,
		Notifier: n,
	})
}

func TestBuildPlanSetsCurrentWorkout(t *testing.T) {
	repo := &mockPlanRepo{}
	b := newTestBuilder(t, repo, nil)

	_, ok := b.Current()
	require.False(t, ok)

	require.NoError(t, b.BuildPlan(pushChest))

	w, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, pushChest, w.Selection)
	assert.Equal(t, "v0.1.0", w.CatalogVersion)
	require.Len(t, w.Exercises, 3)

	for i := range w.Exercises {
		tr, ok := b.Tracker(i)
		require.True(t, ok)
		assert.Zero(t, tr.SetsCompleted())
	}
	_, ok = b.Tracker(len(w.Exercises))
	assert.False(t, ok)

	require.Len(t, repo.plans, 1)
	rec := repo.plans[0]
	assert.Equal(t, w.ID.String(), rec.ID)
	assert.Equal(t, "push", rec.WorkoutType)
	assert.Equal(t, []string{"chest"}, rec.Muscles)
	require.Len(t, rec.Exercises, 3)
	assert.Equal(t, w.Exercises[0].Name, rec.Exercises[0].Name)
	assert.Equal(t, w.Exercises[0].Amount, rec.Exercises[0].Amount)
}

func TestBuildPlanCopiesSelection(t *testing.T) {
	b := newTestBuilder(t, nil, nil)
	sel := pushChest.Clone()
	require.NoError(t, b.BuildPlan(sel))

	sel.Muscles[0] = "back"
	w, _ := b.Current()
	assert.Equal(t, []string{"chest"}, w.Selection.Muscles)
}

func TestBuildPlanFailureKeepsCurrent(t *testing.T) {
	b := newTestBuilder(t, nil, nil)
	require.NoError(t, b.BuildPlan(pushChest))
	before, _ := b.Current()

	err := b.BuildPlan(selection.Selection{WorkoutType: "push", Muscles: []string{"chest"}, Goal: "bulk"})
	require.Error(t, err)

	after, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
}

func TestRebuildDiscardsProgress(t *testing.T) {
	b := newTestBuilder(t, nil, nil)
	require.NoError(t, b.BuildPlan(pushChest))
	require.True(t, b.IncrementSet(0))
	first, _ := b.Current()

	require.NoError(t, b.BuildPlan(pushChest))

	second, _ := b.Current()
	assert.NotEqual(t, first.ID, second.ID)
	tr, ok := b.Tracker(0)
	require.True(t, ok)
	assert.Zero(t, tr.SetsCompleted())
}

func TestIncrementSetRecordsUntilComplete(t *testing.T) {
	repo := &mockPlanRepo{}
	b := newTestBuilder(t, repo, nil)
	require.NoError(t, b.BuildPlan(pushChest))
	w, _ := b.Current()

	for i := 1; i <= progress.MaxSets; i++ {
		require.True(t, b.IncrementSet(1))
	}
	assert.False(t, b.IncrementSet(1), "complete card ignores increments")

	tr, _ := b.Tracker(1)
	assert.True(t, tr.IsComplete())
	require.Len(t, repo.events, progress.MaxSets)
	last := repo.events[len(repo.events)-1]
	assert.Equal(t, store.SetEventData{
		PlanID:        w.ID.String(),
		ExerciseIndex: 1,
		Exercise:      w.Exercises[1].Name,
		Action:        store.SetCompleted,
		SetsCompleted: progress.MaxSets,
	}, last)

	other, _ := b.Tracker(0)
	assert.Zero(t, other.SetsCompleted(), "cards are independent")
}

func TestResetProgress(t *testing.T) {
	repo := &mockPlanRepo{}
	b := newTestBuilder(t, repo, nil)
	require.NoError(t, b.BuildPlan(pushChest))

	assert.False(t, b.ResetProgress(0), "nothing to reset")
	assert.Empty(t, repo.events)

	b.IncrementSet(0)
	b.IncrementSet(0)
	require.True(t, b.ResetProgress(0))

	tr, _ := b.Tracker(0)
	assert.Zero(t, tr.SetsCompleted())
	require.Len(t, repo.events, 3)
	assert.Equal(t, store.SetReset, repo.events[2].Action)
	assert.Zero(t, repo.events[2].SetsCompleted)
}

func TestOutOfRangeCards(t *testing.T) {
	b := newTestBuilder(t, nil, nil)
	assert.False(t, b.IncrementSet(0), "no workout yet")

	require.NoError(t, b.BuildPlan(pushChest))
	assert.False(t, b.IncrementSet(-1))
	assert.False(t, b.IncrementSet(99))
	assert.False(t, b.ResetProgress(99))
}

func TestReset(t *testing.T) {
	b := newTestBuilder(t, nil, nil)
	require.NoError(t, b.BuildPlan(pushChest))
	b.IncrementSet(0)

	b.Reset()

	_, ok := b.Current()
	assert.False(t, ok)
	_, ok = b.Tracker(0)
	assert.False(t, ok)
}

func TestRecordingFailureWarnsButDoesNotFail(t *testing.T) {
	repo := &mockPlanRepo{err: errors.New("disk full")}
	var notes []notify.Kind
	b := newTestBuilder(t, repo, notify.Func(func(kind notify.Kind, _ string) {
		notes = append(notes, kind)
	}))

	require.NoError(t, b.BuildPlan(pushChest))
	assert.True(t, b.IncrementSet(0))

	assert.Equal(t, []notify.Kind{notify.Warning, notify.Warning}, notes)
}

func TestBuilderSatisfiesMachine(t *testing.T) {
	b := newTestBuilder(t, nil, nil)
	m := selection.New(selection.Options{Builder: b})
	m.ChooseWorkoutType("push")
	require.NoError(t, m.ToggleMuscle("chest"))
	m.ChooseGoal("hypertrophy")
	require.NoError(t, m.Submit())

	_, ok := b.Current()
	assert.True(t, ok)

	m.Reset()
	_, ok = b.Current()
	assert.False(t, ok)
}
