package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{plansTable, setEventsTable} {
		var got string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&got)
		require.NoError(t, err, name)
		assert.Equal(t, name, got)
	}
}

func TestReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func samplePlan(id string, ts time.Time) PlanRecord {
	return PlanRecord{
		ID:             id,
		Timestamp:      ts,
		WorkoutType:    "bro_split",
		Goal:           "growth_hypertrophy",
		Muscles:        []string{"push"},
		CatalogVersion: "v1.0.0",
		Exercises: []PlanExercise{
			{Name: "bench_press", Type: "compound", Muscle: "chest", Amount: 10, Unit: "reps", Rest: 60, Tempo: "2 0 2"},
			{Name: "plank", Type: "accessory", Muscle: "abs", Amount: 45, Unit: "seconds", Rest: 45, Tempo: "3 0 1"},
		},
	}
}

func TestPlanRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plans, err := repo.RecentPlans(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, plans)

	now := time.Now().UTC().Truncate(time.Second)
	want := samplePlan("a", now)
	require.NoError(t, repo.SavePlan(ctx, want))

	plans, err = repo.RecentPlans(ctx, 10)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	got := plans[0]
	assert.True(t, got.Timestamp.Equal(now), "timestamp = %v, want %v", got.Timestamp, now)
	got.Timestamp = want.Timestamp
	assert.Equal(t, want, got)
}

func TestRecentPlansNewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, repo.SavePlan(ctx, samplePlan(id, base.Add(time.Duration(i)*time.Hour))))
	}

	plans, err := repo.RecentPlans(ctx, 2)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "third", plans[0].ID)
	assert.Equal(t, "second", plans[1].ID)

	all, err := repo.RecentPlans(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSavePlanDuplicateID(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	require.NoError(t, repo.SavePlan(ctx, samplePlan("dup", time.Now())))
	assert.Error(t, repo.SavePlan(ctx, samplePlan("dup", time.Now())))
}

func TestSetEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	events := []SetEventData{
		{PlanID: "p1", ExerciseIndex: 0, Exercise: "bench_press", Action: SetCompleted, SetsCompleted: 1},
		{PlanID: "p1", ExerciseIndex: 0, Exercise: "bench_press", Action: SetCompleted, SetsCompleted: 2},
		{PlanID: "p2", ExerciseIndex: 1, Exercise: "plank", Action: SetCompleted, SetsCompleted: 1},
		{PlanID: "p1", ExerciseIndex: 0, Exercise: "bench_press", Action: SetReset, SetsCompleted: 0},
	}
	for _, ev := range events {
		require.NoError(t, repo.AppendSetEvent(ctx, ev))
	}

	got, err := repo.SetEvents(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, events[0], got[0].SetEventData)
	assert.Equal(t, events[1], got[1].SetEventData)
	assert.Equal(t, events[3], got[2].SetEventData)
	assert.Less(t, got[0].ID, got[1].ID)
	assert.False(t, got[0].Timestamp.IsZero())

	none, err := repo.SetEvents(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "w.db")
	t.Setenv("WINTERARC_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPathFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINTERARC_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "winterarc", "winterarc.db"), got)
}

func TestWithPragmas(t *testing.T) {
	assert.Contains(t, withPragmas("a.db"), "a.db?_pragma=journal_mode(WAL)&")
	assert.Contains(t, withPragmas("file:a.db?mode=rwc"), "mode=rwc&_pragma=")
}

func TestFinalSets(t *testing.T) {
	events := []SetEventRecord{
		{SetEventData: SetEventData{ExerciseIndex: 0, Action: SetCompleted, SetsCompleted: 1}},
		{SetEventData: SetEventData{ExerciseIndex: 1, Action: SetCompleted, SetsCompleted: 1}},
		{SetEventData: SetEventData{ExerciseIndex: 0, Action: SetCompleted, SetsCompleted: 2}},
		{SetEventData: SetEventData{ExerciseIndex: 1, Action: SetReset, SetsCompleted: 0}},
	}
	assert.Equal(t, map[int]int{0: 2, 1: 0}, FinalSets(events))
	assert.Empty(t, FinalSets(nil))
}
