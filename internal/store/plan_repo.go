package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	entschema "github.com/winterarc/winterarc/ent/schema"
)

var planColumns = []string{"id", "timestamp", "workout_type", "goal", "muscles", "catalog_version", "exercises"}

// planRepo implements PlanRepo with queries built by the ent SQL builder.
type planRepo struct {
	db      *sql.DB
	builder *entsql.DialectBuilder
}

func (r *planRepo) SavePlan(ctx context.Context, plan PlanRecord) error {
	if plan.Timestamp.IsZero() {
		plan.Timestamp = time.Now()
	}

	muscles, err := json.Marshal(plan.Muscles)
	if err != nil {
		return fmt.Errorf("marshal muscles: %w", err)
	}
	exercises, err := json.Marshal(toSummaries(plan.Exercises))
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	query, args := r.builder.Insert(plansTable).
		Columns(planColumns...).
		Values(plan.ID, plan.Timestamp.UTC(), plan.WorkoutType, plan.Goal, string(muscles), plan.CatalogVersion, string(exercises)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) RecentPlans(ctx context.Context, limit int) ([]PlanRecord, error) {
	sel := r.builder.Select(planColumns...).
		From(r.builder.Table(plansTable)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var out []PlanRecord
	for rows.Next() {
		var (
			p                  PlanRecord
			version            sql.NullString
			muscles, exercises []byte
		)
		if err := rows.Scan(&p.ID, &p.Timestamp, &p.WorkoutType, &p.Goal, &muscles, &version, &exercises); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		p.CatalogVersion = version.String
		if err := json.Unmarshal(muscles, &p.Muscles); err != nil {
			return nil, fmt.Errorf("unmarshal muscles of plan %s: %w", p.ID, err)
		}
		var summaries []entschema.PlanExerciseSummary
		if err := json.Unmarshal(exercises, &summaries); err != nil {
			return nil, fmt.Errorf("unmarshal exercises of plan %s: %w", p.ID, err)
		}
		p.Exercises = fromSummaries(summaries)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	return out, nil
}

func (r *planRepo) AppendSetEvent(ctx context.Context, data SetEventData) error {
	query, args := r.builder.Insert(setEventsTable).
		Columns("timestamp", "plan_id", "exercise_index", "exercise", "action", "sets_completed").
		Values(time.Now().UTC(), data.PlanID, data.ExerciseIndex, data.Exercise, string(data.Action), data.SetsCompleted).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save set event: %w", err)
	}
	return nil
}

func (r *planRepo) SetEvents(ctx context.Context, planID string) ([]SetEventRecord, error) {
	query, args := r.builder.Select("id", "timestamp", "plan_id", "exercise_index", "exercise", "action", "sets_completed").
		From(r.builder.Table(setEventsTable)).
		Where(entsql.EQ("plan_id", planID)).
		OrderBy(entsql.Asc("id")).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query set events: %w", err)
	}
	defer rows.Close()

	var out []SetEventRecord
	for rows.Next() {
		var (
			ev     SetEventRecord
			action string
		)
		if err := rows.Scan(&ev.ID, &ev.Timestamp, &ev.PlanID, &ev.ExerciseIndex, &ev.Exercise, &action, &ev.SetsCompleted); err != nil {
			return nil, fmt.Errorf("scan set event: %w", err)
		}
		ev.Action = SetAction(action)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query set events: %w", err)
	}
	return out, nil
}

func toSummaries(exercises []PlanExercise) []entschema.PlanExerciseSummary {
	out := make([]entschema.PlanExerciseSummary, len(exercises))
	for i, e := range exercises {
		out[i] = entschema.PlanExerciseSummary(e)
	}
	return out
}

func fromSummaries(summaries []entschema.PlanExerciseSummary) []PlanExercise {
	out := make([]PlanExercise, len(summaries))
	for i, s := range summaries {
		out[i] = PlanExercise(s)
	}
	return out
}
