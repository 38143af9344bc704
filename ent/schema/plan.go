package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan records one generated workout.
type Plan struct {
	ent.Schema
}

func (Plan) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// PlanExerciseSummary is the serialized form of one exercise card.
type PlanExerciseSummary struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Muscle string `json:"muscle"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
	Rest   int    `json:"rest"`
	Tempo  string `json:"tempo"`
}

func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID of the generated workout"),
		field.String("workout_type").
			NotEmpty(),
		field.String("goal").
			NotEmpty(),
		field.JSON("muscles", []string{}).
			Comment("Selected muscle groups in selection order"),
		field.String("catalog_version").
			Optional(),
		field.JSON("exercises", []PlanExerciseSummary{}),
	}
}

func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workout_type"),
	}
}
