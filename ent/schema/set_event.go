package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SetEvent records a change to an exercise card's completed sets.
type SetEvent struct {
	ent.Schema
}

func (SetEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SetEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty(),
		field.Int("exercise_index").
			NonNegative(),
		field.String("exercise").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("complete or reset"),
		field.Int("sets_completed").
			Default(0),
	}
}

func (SetEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
	}
}
