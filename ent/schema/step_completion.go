package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepCompletion is the durable proof that a step was finished. Rows are
// insert-only; the count of rows for the active run IS the current step
// index. The unique (run, step) index is what makes racing duplicate
// advances fail instead of double-completing.
type StepCompletion struct {
	ent.Schema
}

func (StepCompletion) Mixin() []ent.Mixin {
	return []ent.Mixin{TrackMixin{}}
}

func (StepCompletion) Fields() []ent.Field {
	return []ent.Field{
		field.String("chapter_run_id").
			NotEmpty().
			Immutable(),
		field.String("step_id").
			NotEmpty().
			Immutable(),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StepCompletion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_run_id", "step_id").Unique(),
		index.Fields("chapter_run_id"),
	}
}
