package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswer is an append-only audit row for one answered sub-question.
// Correctness is evaluated client-side against the catalog and only
// logged here; nothing gates on these rows.
type QuizAnswer struct {
	ent.Schema
}

func (QuizAnswer) Mixin() []ent.Mixin {
	return []ent.Mixin{TrackMixin{}}
}

func (QuizAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("chapter_run_id").
			NotEmpty().
			Immutable(),
		field.String("step_id").
			NotEmpty().
			Immutable(),
		field.Int("question_index").
			Min(0).
			Immutable(),
		field.Int("selected_option").
			Min(0).
			Immutable(),
		field.Bool("correct").
			Immutable(),
		field.Time("answered_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_run_id", "step_id"),
	}
}
