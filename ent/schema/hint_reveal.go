package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintReveal records that a hint tier was shown. Reveals are monotonic
// and never revoked; the unique (run, step, tier) index makes racing
// identical reveals fail instead of duplicating.
type HintReveal struct {
	ent.Schema
}

func (HintReveal) Mixin() []ent.Mixin {
	return []ent.Mixin{TrackMixin{}}
}

func (HintReveal) Fields() []ent.Field {
	return []ent.Field{
		field.String("chapter_run_id").
			NotEmpty().
			Immutable(),
		field.String("step_id").
			NotEmpty().
			Immutable(),
		field.Int("tier").
			Positive().
			Immutable().
			Comment("Globally unique within the step, 1-based"),
		field.Time("revealed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (HintReveal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_run_id", "step_id", "tier").Unique(),
		index.Fields("chapter_run_id", "step_id"),
	}
}
