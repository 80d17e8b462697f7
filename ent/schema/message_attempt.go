package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageAttempt tracks one try at delivering a message step (or its
// companion fan-out). Status only moves forward: scheduled→sent→delivered,
// or →failed from any non-terminal state. Rows are never deleted or
// overwritten; a retry after failure is a fresh row.
type MessageAttempt struct {
	ent.Schema
}

func (MessageAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{TrackMixin{}}
}

func (MessageAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique().
			Comment("UUID assigned at creation"),
		field.String("chapter_run_id").
			NotEmpty().
			Immutable(),
		field.String("step_id").
			NotEmpty().
			Immutable(),
		field.String("role").
			NotEmpty().
			Immutable().
			Comment("primary or companion"),
		field.String("channel").
			NotEmpty().
			Immutable(),
		field.String("recipient").
			NotEmpty().
			Immutable(),
		field.String("status").
			NotEmpty().
			Comment("scheduled, sent, delivered, or failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("scheduled_at").
			Optional().
			Nillable(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Comment("Transport error for failed attempts"),
	}
}

func (MessageAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_run_id", "step_id", "role"),
		index.Fields("chapter_run_id", "status"),
	}
}
