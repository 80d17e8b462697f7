package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChapterRun is one play-through attempt of a chapter on a track. At
// most one run per track has a null completed_at; starting a new chapter
// closes the previous run.
type ChapterRun struct {
	ent.Schema
}

func (ChapterRun) Mixin() []ent.Mixin {
	return []ent.Mixin{TrackMixin{}}
}

func (ChapterRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique().
			Comment("UUID assigned at activation"),
		field.String("chapter_id").
			NotEmpty().
			Immutable().
			Comment("Catalog chapter this run plays"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Null while the run is active"),
	}
}

func (ChapterRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("track", "chapter_id"),
		index.Fields("track", "completed_at"),
	}
}
