package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// TrackMixin provides the track partition column shared by every ledger
// table. Every query and mutation filters on it; the test and live
// tracks never see each other's rows.
type TrackMixin struct {
	mixin.Schema
}

func (TrackMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("track").
			NotEmpty().
			Immutable().
			Comment("Ledger partition: test or live"),
	}
}

func (TrackMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("track"),
	}
}
