// Code generated by ent, DO NOT EDIT.

package hintreveal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLTE(FieldID, id))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldTrack, v))
}

// ChapterRunID applies equality check predicate on the "chapter_run_id" field. It's identical to ChapterRunIDEQ.
func ChapterRunID(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldChapterRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldStepID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldTier, v))
}

// RevealedAt applies equality check predicate on the "revealed_at" field. It's identical to RevealedAtEQ.
func RevealedAt(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldRevealedAt, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldContainsFold(FieldTrack, v))
}

// ChapterRunIDEQ applies the EQ predicate on the "chapter_run_id" field.
func ChapterRunIDEQ(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldChapterRunID, v))
}

// ChapterRunIDNEQ applies the NEQ predicate on the "chapter_run_id" field.
func ChapterRunIDNEQ(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNEQ(FieldChapterRunID, v))
}

// ChapterRunIDIn applies the In predicate on the "chapter_run_id" field.
func ChapterRunIDIn(vs ...string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldIn(FieldChapterRunID, vs...))
}

// ChapterRunIDNotIn applies the NotIn predicate on the "chapter_run_id" field.
func ChapterRunIDNotIn(vs ...string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNotIn(FieldChapterRunID, vs...))
}

// ChapterRunIDGT applies the GT predicate on the "chapter_run_id" field.
func ChapterRunIDGT(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGT(FieldChapterRunID, v))
}

// ChapterRunIDGTE applies the GTE predicate on the "chapter_run_id" field.
func ChapterRunIDGTE(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGTE(FieldChapterRunID, v))
}

// ChapterRunIDLT applies the LT predicate on the "chapter_run_id" field.
func ChapterRunIDLT(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLT(FieldChapterRunID, v))
}

// ChapterRunIDLTE applies the LTE predicate on the "chapter_run_id" field.
func ChapterRunIDLTE(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLTE(FieldChapterRunID, v))
}

// ChapterRunIDContains applies the Contains predicate on the "chapter_run_id" field.
func ChapterRunIDContains(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldContains(FieldChapterRunID, v))
}

// ChapterRunIDHasPrefix applies the HasPrefix predicate on the "chapter_run_id" field.
func ChapterRunIDHasPrefix(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldHasPrefix(FieldChapterRunID, v))
}

// ChapterRunIDHasSuffix applies the HasSuffix predicate on the "chapter_run_id" field.
func ChapterRunIDHasSuffix(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldHasSuffix(FieldChapterRunID, v))
}

// ChapterRunIDEqualFold applies the EqualFold predicate on the "chapter_run_id" field.
func ChapterRunIDEqualFold(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEqualFold(FieldChapterRunID, v))
}

// ChapterRunIDContainsFold applies the ContainsFold predicate on the "chapter_run_id" field.
func ChapterRunIDContainsFold(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldContainsFold(FieldChapterRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldContainsFold(FieldStepID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v int) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLTE(FieldTier, v))
}

// RevealedAtEQ applies the EQ predicate on the "revealed_at" field.
func RevealedAtEQ(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldEQ(FieldRevealedAt, v))
}

// RevealedAtNEQ applies the NEQ predicate on the "revealed_at" field.
func RevealedAtNEQ(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNEQ(FieldRevealedAt, v))
}

// RevealedAtIn applies the In predicate on the "revealed_at" field.
func RevealedAtIn(vs ...time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldIn(FieldRevealedAt, vs...))
}

// RevealedAtNotIn applies the NotIn predicate on the "revealed_at" field.
func RevealedAtNotIn(vs ...time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldNotIn(FieldRevealedAt, vs...))
}

// RevealedAtGT applies the GT predicate on the "revealed_at" field.
func RevealedAtGT(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGT(FieldRevealedAt, v))
}

// RevealedAtGTE applies the GTE predicate on the "revealed_at" field.
func RevealedAtGTE(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldGTE(FieldRevealedAt, v))
}

// RevealedAtLT applies the LT predicate on the "revealed_at" field.
func RevealedAtLT(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLT(FieldRevealedAt, v))
}

// RevealedAtLTE applies the LTE predicate on the "revealed_at" field.
func RevealedAtLTE(v time.Time) predicate.HintReveal {
	return predicate.HintReveal(sql.FieldLTE(FieldRevealedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintReveal) predicate.HintReveal {
	return predicate.HintReveal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintReveal) predicate.HintReveal {
	return predicate.HintReveal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintReveal) predicate.HintReveal {
	return predicate.HintReveal(sql.NotPredicates(p))
}
