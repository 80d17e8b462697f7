// Code generated by ent, DO NOT EDIT.

package stepcompletion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLTE(FieldID, id))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldTrack, v))
}

// ChapterRunID applies equality check predicate on the "chapter_run_id" field. It's identical to ChapterRunIDEQ.
func ChapterRunID(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldChapterRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldStepID, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldContainsFold(FieldTrack, v))
}

// ChapterRunIDEQ applies the EQ predicate on the "chapter_run_id" field.
func ChapterRunIDEQ(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldChapterRunID, v))
}

// ChapterRunIDNEQ applies the NEQ predicate on the "chapter_run_id" field.
func ChapterRunIDNEQ(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNEQ(FieldChapterRunID, v))
}

// ChapterRunIDIn applies the In predicate on the "chapter_run_id" field.
func ChapterRunIDIn(vs ...string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldIn(FieldChapterRunID, vs...))
}

// ChapterRunIDNotIn applies the NotIn predicate on the "chapter_run_id" field.
func ChapterRunIDNotIn(vs ...string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNotIn(FieldChapterRunID, vs...))
}

// ChapterRunIDGT applies the GT predicate on the "chapter_run_id" field.
func ChapterRunIDGT(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGT(FieldChapterRunID, v))
}

// ChapterRunIDGTE applies the GTE predicate on the "chapter_run_id" field.
func ChapterRunIDGTE(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGTE(FieldChapterRunID, v))
}

// ChapterRunIDLT applies the LT predicate on the "chapter_run_id" field.
func ChapterRunIDLT(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLT(FieldChapterRunID, v))
}

// ChapterRunIDLTE applies the LTE predicate on the "chapter_run_id" field.
func ChapterRunIDLTE(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLTE(FieldChapterRunID, v))
}

// ChapterRunIDContains applies the Contains predicate on the "chapter_run_id" field.
func ChapterRunIDContains(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldContains(FieldChapterRunID, v))
}

// ChapterRunIDHasPrefix applies the HasPrefix predicate on the "chapter_run_id" field.
func ChapterRunIDHasPrefix(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldHasPrefix(FieldChapterRunID, v))
}

// ChapterRunIDHasSuffix applies the HasSuffix predicate on the "chapter_run_id" field.
func ChapterRunIDHasSuffix(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldHasSuffix(FieldChapterRunID, v))
}

// ChapterRunIDEqualFold applies the EqualFold predicate on the "chapter_run_id" field.
func ChapterRunIDEqualFold(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEqualFold(FieldChapterRunID, v))
}

// ChapterRunIDContainsFold applies the ContainsFold predicate on the "chapter_run_id" field.
func ChapterRunIDContainsFold(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldContainsFold(FieldChapterRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldContainsFold(FieldStepID, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StepCompletion {
	return predicate.StepCompletion(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepCompletion) predicate.StepCompletion {
	return predicate.StepCompletion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepCompletion) predicate.StepCompletion {
	return predicate.StepCompletion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepCompletion) predicate.StepCompletion {
	return predicate.StepCompletion(sql.NotPredicates(p))
}
