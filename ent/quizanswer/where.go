// Code generated by ent, DO NOT EDIT.

package quizanswer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldID, id))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldTrack, v))
}

// ChapterRunID applies equality check predicate on the "chapter_run_id" field. It's identical to ChapterRunIDEQ.
func ChapterRunID(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldChapterRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldStepID, v))
}

// QuestionIndex applies equality check predicate on the "question_index" field. It's identical to QuestionIndexEQ.
func QuestionIndex(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldQuestionIndex, v))
}

// SelectedOption applies equality check predicate on the "selected_option" field. It's identical to SelectedOptionEQ.
func SelectedOption(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldSelectedOption, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldCorrect, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldAnsweredAt, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldTrack, v))
}

// ChapterRunIDEQ applies the EQ predicate on the "chapter_run_id" field.
func ChapterRunIDEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldChapterRunID, v))
}

// ChapterRunIDNEQ applies the NEQ predicate on the "chapter_run_id" field.
func ChapterRunIDNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldChapterRunID, v))
}

// ChapterRunIDIn applies the In predicate on the "chapter_run_id" field.
func ChapterRunIDIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldChapterRunID, vs...))
}

// ChapterRunIDNotIn applies the NotIn predicate on the "chapter_run_id" field.
func ChapterRunIDNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldChapterRunID, vs...))
}

// ChapterRunIDGT applies the GT predicate on the "chapter_run_id" field.
func ChapterRunIDGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldChapterRunID, v))
}

// ChapterRunIDGTE applies the GTE predicate on the "chapter_run_id" field.
func ChapterRunIDGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldChapterRunID, v))
}

// ChapterRunIDLT applies the LT predicate on the "chapter_run_id" field.
func ChapterRunIDLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldChapterRunID, v))
}

// ChapterRunIDLTE applies the LTE predicate on the "chapter_run_id" field.
func ChapterRunIDLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldChapterRunID, v))
}

// ChapterRunIDContains applies the Contains predicate on the "chapter_run_id" field.
func ChapterRunIDContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldChapterRunID, v))
}

// ChapterRunIDHasPrefix applies the HasPrefix predicate on the "chapter_run_id" field.
func ChapterRunIDHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldChapterRunID, v))
}

// ChapterRunIDHasSuffix applies the HasSuffix predicate on the "chapter_run_id" field.
func ChapterRunIDHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldChapterRunID, v))
}

// ChapterRunIDEqualFold applies the EqualFold predicate on the "chapter_run_id" field.
func ChapterRunIDEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldChapterRunID, v))
}

// ChapterRunIDContainsFold applies the ContainsFold predicate on the "chapter_run_id" field.
func ChapterRunIDContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldChapterRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldStepID, v))
}

// QuestionIndexEQ applies the EQ predicate on the "question_index" field.
func QuestionIndexEQ(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionIndexNEQ applies the NEQ predicate on the "question_index" field.
func QuestionIndexNEQ(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldQuestionIndex, v))
}

// QuestionIndexIn applies the In predicate on the "question_index" field.
func QuestionIndexIn(vs ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldQuestionIndex, vs...))
}

// QuestionIndexNotIn applies the NotIn predicate on the "question_index" field.
func QuestionIndexNotIn(vs ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldQuestionIndex, vs...))
}

// QuestionIndexGT applies the GT predicate on the "question_index" field.
func QuestionIndexGT(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldQuestionIndex, v))
}

// QuestionIndexGTE applies the GTE predicate on the "question_index" field.
func QuestionIndexGTE(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldQuestionIndex, v))
}

// QuestionIndexLT applies the LT predicate on the "question_index" field.
func QuestionIndexLT(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldQuestionIndex, v))
}

// QuestionIndexLTE applies the LTE predicate on the "question_index" field.
func QuestionIndexLTE(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldQuestionIndex, v))
}

// SelectedOptionEQ applies the EQ predicate on the "selected_option" field.
func SelectedOptionEQ(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldSelectedOption, v))
}

// SelectedOptionNEQ applies the NEQ predicate on the "selected_option" field.
func SelectedOptionNEQ(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldSelectedOption, v))
}

// SelectedOptionIn applies the In predicate on the "selected_option" field.
func SelectedOptionIn(vs ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldSelectedOption, vs...))
}

// SelectedOptionNotIn applies the NotIn predicate on the "selected_option" field.
func SelectedOptionNotIn(vs ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldSelectedOption, vs...))
}

// SelectedOptionGT applies the GT predicate on the "selected_option" field.
func SelectedOptionGT(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldSelectedOption, v))
}

// SelectedOptionGTE applies the GTE predicate on the "selected_option" field.
func SelectedOptionGTE(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldSelectedOption, v))
}

// SelectedOptionLT applies the LT predicate on the "selected_option" field.
func SelectedOptionLT(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldSelectedOption, v))
}

// SelectedOptionLTE applies the LTE predicate on the "selected_option" field.
func SelectedOptionLTE(v int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldSelectedOption, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldCorrect, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldAnsweredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.NotPredicates(p))
}
