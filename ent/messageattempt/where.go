// Code generated by ent, DO NOT EDIT.

package messageattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldID, id))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldTrack, v))
}

// ChapterRunID applies equality check predicate on the "chapter_run_id" field. It's identical to ChapterRunIDEQ.
func ChapterRunID(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldChapterRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldStepID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldRole, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldChannel, v))
}

// Recipient applies equality check predicate on the "recipient" field. It's identical to RecipientEQ.
func Recipient(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldRecipient, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldScheduledAt, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldSentAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldDeliveredAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldError, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldTrack, v))
}

// ChapterRunIDEQ applies the EQ predicate on the "chapter_run_id" field.
func ChapterRunIDEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldChapterRunID, v))
}

// ChapterRunIDNEQ applies the NEQ predicate on the "chapter_run_id" field.
func ChapterRunIDNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldChapterRunID, v))
}

// ChapterRunIDIn applies the In predicate on the "chapter_run_id" field.
func ChapterRunIDIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldChapterRunID, vs...))
}

// ChapterRunIDNotIn applies the NotIn predicate on the "chapter_run_id" field.
func ChapterRunIDNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldChapterRunID, vs...))
}

// ChapterRunIDGT applies the GT predicate on the "chapter_run_id" field.
func ChapterRunIDGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldChapterRunID, v))
}

// ChapterRunIDGTE applies the GTE predicate on the "chapter_run_id" field.
func ChapterRunIDGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldChapterRunID, v))
}

// ChapterRunIDLT applies the LT predicate on the "chapter_run_id" field.
func ChapterRunIDLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldChapterRunID, v))
}

// ChapterRunIDLTE applies the LTE predicate on the "chapter_run_id" field.
func ChapterRunIDLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldChapterRunID, v))
}

// ChapterRunIDContains applies the Contains predicate on the "chapter_run_id" field.
func ChapterRunIDContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldChapterRunID, v))
}

// ChapterRunIDHasPrefix applies the HasPrefix predicate on the "chapter_run_id" field.
func ChapterRunIDHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldChapterRunID, v))
}

// ChapterRunIDHasSuffix applies the HasSuffix predicate on the "chapter_run_id" field.
func ChapterRunIDHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldChapterRunID, v))
}

// ChapterRunIDEqualFold applies the EqualFold predicate on the "chapter_run_id" field.
func ChapterRunIDEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldChapterRunID, v))
}

// ChapterRunIDContainsFold applies the ContainsFold predicate on the "chapter_run_id" field.
func ChapterRunIDContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldChapterRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldStepID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldRole, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldChannel, v))
}

// RecipientEQ applies the EQ predicate on the "recipient" field.
func RecipientEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldRecipient, v))
}

// RecipientNEQ applies the NEQ predicate on the "recipient" field.
func RecipientNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldRecipient, v))
}

// RecipientIn applies the In predicate on the "recipient" field.
func RecipientIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldRecipient, vs...))
}

// RecipientNotIn applies the NotIn predicate on the "recipient" field.
func RecipientNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldRecipient, vs...))
}

// RecipientGT applies the GT predicate on the "recipient" field.
func RecipientGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldRecipient, v))
}

// RecipientGTE applies the GTE predicate on the "recipient" field.
func RecipientGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldRecipient, v))
}

// RecipientLT applies the LT predicate on the "recipient" field.
func RecipientLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldRecipient, v))
}

// RecipientLTE applies the LTE predicate on the "recipient" field.
func RecipientLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldRecipient, v))
}

// RecipientContains applies the Contains predicate on the "recipient" field.
func RecipientContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldRecipient, v))
}

// RecipientHasPrefix applies the HasPrefix predicate on the "recipient" field.
func RecipientHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldRecipient, v))
}

// RecipientHasSuffix applies the HasSuffix predicate on the "recipient" field.
func RecipientHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldRecipient, v))
}

// RecipientEqualFold applies the EqualFold predicate on the "recipient" field.
func RecipientEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldRecipient, v))
}

// RecipientContainsFold applies the ContainsFold predicate on the "recipient" field.
func RecipientContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldRecipient, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotNull(FieldScheduledAt))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotNull(FieldSentAt))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotNull(FieldDeliveredAt))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.FieldContainsFold(FieldError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageAttempt) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageAttempt) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageAttempt) predicate.MessageAttempt {
	return predicate.MessageAttempt(sql.NotPredicates(p))
}
