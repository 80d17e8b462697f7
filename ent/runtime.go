// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/halvard/paperchase/ent/chapterrun"
	"github.com/halvard/paperchase/ent/hintreveal"
	"github.com/halvard/paperchase/ent/messageattempt"
	"github.com/halvard/paperchase/ent/quizanswer"
	"github.com/halvard/paperchase/ent/schema"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chapterrunMixin := schema.ChapterRun{}.Mixin()
	chapterrunMixinFields0 := chapterrunMixin[0].Fields()
	_ = chapterrunMixinFields0
	chapterrunFields := schema.ChapterRun{}.Fields()
	_ = chapterrunFields
	// chapterrunDescTrack is the schema descriptor for track field.
	chapterrunDescTrack := chapterrunMixinFields0[0].Descriptor()
	// chapterrun.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	chapterrun.TrackValidator = chapterrunDescTrack.Validators[0].(func(string) error)
	// chapterrunDescChapterID is the schema descriptor for chapter_id field.
	chapterrunDescChapterID := chapterrunFields[1].Descriptor()
	// chapterrun.ChapterIDValidator is a validator for the "chapter_id" field. It is called by the builders before save.
	chapterrun.ChapterIDValidator = chapterrunDescChapterID.Validators[0].(func(string) error)
	// chapterrunDescStartedAt is the schema descriptor for started_at field.
	chapterrunDescStartedAt := chapterrunFields[2].Descriptor()
	// chapterrun.DefaultStartedAt holds the default value on creation for the started_at field.
	chapterrun.DefaultStartedAt = chapterrunDescStartedAt.Default.(func() time.Time)
	// chapterrunDescID is the schema descriptor for id field.
	chapterrunDescID := chapterrunFields[0].Descriptor()
	// chapterrun.IDValidator is a validator for the "id" field. It is called by the builders before save.
	chapterrun.IDValidator = chapterrunDescID.Validators[0].(func(string) error)
	hintrevealMixin := schema.HintReveal{}.Mixin()
	hintrevealMixinFields0 := hintrevealMixin[0].Fields()
	_ = hintrevealMixinFields0
	hintrevealFields := schema.HintReveal{}.Fields()
	_ = hintrevealFields
	// hintrevealDescTrack is the schema descriptor for track field.
	hintrevealDescTrack := hintrevealMixinFields0[0].Descriptor()
	// hintreveal.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	hintreveal.TrackValidator = hintrevealDescTrack.Validators[0].(func(string) error)
	// hintrevealDescChapterRunID is the schema descriptor for chapter_run_id field.
	hintrevealDescChapterRunID := hintrevealFields[0].Descriptor()
	// hintreveal.ChapterRunIDValidator is a validator for the "chapter_run_id" field. It is called by the builders before save.
	hintreveal.ChapterRunIDValidator = hintrevealDescChapterRunID.Validators[0].(func(string) error)
	// hintrevealDescStepID is the schema descriptor for step_id field.
	hintrevealDescStepID := hintrevealFields[1].Descriptor()
	// hintreveal.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	hintreveal.StepIDValidator = hintrevealDescStepID.Validators[0].(func(string) error)
	// hintrevealDescTier is the schema descriptor for tier field.
	hintrevealDescTier := hintrevealFields[2].Descriptor()
	// hintreveal.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	hintreveal.TierValidator = hintrevealDescTier.Validators[0].(func(int) error)
	// hintrevealDescRevealedAt is the schema descriptor for revealed_at field.
	hintrevealDescRevealedAt := hintrevealFields[3].Descriptor()
	// hintreveal.DefaultRevealedAt holds the default value on creation for the revealed_at field.
	hintreveal.DefaultRevealedAt = hintrevealDescRevealedAt.Default.(func() time.Time)
	messageattemptMixin := schema.MessageAttempt{}.Mixin()
	messageattemptMixinFields0 := messageattemptMixin[0].Fields()
	_ = messageattemptMixinFields0
	messageattemptFields := schema.MessageAttempt{}.Fields()
	_ = messageattemptFields
	// messageattemptDescTrack is the schema descriptor for track field.
	messageattemptDescTrack := messageattemptMixinFields0[0].Descriptor()
	// messageattempt.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	messageattempt.TrackValidator = messageattemptDescTrack.Validators[0].(func(string) error)
	// messageattemptDescChapterRunID is the schema descriptor for chapter_run_id field.
	messageattemptDescChapterRunID := messageattemptFields[1].Descriptor()
	// messageattempt.ChapterRunIDValidator is a validator for the "chapter_run_id" field. It is called by the builders before save.
	messageattempt.ChapterRunIDValidator = messageattemptDescChapterRunID.Validators[0].(func(string) error)
	// messageattemptDescStepID is the schema descriptor for step_id field.
	messageattemptDescStepID := messageattemptFields[2].Descriptor()
	// messageattempt.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	messageattempt.StepIDValidator = messageattemptDescStepID.Validators[0].(func(string) error)
	// messageattemptDescRole is the schema descriptor for role field.
	messageattemptDescRole := messageattemptFields[3].Descriptor()
	// messageattempt.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	messageattempt.RoleValidator = messageattemptDescRole.Validators[0].(func(string) error)
	// messageattemptDescChannel is the schema descriptor for channel field.
	messageattemptDescChannel := messageattemptFields[4].Descriptor()
	// messageattempt.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	messageattempt.ChannelValidator = messageattemptDescChannel.Validators[0].(func(string) error)
	// messageattemptDescRecipient is the schema descriptor for recipient field.
	messageattemptDescRecipient := messageattemptFields[5].Descriptor()
	// messageattempt.RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	messageattempt.RecipientValidator = messageattemptDescRecipient.Validators[0].(func(string) error)
	// messageattemptDescStatus is the schema descriptor for status field.
	messageattemptDescStatus := messageattemptFields[6].Descriptor()
	// messageattempt.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	messageattempt.StatusValidator = messageattemptDescStatus.Validators[0].(func(string) error)
	// messageattemptDescCreatedAt is the schema descriptor for created_at field.
	messageattemptDescCreatedAt := messageattemptFields[7].Descriptor()
	// messageattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	messageattempt.DefaultCreatedAt = messageattemptDescCreatedAt.Default.(func() time.Time)
	// messageattemptDescID is the schema descriptor for id field.
	messageattemptDescID := messageattemptFields[0].Descriptor()
	// messageattempt.IDValidator is a validator for the "id" field. It is called by the builders before save.
	messageattempt.IDValidator = messageattemptDescID.Validators[0].(func(string) error)
	quizanswerMixin := schema.QuizAnswer{}.Mixin()
	quizanswerMixinFields0 := quizanswerMixin[0].Fields()
	_ = quizanswerMixinFields0
	quizanswerFields := schema.QuizAnswer{}.Fields()
	_ = quizanswerFields
	// quizanswerDescTrack is the schema descriptor for track field.
	quizanswerDescTrack := quizanswerMixinFields0[0].Descriptor()
	// quizanswer.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	quizanswer.TrackValidator = quizanswerDescTrack.Validators[0].(func(string) error)
	// quizanswerDescChapterRunID is the schema descriptor for chapter_run_id field.
	quizanswerDescChapterRunID := quizanswerFields[0].Descriptor()
	// quizanswer.ChapterRunIDValidator is a validator for the "chapter_run_id" field. It is called by the builders before save.
	quizanswer.ChapterRunIDValidator = quizanswerDescChapterRunID.Validators[0].(func(string) error)
	// quizanswerDescStepID is the schema descriptor for step_id field.
	quizanswerDescStepID := quizanswerFields[1].Descriptor()
	// quizanswer.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	quizanswer.StepIDValidator = quizanswerDescStepID.Validators[0].(func(string) error)
	// quizanswerDescQuestionIndex is the schema descriptor for question_index field.
	quizanswerDescQuestionIndex := quizanswerFields[2].Descriptor()
	// quizanswer.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	quizanswer.QuestionIndexValidator = quizanswerDescQuestionIndex.Validators[0].(func(int) error)
	// quizanswerDescSelectedOption is the schema descriptor for selected_option field.
	quizanswerDescSelectedOption := quizanswerFields[3].Descriptor()
	// quizanswer.SelectedOptionValidator is a validator for the "selected_option" field. It is called by the builders before save.
	quizanswer.SelectedOptionValidator = quizanswerDescSelectedOption.Validators[0].(func(int) error)
	// quizanswerDescAnsweredAt is the schema descriptor for answered_at field.
	quizanswerDescAnsweredAt := quizanswerFields[5].Descriptor()
	// quizanswer.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	quizanswer.DefaultAnsweredAt = quizanswerDescAnsweredAt.Default.(func() time.Time)
	stepcompletionMixin := schema.StepCompletion{}.Mixin()
	stepcompletionMixinFields0 := stepcompletionMixin[0].Fields()
	_ = stepcompletionMixinFields0
	stepcompletionFields := schema.StepCompletion{}.Fields()
	_ = stepcompletionFields
	// stepcompletionDescTrack is the schema descriptor for track field.
	stepcompletionDescTrack := stepcompletionMixinFields0[0].Descriptor()
	// stepcompletion.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	stepcompletion.TrackValidator = stepcompletionDescTrack.Validators[0].(func(string) error)
	// stepcompletionDescChapterRunID is the schema descriptor for chapter_run_id field.
	stepcompletionDescChapterRunID := stepcompletionFields[0].Descriptor()
	// stepcompletion.ChapterRunIDValidator is a validator for the "chapter_run_id" field. It is called by the builders before save.
	stepcompletion.ChapterRunIDValidator = stepcompletionDescChapterRunID.Validators[0].(func(string) error)
	// stepcompletionDescStepID is the schema descriptor for step_id field.
	stepcompletionDescStepID := stepcompletionFields[1].Descriptor()
	// stepcompletion.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	stepcompletion.StepIDValidator = stepcompletionDescStepID.Validators[0].(func(string) error)
	// stepcompletionDescCompletedAt is the schema descriptor for completed_at field.
	stepcompletionDescCompletedAt := stepcompletionFields[2].Descriptor()
	// stepcompletion.DefaultCompletedAt holds the default value on creation for the completed_at field.
	stepcompletion.DefaultCompletedAt = stepcompletionDescCompletedAt.Default.(func() time.Time)
}
