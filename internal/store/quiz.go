package store

import (
	"context"
	"fmt"
	"time"

	"github.com/halvard/paperchase/ent"
)

// quizRepo implements QuizRepo using the ent client.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Append(ctx context.Context, track Track, rec QuizAnswerRecord) error {
	answeredAt := rec.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = time.Now().UTC()
	}
	_, err := r.client.QuizAnswer.Create().
		SetTrack(string(track)).
		SetChapterRunID(rec.ChapterRunID).
		SetStepID(rec.StepID).
		SetQuestionIndex(rec.QuestionIndex).
		SetSelectedOption(rec.SelectedOption).
		SetCorrect(rec.Correct).
		SetAnsweredAt(answeredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append quiz answer: %w", err)
	}
	return nil
}
