package store

import (
	"context"
	"fmt"
	"time"

	"github.com/halvard/paperchase/ent"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

// completionRepo implements CompletionRepo using the ent client.
type completionRepo struct {
	client *ent.Client
}

func (r *completionRepo) Insert(ctx context.Context, track Track, runID, stepID string) (*StepCompletion, error) {
	created, err := r.client.StepCompletion.Create().
		SetTrack(string(track)).
		SetChapterRunID(runID).
		SetStepID(stepID).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if IsDuplicate(err) {
			// Surface the constraint violation untouched so callers
			// can classify it as a lost race.
			return nil, err
		}
		return nil, fmt.Errorf("insert completion: %w", err)
	}
	return &StepCompletion{
		ChapterRunID: created.ChapterRunID,
		StepID:       created.StepID,
		CompletedAt:  created.CompletedAt,
	}, nil
}

func (r *completionRepo) Count(ctx context.Context, runID string) (int, error) {
	n, err := r.client.StepCompletion.Query().
		Where(stepcompletion.ChapterRunID(runID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return n, nil
}

func (r *completionRepo) ForRun(ctx context.Context, runID string) ([]StepCompletion, error) {
	rows, err := r.client.StepCompletion.Query().
		Where(stepcompletion.ChapterRunID(runID)).
		Order(ent.Asc(stepcompletion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	out := make([]StepCompletion, 0, len(rows))
	for _, c := range rows {
		out = append(out, StepCompletion{
			ChapterRunID: c.ChapterRunID,
			StepID:       c.StepID,
			CompletedAt:  c.CompletedAt,
		})
	}
	return out, nil
}
