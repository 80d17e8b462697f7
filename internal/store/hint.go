package store

import (
	"context"
	"fmt"
	"time"

	"github.com/halvard/paperchase/ent"
	"github.com/halvard/paperchase/ent/hintreveal"
)

// hintRepo implements HintRepo using the ent client.
type hintRepo struct {
	client *ent.Client
}

func (r *hintRepo) Tiers(ctx context.Context, runID, stepID string) ([]int, error) {
	rows, err := r.client.HintReveal.Query().
		Where(
			hintreveal.ChapterRunID(runID),
			hintreveal.StepID(stepID),
		).
		Order(ent.Asc(hintreveal.FieldTier)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query hint reveals: %w", err)
	}
	tiers := make([]int, 0, len(rows))
	for _, h := range rows {
		tiers = append(tiers, h.Tier)
	}
	return tiers, nil
}

func (r *hintRepo) Insert(ctx context.Context, track Track, runID, stepID string, tier int) (*HintReveal, error) {
	created, err := r.client.HintReveal.Create().
		SetTrack(string(track)).
		SetChapterRunID(runID).
		SetStepID(stepID).
		SetTier(tier).
		SetRevealedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if IsDuplicate(err) {
			return nil, err
		}
		return nil, fmt.Errorf("insert hint reveal: %w", err)
	}
	return &HintReveal{
		ChapterRunID: created.ChapterRunID,
		StepID:       created.StepID,
		Tier:         created.Tier,
		RevealedAt:   created.RevealedAt,
	}, nil
}
