package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StepSeed describes one catalog step for forced chapter completion.
// Message steps also get a terminal attempt row so derived state shows
// them delivered.
type StepSeed struct {
	StepID    string
	IsMessage bool
	Channel   string
	Recipient string
}

// CompleteChapter bulk-inserts a completion for every step and a
// delivered attempt for every message step, then closes the run. One
// transaction; QA-only, so test-track only.
func (r *runRepo) CompleteChapter(ctx context.Context, track Track, runID string, steps []StepSeed) error {
	if err := guardDestructive(track); err != nil {
		return err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin complete chapter: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, s := range steps {
		_, err := tx.StepCompletion.Create().
			SetTrack(string(track)).
			SetChapterRunID(runID).
			SetStepID(s.StepID).
			SetCompletedAt(now).
			Save(ctx)
		if err != nil && !IsDuplicate(err) {
			return fmt.Errorf("seed completion %s: %w", s.StepID, err)
		}
		if !s.IsMessage {
			continue
		}
		_, err = tx.MessageAttempt.Create().
			SetID(uuid.NewString()).
			SetTrack(string(track)).
			SetChapterRunID(runID).
			SetStepID(s.StepID).
			SetRole(string(RolePrimary)).
			SetChannel(s.Channel).
			SetRecipient(s.Recipient).
			SetStatus(string(StatusDelivered)).
			SetCreatedAt(now).
			SetSentAt(now).
			SetDeliveredAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed attempt %s: %w", s.StepID, err)
		}
	}

	_, err = tx.ChapterRun.UpdateOneID(runID).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("close run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit complete chapter: %w", err)
	}
	return nil
}
