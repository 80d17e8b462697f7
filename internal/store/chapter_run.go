package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halvard/paperchase/ent"
	"github.com/halvard/paperchase/ent/chapterrun"
	"github.com/halvard/paperchase/ent/hintreveal"
	"github.com/halvard/paperchase/ent/messageattempt"
	"github.com/halvard/paperchase/ent/quizanswer"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

// runRepo implements RunRepo using the ent client.
type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Activate(ctx context.Context, track Track, chapterID string) (*ChapterRun, error) {
	if err := guardDestructive(track); err != nil {
		return nil, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin activate: %w", err)
	}
	defer tx.Rollback()

	// Close any still-open run on the track; a single active run per
	// track is the engine's core assumption.
	now := time.Now().UTC()
	_, err = tx.ChapterRun.Update().
		Where(
			chapterrun.Track(string(track)),
			chapterrun.CompletedAtIsNil(),
		).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("close stale run: %w", err)
	}

	id := uuid.NewString()
	created, err := tx.ChapterRun.Create().
		SetID(id).
		SetTrack(string(track)).
		SetChapterID(chapterID).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit activate: %w", err)
	}
	return entRunToRun(created), nil
}

func (r *runRepo) Active(ctx context.Context, track Track) (*ChapterRun, error) {
	run, err := r.client.ChapterRun.Query().
		Where(
			chapterrun.Track(string(track)),
			chapterrun.CompletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoActiveChapter
		}
		return nil, fmt.Errorf("query active run: %w", err)
	}
	return entRunToRun(run), nil
}

func (r *runRepo) Complete(ctx context.Context, runID string) error {
	_, err := r.client.ChapterRun.UpdateOneID(runID).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete run: %w", err)
	}
	return nil
}

func (r *runRepo) Snapshot(ctx context.Context, runID string) (*Snapshot, error) {
	run, err := r.client.ChapterRun.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}

	comps, err := r.client.StepCompletion.Query().
		Where(stepcompletion.ChapterRunID(runID)).
		Order(ent.Asc(stepcompletion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	attempts, err := r.client.MessageAttempt.Query().
		Where(messageattempt.ChapterRunID(runID)).
		Order(ent.Asc(messageattempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	snap := &Snapshot{Run: *entRunToRun(run)}
	for _, c := range comps {
		snap.Completions = append(snap.Completions, StepCompletion{
			ChapterRunID: c.ChapterRunID,
			StepID:       c.StepID,
			CompletedAt:  c.CompletedAt,
		})
	}
	for _, a := range attempts {
		snap.Attempts = append(snap.Attempts, *entAttemptToAttempt(a))
	}
	return snap, nil
}

func (r *runRepo) ResetTrack(ctx context.Context, track Track) error {
	if err := guardDestructive(track); err != nil {
		return err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	t := string(track)
	if _, err := tx.MessageAttempt.Delete().Where(messageattempt.Track(t)).Exec(ctx); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	if _, err := tx.HintReveal.Delete().Where(hintreveal.Track(t)).Exec(ctx); err != nil {
		return fmt.Errorf("reset hints: %w", err)
	}
	if _, err := tx.QuizAnswer.Delete().Where(quizanswer.Track(t)).Exec(ctx); err != nil {
		return fmt.Errorf("reset quiz answers: %w", err)
	}
	if _, err := tx.StepCompletion.Delete().Where(stepcompletion.Track(t)).Exec(ctx); err != nil {
		return fmt.Errorf("reset completions: %w", err)
	}
	if _, err := tx.ChapterRun.Delete().Where(chapterrun.Track(t)).Exec(ctx); err != nil {
		return fmt.Errorf("reset runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func entRunToRun(r *ent.ChapterRun) *ChapterRun {
	return &ChapterRun{
		ID:          r.ID,
		Track:       Track(r.Track),
		ChapterID:   r.ChapterID,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
	}
}
