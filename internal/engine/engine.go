// Package engine validates and commits step advancement against the
// progression ledger. Progression commits and side-effect dispatch are
// two independently failable stages: a completed step is never rolled
// back because its triggered message failed.
package engine

import (
	"context"
	"fmt"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/dispatch"
	"github.com/halvard/paperchase/internal/progress"
	"github.com/halvard/paperchase/internal/store"
)

// Engine is the quest progression engine. It holds no mutable state of
// its own; every operation reloads from the ledger.
type Engine struct {
	cat         *catalog.Catalog
	runs        store.RunRepo
	completions store.CompletionRepo
	quiz        store.QuizRepo
	dispatcher  *dispatch.Dispatcher
}

// New creates an Engine over the store's repos.
func New(cat *catalog.Catalog, st *store.Store, d *dispatch.Dispatcher) *Engine {
	return &Engine{
		cat:         cat,
		runs:        st.RunRepo(),
		completions: st.CompletionRepo(),
		quiz:        st.QuizRepo(),
		dispatcher:  d,
	}
}

// Result is the outcome of an advance: the freshly derived state plus
// any dispatch error from auto triggers. DispatchErr being non-nil does
// not undo the advance — both facts are reported independently.
type Result struct {
	Run         *store.ChapterRun
	Chapter     *catalog.Chapter
	Views       []progress.StepView
	DispatchErr error
}

// Advance validates and commits completion of the step at expectedIndex.
// expectedIndex is the caller's optimistic-concurrency token: if the
// ledger disagrees, the call fails with StaleAdvanceError and writes
// nothing. Exactly one of two racing identical advances succeeds.
func (e *Engine) Advance(ctx context.Context, track store.Track, chapterID string, expectedIndex int) (*Result, error) {
	run, ch, err := e.activeChapter(ctx, track, chapterID)
	if err != nil {
		return nil, err
	}

	idx, err := e.completions.Count(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	if idx != expectedIndex {
		return nil, &StaleAdvanceError{Expected: expectedIndex, Actual: idx}
	}

	step := ch.StepAt(expectedIndex)
	if step == nil {
		return nil, ErrChapterComplete
	}

	if _, err := e.completions.Insert(ctx, track, run.ID, step.Meta().ID); err != nil {
		if store.IsDuplicate(err) {
			// Lost the race: someone else committed this index first.
			return nil, &StaleAdvanceError{Expected: expectedIndex, Actual: expectedIndex + 1}
		}
		return nil, err
	}

	// Commit done; everything below is dispatch and reporting.
	dispatchErr := e.fireAutoTriggers(ctx, run, ch, step, expectedIndex)

	res, err := e.derive(ctx, run, ch)
	if err != nil {
		return nil, err
	}
	res.DispatchErr = dispatchErr
	return res, nil
}

// fireAutoTriggers resolves auto triggers due after completing the step
// at index idx: quest-complete when the waiting step becomes current,
// passphrase when the completed step is the passphrase step.
func (e *Engine) fireAutoTriggers(ctx context.Context, run *store.ChapterRun, ch *catalog.Chapter, completed catalog.Step, idx int) error {
	var dispatchErr error
	if next := ch.StepAt(idx + 1); next != nil && ch.WaitingStepID != "" && next.Meta().ID == ch.WaitingStepID {
		dispatchErr = e.dispatcher.FireQuestComplete(ctx, run, ch)
	}
	if ws, ok := completed.(*catalog.WebsiteStep); ok {
		if _, ok := ws.Condition.(catalog.PassphraseCondition); ok {
			if err := e.dispatcher.FirePassphrase(ctx, run, ch); err != nil {
				if dispatchErr == nil {
					dispatchErr = err
				}
			}
		}
	}
	return dispatchErr
}

// StepStates returns the derived view of every step in the active
// chapter for the track.
func (e *Engine) StepStates(ctx context.Context, track store.Track, chapterID string) (*Result, error) {
	run, ch, err := e.activeChapter(ctx, track, chapterID)
	if err != nil {
		return nil, err
	}
	return e.derive(ctx, run, ch)
}

// CurrentStepView returns the current step's index and view for the
// player client, or index -1 when the chapter is finished.
func (e *Engine) CurrentStepView(ctx context.Context, track store.Track, chapterID string) (int, *progress.StepView, error) {
	run, ch, err := e.activeChapter(ctx, track, chapterID)
	if err != nil {
		return 0, nil, err
	}
	snap, err := e.runs.Snapshot(ctx, run.ID)
	if err != nil {
		return 0, nil, err
	}
	idx, view := progress.Current(ch, snap)
	return idx, view, nil
}

// ActiveRun returns the track's open chapter run.
func (e *Engine) ActiveRun(ctx context.Context, track store.Track) (*store.ChapterRun, error) {
	return e.runs.Active(ctx, track)
}

// ActivateChapter opens a new run for the chapter. Test-track only.
func (e *Engine) ActivateChapter(ctx context.Context, track store.Track, chapterID string) (*store.ChapterRun, error) {
	if e.cat.Chapter(chapterID) == nil {
		return nil, fmt.Errorf("unknown chapter %q", chapterID)
	}
	return e.runs.Activate(ctx, track, chapterID)
}

// ResetTrack clears the track's ledger. Test-track only.
func (e *Engine) ResetTrack(ctx context.Context, track store.Track) error {
	return e.runs.ResetTrack(ctx, track)
}

// CompleteChapterForcefully bulk-completes the active chapter for QA.
// Test-track only.
func (e *Engine) CompleteChapterForcefully(ctx context.Context, track store.Track) error {
	if track != store.TrackTest {
		return store.ErrForbiddenOnLiveTrack
	}
	run, err := e.runs.Active(ctx, track)
	if err != nil {
		return err
	}
	ch := e.cat.Chapter(run.ChapterID)
	if ch == nil {
		return fmt.Errorf("active run plays unknown chapter %q", run.ChapterID)
	}
	seeds := make([]store.StepSeed, 0, len(ch.Steps))
	for _, s := range ch.Steps {
		seed := store.StepSeed{StepID: s.Meta().ID}
		if ms, ok := s.(*catalog.MessageStep); ok {
			seed.IsMessage = true
			seed.Channel = string(ms.Channel)
			seed.Recipient = ms.Recipient
		}
		seeds = append(seeds, seed)
	}
	return e.runs.CompleteChapter(ctx, track, run.ID, seeds)
}

// activeChapter resolves the track's active run and checks it plays the
// claimed chapter.
func (e *Engine) activeChapter(ctx context.Context, track store.Track, chapterID string) (*store.ChapterRun, *catalog.Chapter, error) {
	run, err := e.runs.Active(ctx, track)
	if err != nil {
		return nil, nil, err
	}
	if run.ChapterID != chapterID {
		return nil, nil, fmt.Errorf("%w: active run plays %s, not %s", ErrNoActiveChapter, run.ChapterID, chapterID)
	}
	ch := e.cat.Chapter(chapterID)
	if ch == nil {
		return nil, nil, fmt.Errorf("unknown chapter %q", chapterID)
	}
	return run, ch, nil
}

func (e *Engine) derive(ctx context.Context, run *store.ChapterRun, ch *catalog.Chapter) (*Result, error) {
	snap, err := e.runs.Snapshot(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Run:     run,
		Chapter: ch,
		Views:   progress.DeriveStepStates(ch, snap),
	}, nil
}
