package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/dispatch"
	"github.com/halvard/paperchase/internal/progress"
	"github.com/halvard/paperchase/internal/store"
)

// testCatalog is a six-step chapter exercising manual, passphrase,
// quiz, and quest-complete progression.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New("v1.0.0", []*catalog.Chapter{{
		ID:            "ch1",
		Name:          "The Hollow Oak",
		WaitingStepID: "w5",
		Steps: []catalog.Step{
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m0", Order: 0, Name: "Opening letter"},
				Channel:   catalog.ChannelLetter,
				Recipient: "player",
				Trigger:   catalog.ManualTrigger{},
			},
			&catalog.WebsiteStep{
				StepMeta:  catalog.StepMeta{ID: "w1", Order: 1, Name: "The oak"},
				Condition: catalog.PassphraseCondition{Phrase: "hollow oak"},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m2", Order: 2, Name: "Delayed reply"},
				Channel:   catalog.ChannelSMS,
				Recipient: "+4711",
				Trigger:   catalog.PassphraseTrigger{Delay: 30 * time.Minute},
			},
			&catalog.WebsiteStep{
				StepMeta:  catalog.StepMeta{ID: "w3", Order: 3, Name: "The riddle"},
				Condition: catalog.QuizCondition{},
				Questions: []catalog.Question{{
					Text:    "What was carved into the bench?",
					Options: []string{"a heart", "a date"},
					Answer:  1,
					Hints:   []string{"Look closer.", "Four digits."},
				}},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m4", Order: 4, Name: "Closing email"},
				Channel:   catalog.ChannelEmail,
				Recipient: "end@example.com",
				Trigger:   catalog.QuestCompleteTrigger{},
			},
			&catalog.WebsiteStep{
				StepMeta:  catalog.StepMeta{ID: "w5", Order: 5, Name: "The reveal"},
				Condition: catalog.TapCondition{},
			},
		},
	}})
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return cat
}

type fixture struct {
	eng  *Engine
	s    *store.Store
	mock *dispatch.MockMessenger
	now  time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	f := &fixture{
		s:    s,
		mock: &dispatch.MockMessenger{},
		now:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	cat := testCatalog(t)
	d := dispatch.New(cat, s.RunRepo(), s.MessageRepo(), f.mock).
		WithClock(func() time.Time { return f.now })
	f.eng = New(cat, s, d)
	return f
}

func (f *fixture) activate(t *testing.T) *store.ChapterRun {
	t.Helper()
	run, err := f.eng.ActivateChapter(context.Background(), store.TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	return run
}

// advanceTo walks progression forward until n steps are complete,
// submitting the right proof for each website step.
func (f *fixture) advanceTo(t *testing.T, n int) *Result {
	t.Helper()
	ctx := context.Background()
	var res *Result
	var err error
	for i := 0; i < n; i++ {
		switch i {
		case 1:
			res, err = f.eng.SubmitAdvanceCondition(ctx, store.TrackTest, "ch1", i, PassphraseProof{Phrase: "hollow oak"})
		case 3:
			res, err = f.eng.SubmitAdvanceCondition(ctx, store.TrackTest, "ch1", i, QuizProof{Selections: []int{1}})
		case 5:
			res, err = f.eng.SubmitAdvanceCondition(ctx, store.TrackTest, "ch1", i, TapProof{})
		default:
			res, err = f.eng.Advance(ctx, store.TrackTest, "ch1", i)
		}
		if err != nil {
			t.Fatalf("advance to %d: %v", i+1, err)
		}
	}
	return res
}

func TestAdvanceHappyPath(t *testing.T) {
	f := newFixture(t)
	f.activate(t)

	res, err := f.eng.Advance(context.Background(), store.TrackTest, "ch1", 0)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if res.DispatchErr != nil {
		t.Errorf("dispatch err = %v, want nil", res.DispatchErr)
	}
	if res.Views[0].State != progress.StateSent {
		t.Errorf("step 0 state = %s, want sent", res.Views[0].State)
	}
	if res.Views[1].State != progress.StateActive {
		t.Errorf("step 1 state = %s, want active", res.Views[1].State)
	}
	if res.Views[2].State != progress.StateLocked {
		t.Errorf("step 2 state = %s, want locked", res.Views[2].State)
	}
}

func TestAdvanceStale(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	ctx := context.Background()

	if _, err := f.eng.Advance(ctx, store.TrackTest, "ch1", 0); err != nil {
		t.Fatalf("first advance: %v", err)
	}

	// A duplicate of the same request is stale, not a double-advance.
	_, err := f.eng.Advance(ctx, store.TrackTest, "ch1", 0)
	var sa *StaleAdvanceError
	if !errors.As(err, &sa) {
		t.Fatalf("err = %v, want StaleAdvanceError", err)
	}
	if sa.Expected != 0 || sa.Actual != 1 {
		t.Errorf("stale = %+v, want expected 0 actual 1", sa)
	}
	if !IsStaleAdvance(err) {
		t.Error("IsStaleAdvance = false")
	}

	// Claiming an index ahead of the ledger is equally stale.
	_, err = f.eng.Advance(ctx, store.TrackTest, "ch1", 4)
	if !IsStaleAdvance(err) {
		t.Errorf("ahead-of-ledger err = %v, want stale", err)
	}

	// The ledger holds exactly one completion.
	n, err := f.s.CompletionRepo().Count(ctx, mustActiveRunID(t, f))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("completions = %d, want 1", n)
	}
}

func mustActiveRunID(t *testing.T, f *fixture) string {
	t.Helper()
	run, err := f.eng.ActiveRun(context.Background(), store.TrackTest)
	if err != nil {
		t.Fatalf("active run: %v", err)
	}
	return run.ID
}

func TestAdvanceWithoutActiveRun(t *testing.T) {
	f := newFixture(t)
	_, err := f.eng.Advance(context.Background(), store.TrackTest, "ch1", 0)
	if !errors.Is(err, ErrNoActiveChapter) {
		t.Fatalf("err = %v, want ErrNoActiveChapter", err)
	}
}

func TestAdvanceChapterMismatch(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	_, err := f.eng.Advance(context.Background(), store.TrackTest, "ch2", 0)
	if !errors.Is(err, ErrNoActiveChapter) {
		t.Fatalf("err = %v, want ErrNoActiveChapter", err)
	}
}

func TestAdvancePastFinalStep(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	f.advanceTo(t, 6)

	_, err := f.eng.Advance(context.Background(), store.TrackTest, "ch1", 6)
	if !errors.Is(err, ErrChapterComplete) {
		t.Fatalf("err = %v, want ErrChapterComplete", err)
	}
}

func TestPassphraseAdvanceSchedulesDelayedReply(t *testing.T) {
	f := newFixture(t)
	run := f.activate(t)
	ctx := context.Background()
	f.advanceTo(t, 1)

	res, err := f.eng.SubmitAdvanceCondition(ctx, store.TrackTest, "ch1", 1, PassphraseProof{Phrase: "  Hollow  OAK "})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.DispatchErr != nil {
		t.Errorf("dispatch err = %v", res.DispatchErr)
	}

	attempt, err := f.s.MessageRepo().NonFailed(ctx, run.ID, "m2", store.RolePrimary)
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	want := f.now.Add(30 * time.Minute)
	if attempt == nil || attempt.Status != store.StatusScheduled || !attempt.ScheduledAt.Equal(want) {
		t.Errorf("attempt = %+v, want scheduled at %v", attempt, want)
	}
	if len(f.mock.Sent) != 0 {
		t.Error("passphrase trigger must not transport immediately")
	}
	if res.Views[2].State != progress.StateScheduled {
		t.Errorf("step 2 state = %s, want scheduled", res.Views[2].State)
	}
}

func TestSubmitWrongPassphrase(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	ctx := context.Background()
	f.advanceTo(t, 1)

	_, err := f.eng.SubmitAdvanceCondition(ctx, store.TrackTest, "ch1", 1, PassphraseProof{Phrase: "solid oak"})
	var ce *ConditionError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConditionError", err)
	}

	// Rejection writes nothing.
	idx, view, err := f.eng.CurrentStepView(ctx, store.TrackTest, "ch1")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if idx != 1 || view.StepID != "w1" {
		t.Errorf("current = %d %s, want 1 w1", idx, view.StepID)
	}
}

func TestSubmitWrongProofKind(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	f.advanceTo(t, 1)

	_, err := f.eng.SubmitAdvanceCondition(context.Background(), store.TrackTest, "ch1", 1, TapProof{})
	var ce *ConditionError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConditionError", err)
	}
}

func TestQuizAdvanceAuditsAnswers(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	ctx := context.Background()
	f.advanceTo(t, 3)

	// A wrong answer still advances; correctness is audit-only.
	res, err := f.eng.SubmitAdvanceCondition(ctx, store.TrackTest, "ch1", 3, QuizProof{Selections: []int{0}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Views[3].State != progress.StateSent {
		t.Errorf("quiz step state = %s, want sent", res.Views[3].State)
	}

	rows, err := f.s.Client().QuizAnswer.Query().All(ctx)
	if err != nil {
		t.Fatalf("audit rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(rows))
	}
	if rows[0].SelectedOption != 0 || rows[0].Correct {
		t.Errorf("audit row = %+v, want incorrect selection 0", rows[0])
	}
}

func TestQuizRejectsWrongAnswerCount(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	f.advanceTo(t, 3)

	_, err := f.eng.SubmitAdvanceCondition(context.Background(), store.TrackTest, "ch1", 3, QuizProof{Selections: []int{0, 1}})
	var ce *ConditionError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConditionError", err)
	}
}

func TestQuestCompleteFiresAtWaitingStep(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	f.advanceTo(t, 4)

	if got := len(f.mock.SentTo("end@example.com")); got != 0 {
		t.Fatalf("premature quest-complete transports = %d", got)
	}

	// Completing m4 makes the waiting step current and fires the trigger.
	res, err := f.eng.Advance(context.Background(), store.TrackTest, "ch1", 4)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if res.DispatchErr != nil {
		t.Errorf("dispatch err = %v", res.DispatchErr)
	}
	if got := len(f.mock.SentTo("end@example.com")); got != 1 {
		t.Errorf("quest-complete transports = %d, want 1", got)
	}
	if res.Views[4].State != progress.StateSent {
		t.Errorf("step 4 state = %s, want sent", res.Views[4].State)
	}
}

func TestDispatchFailureDoesNotRollBackAdvance(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	ctx := context.Background()
	f.advanceTo(t, 4)

	f.mock.Err = errors.New("gateway down")
	res, err := f.eng.Advance(ctx, store.TrackTest, "ch1", 4)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if res.DispatchErr == nil {
		t.Fatal("expected dispatch error to be reported")
	}

	// The completion stands regardless.
	n, err := f.s.CompletionRepo().Count(ctx, mustActiveRunID(t, f))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("completions = %d, want 5", n)
	}
}

func TestCurrentStepViewAtChapterEnd(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	f.advanceTo(t, 6)

	idx, view, err := f.eng.CurrentStepView(context.Background(), store.TrackTest, "ch1")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if idx != -1 || view != nil {
		t.Errorf("current = %d %+v, want -1 nil", idx, view)
	}
}

func TestActivateUnknownChapter(t *testing.T) {
	f := newFixture(t)
	_, err := f.eng.ActivateChapter(context.Background(), store.TrackTest, "ch99")
	if err == nil {
		t.Fatal("expected error for unknown chapter")
	}
}

func TestCompleteChapterForcefully(t *testing.T) {
	f := newFixture(t)
	f.activate(t)
	ctx := context.Background()

	if err := f.eng.CompleteChapterForcefully(ctx, store.TrackTest); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Run closed, so no active chapter remains.
	_, err := f.eng.ActiveRun(ctx, store.TrackTest)
	if !errors.Is(err, ErrNoActiveChapter) {
		t.Errorf("active after force-complete = %v, want ErrNoActiveChapter", err)
	}
	if len(f.mock.Sent) != 0 {
		t.Error("forced completion must not transport real messages")
	}
}

func TestCompleteChapterForcefullyForbiddenOnLive(t *testing.T) {
	f := newFixture(t)
	err := f.eng.CompleteChapterForcefully(context.Background(), store.TrackLive)
	if !errors.Is(err, store.ErrForbiddenOnLiveTrack) {
		t.Fatalf("err = %v, want ErrForbiddenOnLiveTrack", err)
	}
}
