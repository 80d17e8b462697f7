package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestParseTrack(t *testing.T) {
	if tr, err := ParseTrack("test"); err != nil || tr != TrackTest {
		t.Errorf("ParseTrack(test) = %v, %v", tr, err)
	}
	if tr, err := ParseTrack("live"); err != nil || tr != TrackLive {
		t.Errorf("ParseTrack(live) = %v, %v", tr, err)
	}
	if _, err := ParseTrack("staging"); err == nil {
		t.Error("expected error for unknown track")
	}
}

func TestActivateAndActive(t *testing.T) {
	s := openTestStore(t)
	runs := s.RunRepo()
	ctx := context.Background()

	// Nothing active yet.
	_, err := runs.Active(ctx, TrackTest)
	if !errors.Is(err, ErrNoActiveChapter) {
		t.Fatalf("active (empty) = %v, want ErrNoActiveChapter", err)
	}

	run, err := runs.Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if run.ChapterID != "ch1" || run.Track != TrackTest || !run.Active() {
		t.Errorf("unexpected run: %+v", run)
	}

	got, err := runs.Active(ctx, TrackTest)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if got.ID != run.ID {
		t.Errorf("active run = %s, want %s", got.ID, run.ID)
	}
}

func TestActivateClosesStaleRun(t *testing.T) {
	s := openTestStore(t)
	runs := s.RunRepo()
	ctx := context.Background()

	first, err := runs.Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate first: %v", err)
	}
	second, err := runs.Activate(ctx, TrackTest, "ch2")
	if err != nil {
		t.Fatalf("activate second: %v", err)
	}

	got, err := runs.Active(ctx, TrackTest)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if got.ID != second.ID || got.ChapterID != "ch2" {
		t.Errorf("active run = %+v, want second run", got)
	}

	snap, err := runs.Snapshot(ctx, first.ID)
	if err != nil {
		t.Fatalf("snapshot first: %v", err)
	}
	if snap.Run.Active() {
		t.Error("stale run still open after re-activate")
	}
}

func TestActivateForbiddenOnLive(t *testing.T) {
	s := openTestStore(t)
	runs := s.RunRepo()
	ctx := context.Background()

	_, err := runs.Activate(ctx, TrackLive, "ch1")
	if !errors.Is(err, ErrForbiddenOnLiveTrack) {
		t.Fatalf("activate on live = %v, want ErrForbiddenOnLiveTrack", err)
	}

	// The guard must run before any write.
	count, err := s.Client().ChapterRun.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if count != 0 {
		t.Errorf("run rows = %d, want 0", count)
	}
}

func TestCompletionDuplicateInsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.RunRepo().Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	comps := s.CompletionRepo()
	if _, err := comps.Insert(ctx, TrackTest, run.ID, "s0"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err = comps.Insert(ctx, TrackTest, run.ID, "s0")
	if err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
	if !IsDuplicate(err) {
		t.Errorf("IsDuplicate(%v) = false, want true", err)
	}

	n, err := comps.Count(ctx, run.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("completions = %d, want 1", n)
	}
}

func TestCompletionOrderPreserved(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.RunRepo().Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	comps := s.CompletionRepo()
	for _, id := range []string{"s0", "s1", "s2"} {
		if _, err := comps.Insert(ctx, TrackTest, run.ID, id); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	rows, err := comps.ForRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("for run: %v", err)
	}
	for i, want := range []string{"s0", "s1", "s2"} {
		if rows[i].StepID != want {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].StepID, want)
		}
	}
}

func TestHintDuplicateTier(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.RunRepo().Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	hints := s.HintRepo()
	if _, err := hints.Insert(ctx, TrackTest, run.ID, "s1", 1); err != nil {
		t.Fatalf("insert tier 1: %v", err)
	}
	if _, err := hints.Insert(ctx, TrackTest, run.ID, "s1", 2); err != nil {
		t.Fatalf("insert tier 2: %v", err)
	}

	_, err = hints.Insert(ctx, TrackTest, run.ID, "s1", 1)
	if !IsDuplicate(err) {
		t.Errorf("duplicate tier insert: %v, want constraint error", err)
	}

	tiers, err := hints.Tiers(ctx, run.ID, "s1")
	if err != nil {
		t.Fatalf("tiers: %v", err)
	}
	if len(tiers) != 2 || tiers[0] != 1 || tiers[1] != 2 {
		t.Errorf("tiers = %v, want [1 2]", tiers)
	}
}

func TestMessageTransitions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.RunRepo().Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	msgs := s.MessageRepo()
	when := time.Now().UTC()
	a := &MessageAttempt{
		Track:        TrackTest,
		ChapterRunID: run.ID,
		StepID:       "s0",
		Role:         RolePrimary,
		Channel:      "sms",
		Recipient:    "+47",
		Status:       StatusScheduled,
		ScheduledAt:  &when,
	}
	if err := msgs.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == "" {
		t.Fatal("create did not assign an id")
	}

	// Delivered before sent must be rejected.
	if err := msgs.MarkDelivered(ctx, a.ID, when); err == nil {
		t.Fatal("delivered from scheduled should fail")
	}

	if err := msgs.MarkSent(ctx, a.ID, when); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	// Sending twice must be rejected.
	if err := msgs.MarkSent(ctx, a.ID, when); err == nil {
		t.Fatal("second mark sent should fail")
	}

	if err := msgs.MarkDelivered(ctx, a.ID, when); err != nil {
		t.Fatalf("mark delivered: %v", err)
	}
	// Delivered is terminal.
	if err := msgs.MarkFailed(ctx, a.ID, "late failure"); err == nil {
		t.Fatal("failing a delivered attempt should be rejected")
	}

	got, err := msgs.NonFailed(ctx, run.ID, "s0", RolePrimary)
	if err != nil {
		t.Fatalf("non-failed: %v", err)
	}
	if got == nil || got.Status != StatusDelivered {
		t.Errorf("non-failed = %+v, want delivered attempt", got)
	}
}

func TestMessageMarkFailed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.RunRepo().Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	msgs := s.MessageRepo()
	a := &MessageAttempt{
		Track:        TrackTest,
		ChapterRunID: run.ID,
		StepID:       "s0",
		Role:         RolePrimary,
		Channel:      "sms",
		Recipient:    "+47",
		Status:       StatusScheduled,
	}
	if err := msgs.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := msgs.MarkFailed(ctx, a.ID, "gateway down"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	// A failed attempt no longer counts as the step's live attempt.
	got, err := msgs.NonFailed(ctx, run.ID, "s0", RolePrimary)
	if err != nil {
		t.Fatalf("non-failed: %v", err)
	}
	if got != nil {
		t.Errorf("non-failed = %+v, want nil after failure", got)
	}

	rows, err := msgs.ForRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("for run: %v", err)
	}
	if len(rows) != 1 || rows[0].Status != StatusFailed || rows[0].Error != "gateway down" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSnapshotLoadsLedger(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.RunRepo().Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := s.CompletionRepo().Insert(ctx, TrackTest, run.ID, "s0"); err != nil {
		t.Fatalf("insert completion: %v", err)
	}
	a := &MessageAttempt{
		Track:        TrackTest,
		ChapterRunID: run.ID,
		StepID:       "s0",
		Role:         RolePrimary,
		Channel:      "letter",
		Recipient:    "player",
		Status:       StatusSent,
	}
	if err := s.MessageRepo().Create(ctx, a); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	snap, err := s.RunRepo().Snapshot(ctx, run.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.CurrentIndex() != 1 {
		t.Errorf("current index = %d, want 1", snap.CurrentIndex())
	}
	if got := snap.PrimaryAttempt("s0"); got == nil || got.Status != StatusSent {
		t.Errorf("primary attempt = %+v, want sent", got)
	}
	if snap.CompletedAt("s0") == nil {
		t.Error("missing completion timestamp")
	}
	if snap.CompletedAt("s1") != nil {
		t.Error("unexpected timestamp for untouched step")
	}
}

func TestResetTrackIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	runs := s.RunRepo()

	testRun, err := runs.Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate test run: %v", err)
	}
	if _, err := s.CompletionRepo().Insert(ctx, TrackTest, testRun.ID, "s0"); err != nil {
		t.Fatalf("insert test completion: %v", err)
	}
	if _, err := s.HintRepo().Insert(ctx, TrackTest, testRun.ID, "s1", 1); err != nil {
		t.Fatalf("insert test hint: %v", err)
	}

	// Seed live-track rows directly; Activate refuses the live track.
	liveRun, err := s.Client().ChapterRun.Create().
		SetID("live-run").
		SetTrack(string(TrackLive)).
		SetChapterID("ch1").
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed live run: %v", err)
	}
	if _, err := s.CompletionRepo().Insert(ctx, TrackLive, liveRun.ID, "s0"); err != nil {
		t.Fatalf("insert live completion: %v", err)
	}

	if err := runs.ResetTrack(ctx, TrackTest); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := runs.Active(ctx, TrackTest); !errors.Is(err, ErrNoActiveChapter) {
		t.Errorf("test track survived reset: %v", err)
	}
	liveComps, err := s.CompletionRepo().ForRun(ctx, liveRun.ID)
	if err != nil {
		t.Fatalf("live completions: %v", err)
	}
	if len(liveComps) != 1 {
		t.Errorf("live completions = %d, want 1 (reset leaked across tracks)", len(liveComps))
	}
}

func TestResetTrackForbiddenOnLive(t *testing.T) {
	s := openTestStore(t)
	err := s.RunRepo().ResetTrack(context.Background(), TrackLive)
	if !errors.Is(err, ErrForbiddenOnLiveTrack) {
		t.Fatalf("reset live = %v, want ErrForbiddenOnLiveTrack", err)
	}
}

func TestCompleteChapter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	runs := s.RunRepo()

	run, err := runs.Activate(ctx, TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	// One step already done; CompleteChapter must tolerate the overlap.
	if _, err := s.CompletionRepo().Insert(ctx, TrackTest, run.ID, "s0"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	seeds := []StepSeed{
		{StepID: "s0", IsMessage: true, Channel: "letter", Recipient: "player"},
		{StepID: "s1"},
		{StepID: "s2", IsMessage: true, Channel: "sms", Recipient: "+47"},
	}
	if err := runs.CompleteChapter(ctx, TrackTest, run.ID, seeds); err != nil {
		t.Fatalf("complete chapter: %v", err)
	}

	snap, err := runs.Snapshot(ctx, run.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Run.Active() {
		t.Error("run still open after forced completion")
	}
	if snap.CurrentIndex() != 3 {
		t.Errorf("completions = %d, want 3", snap.CurrentIndex())
	}
	for _, stepID := range []string{"s0", "s2"} {
		a := snap.PrimaryAttempt(stepID)
		if a == nil || a.Status != StatusDelivered {
			t.Errorf("attempt for %s = %+v, want delivered", stepID, a)
		}
	}
	if snap.PrimaryAttempt("s1") != nil {
		t.Error("website step got an attempt row")
	}
}

func TestCompleteChapterForbiddenOnLive(t *testing.T) {
	s := openTestStore(t)
	err := s.RunRepo().CompleteChapter(context.Background(), TrackLive, "run", nil)
	if !errors.Is(err, ErrForbiddenOnLiveTrack) {
		t.Fatalf("complete chapter live = %v, want ErrForbiddenOnLiveTrack", err)
	}
}
