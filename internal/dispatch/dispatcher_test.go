package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// fixtureCatalog covers every trigger kind the dispatcher handles.
func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New("v1.0.0", []*catalog.Chapter{{
		ID:            "ch1",
		Name:          "The Hollow Oak",
		WaitingStepID: "w1",
		Steps: []catalog.Step{
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m0", Order: 0, Name: "Opening letter"},
				Channel:   catalog.ChannelLetter,
				Recipient: "player",
				Body:      "Follow the river.",
				Trigger:   catalog.ManualTrigger{},
				Companion: &catalog.Companion{
					Channel:   catalog.ChannelEmail,
					Recipient: "companion@example.com",
					Body:      "She is on her way.",
				},
			},
			&catalog.WebsiteStep{
				StepMeta:  catalog.StepMeta{ID: "w1", Order: 1, Name: "The oak"},
				Condition: catalog.PassphraseCondition{Phrase: "hollow oak"},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m2", Order: 2, Name: "Morning letter"},
				Channel:   catalog.ChannelSMS,
				Recipient: "+4711",
				Body:      "Look under the bench.",
				Trigger:   catalog.ScheduledTrigger{},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m3", Order: 3, Name: "Delayed reply"},
				Channel:   catalog.ChannelSMS,
				Recipient: "+4711",
				Body:      "You found it.",
				Trigger:   catalog.PassphraseTrigger{Delay: 45 * time.Minute},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "m4", Order: 4, Name: "Closing email"},
				Channel:   catalog.ChannelEmail,
				Recipient: "player@example.com",
				Body:      "The chase is over.",
				Trigger:   catalog.QuestCompleteTrigger{},
			},
		},
	}})
	if err != nil {
		t.Fatalf("build fixture catalog: %v", err)
	}
	return cat
}

type fixture struct {
	d    *Dispatcher
	s    *store.Store
	run  *store.ChapterRun
	mock *MockMessenger
	now  time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	run, err := s.RunRepo().Activate(context.Background(), store.TrackTest, "ch1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	f := &fixture{
		s:    s,
		run:  run,
		mock: &MockMessenger{},
		now:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	f.d = New(fixtureCatalog(t), s.RunRepo(), s.MessageRepo(), f.mock).
		WithClock(func() time.Time { return f.now })
	return f
}

func TestSendStepRecordsAttemptAndFansOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	attempt, err := f.d.SendStep(ctx, store.TrackTest, "m0")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if attempt.Status != store.StatusSent || attempt.Role != store.RolePrimary {
		t.Errorf("attempt = %+v, want sent primary", attempt)
	}
	if attempt.SentAt == nil {
		t.Error("sent attempt missing SentAt")
	}

	if got := len(f.mock.SentTo("player")); got != 1 {
		t.Errorf("primary transports = %d, want 1", got)
	}
	if got := len(f.mock.SentTo("companion@example.com")); got != 1 {
		t.Errorf("companion transports = %d, want 1", got)
	}

	comp, err := f.s.MessageRepo().NonFailed(ctx, f.run.ID, "m0", store.RoleCompanion)
	if err != nil {
		t.Fatalf("companion attempt: %v", err)
	}
	if comp == nil || comp.Status != store.StatusSent {
		t.Errorf("companion attempt = %+v, want sent", comp)
	}
}

func TestSendStepIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.d.SendStep(ctx, store.TrackTest, "m0")
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	second, err := f.d.SendStep(ctx, store.TrackTest, "m0")
	if err != nil {
		t.Fatalf("second send: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second send created a new attempt %s (first %s)", second.ID, first.ID)
	}
	if got := len(f.mock.SentTo("player")); got != 1 {
		t.Errorf("primary transports = %d, want 1", got)
	}
}

func TestSendStepTransportFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mock.Err = errors.New("gateway down")

	attempt, err := f.d.SendStep(ctx, store.TrackTest, "m0")
	var de *DispatchError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DispatchError", err)
	}
	if de.StepID != "m0" || de.Companion {
		t.Errorf("dispatch error = %+v", de)
	}
	if attempt == nil || attempt.Status != store.StatusFailed || attempt.Error == "" {
		t.Errorf("attempt = %+v, want recorded failure", attempt)
	}

	// The failed row does not block a later retry.
	live, qerr := f.s.MessageRepo().NonFailed(ctx, f.run.ID, "m0", store.RolePrimary)
	if qerr != nil {
		t.Fatalf("non-failed: %v", qerr)
	}
	if live != nil {
		t.Errorf("non-failed attempt = %+v, want nil", live)
	}
}

func TestRetryStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mock.Err = errors.New("gateway down")
	if _, err := f.d.SendStep(ctx, store.TrackTest, "m0"); err == nil {
		t.Fatal("expected transport failure")
	}

	f.mock.Err = nil
	attempt, err := f.d.RetryStep(ctx, store.TrackTest, "m0")
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if attempt.Status != store.StatusSent {
		t.Errorf("retried attempt status = %s, want sent", attempt.Status)
	}

	// Both rows survive; the ledger keeps the failure.
	rows, err := f.s.MessageRepo().ForRun(ctx, f.run.ID)
	if err != nil {
		t.Fatalf("for run: %v", err)
	}
	var primaries int
	for _, a := range rows {
		if a.StepID == "m0" && a.Role == store.RolePrimary {
			primaries++
		}
	}
	if primaries != 2 {
		t.Errorf("primary rows = %d, want 2 (failed + retried)", primaries)
	}

	// Retrying a live attempt is refused.
	if _, err := f.d.RetryStep(ctx, store.TrackTest, "m0"); err == nil {
		t.Error("retry with a sent attempt should fail")
	}
}

func TestCompanionFailureLeavesPrimarySent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mock.FailFor = map[string]error{"companion@example.com": errors.New("bounce")}

	attempt, err := f.d.SendStep(ctx, store.TrackTest, "m0")
	var de *DispatchError
	if !errors.As(err, &de) || !de.Companion {
		t.Fatalf("err = %v, want companion *DispatchError", err)
	}
	if attempt == nil || attempt.Status != store.StatusSent {
		t.Errorf("primary attempt = %+v, want sent despite companion failure", attempt)
	}

	comp, err := f.s.MessageRepo().NonFailed(ctx, f.run.ID, "m0", store.RoleCompanion)
	if err != nil {
		t.Fatalf("companion attempt: %v", err)
	}
	if comp != nil {
		t.Errorf("companion non-failed = %+v, want nil", comp)
	}
}

func TestScheduleAndConfirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	attempt, err := f.d.ScheduleStep(ctx, store.TrackTest, "m2", 1)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	want := time.Date(2026, 3, 3, 4, 30, 0, 0, time.UTC)
	if attempt.Status != store.StatusScheduled || attempt.ScheduledAt == nil || !attempt.ScheduledAt.Equal(want) {
		t.Errorf("attempt = %+v, want scheduled at %v", attempt, want)
	}
	if len(f.mock.Sent) != 0 {
		t.Error("scheduling must not transport anything")
	}

	// Not due yet.
	if _, err := f.d.ConfirmScheduled(ctx, store.TrackTest, "m2"); err == nil {
		t.Fatal("confirm before due time should fail")
	}

	f.now = want.Add(time.Minute)
	confirmed, err := f.d.ConfirmScheduled(ctx, store.TrackTest, "m2")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != store.StatusSent {
		t.Errorf("confirmed status = %s, want sent", confirmed.Status)
	}
	if got := len(f.mock.SentTo("+4711")); got != 1 {
		t.Errorf("transports = %d, want 1", got)
	}
}

func TestScheduleStepIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.d.ScheduleStep(ctx, store.TrackTest, "m2", 1)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	second, err := f.d.ScheduleStep(ctx, store.TrackTest, "m2", 3)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if second.ID != first.ID || !second.ScheduledAt.Equal(*first.ScheduledAt) {
		t.Errorf("second schedule = %+v, want existing attempt untouched", second)
	}
}

func TestFireQuestComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ch := f.d.cat.Chapter("ch1")

	if err := f.d.FireQuestComplete(ctx, f.run, ch); err != nil {
		t.Fatalf("fire: %v", err)
	}
	if got := len(f.mock.SentTo("player@example.com")); got != 1 {
		t.Errorf("quest-complete transports = %d, want 1", got)
	}
	// Only the quest-complete step fires; manual and scheduled steps stay put.
	if len(f.mock.Sent) != 1 {
		t.Errorf("total transports = %d, want 1", len(f.mock.Sent))
	}

	// Re-firing is a no-op.
	if err := f.d.FireQuestComplete(ctx, f.run, ch); err != nil {
		t.Fatalf("refire: %v", err)
	}
	if got := len(f.mock.SentTo("player@example.com")); got != 1 {
		t.Errorf("transports after refire = %d, want 1", got)
	}
}

func TestFirePassphrase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ch := f.d.cat.Chapter("ch1")

	if err := f.d.FirePassphrase(ctx, f.run, ch); err != nil {
		t.Fatalf("fire: %v", err)
	}
	if len(f.mock.Sent) != 0 {
		t.Error("passphrase trigger must only schedule, never transport")
	}

	attempt, err := f.s.MessageRepo().NonFailed(ctx, f.run.ID, "m3", store.RolePrimary)
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	want := f.now.Add(45 * time.Minute)
	if attempt == nil || attempt.Status != store.StatusScheduled || !attempt.ScheduledAt.Equal(want) {
		t.Errorf("attempt = %+v, want scheduled at %v", attempt, want)
	}

	// Re-firing is a no-op.
	if err := f.d.FirePassphrase(ctx, f.run, ch); err != nil {
		t.Fatalf("refire: %v", err)
	}
	rows, err := f.s.MessageRepo().ForRun(ctx, f.run.ID)
	if err != nil {
		t.Fatalf("for run: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("attempt rows = %d, want 1", len(rows))
	}
}

func TestMarkDelivered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.d.SendStep(ctx, store.TrackTest, "m0"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := f.d.MarkDelivered(ctx, store.TrackTest, "m0"); err != nil {
		t.Fatalf("mark delivered: %v", err)
	}

	attempt, err := f.s.MessageRepo().NonFailed(ctx, f.run.ID, "m0", store.RolePrimary)
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if attempt.Status != store.StatusDelivered || attempt.DeliveredAt == nil {
		t.Errorf("attempt = %+v, want delivered", attempt)
	}

	// No attempt, nothing to deliver.
	if err := f.d.MarkDelivered(ctx, store.TrackTest, "m2"); err == nil {
		t.Error("delivering an unsent step should fail")
	}
}

func TestSendStepRejectsWebsiteStep(t *testing.T) {
	f := newFixture(t)
	if _, err := f.d.SendStep(context.Background(), store.TrackTest, "w1"); err == nil {
		t.Fatal("sending a website step should fail")
	}
}

func TestSendStepRejectsForeignChapter(t *testing.T) {
	f := newFixture(t)
	if _, err := f.d.SendStep(context.Background(), store.TrackTest, "nope"); err == nil {
		t.Fatal("sending an unknown step should fail")
	}
}

func TestSendStepNoActiveRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.s.RunRepo().ResetTrack(ctx, store.TrackTest); err != nil {
		t.Fatalf("reset: %v", err)
	}
	_, err := f.d.SendStep(ctx, store.TrackTest, "m0")
	if !errors.Is(err, store.ErrNoActiveChapter) {
		t.Fatalf("err = %v, want ErrNoActiveChapter", err)
	}
}
