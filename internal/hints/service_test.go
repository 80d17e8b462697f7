package hints

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// hintedCatalog has one quiz step with two questions carrying 2 and 3
// hints, so the global tiers run 1..5 across both questions.
func hintedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New("v1.0.0", []*catalog.Chapter{{
		ID: "ch1",
		Steps: []catalog.Step{
			&catalog.WebsiteStep{
				StepMeta:  catalog.StepMeta{ID: "quiz", Order: 0, Name: "The riddle"},
				Condition: catalog.QuizCondition{},
				Questions: []catalog.Question{
					{
						Text:    "First riddle",
						Options: []string{"a", "b"},
						Answer:  0,
						Hints:   []string{"q0 hint 1", "q0 hint 2"},
					},
					{
						Text:    "Second riddle",
						Options: []string{"a", "b"},
						Answer:  1,
						Hints:   []string{"q1 hint 1", "q1 hint 2", "q1 hint 3"},
					},
				},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "letter", Order: 1, Name: "A letter"},
				Channel:   catalog.ChannelLetter,
				Recipient: "player",
				Trigger:   catalog.ManualTrigger{},
			},
		},
	}})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func newService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if _, err := s.RunRepo().Activate(context.Background(), store.TrackTest, "ch1"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	return New(hintedCatalog(t), s.RunRepo(), s.HintRepo()), s
}

func TestRevealNextSequence(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// Tiers come out gap-free in global order, crossing the question
	// boundary between tier 2 and tier 3.
	want := []struct {
		tier     int
		question int
		text     string
	}{
		{1, 0, "q0 hint 1"},
		{2, 0, "q0 hint 2"},
		{3, 1, "q1 hint 1"},
		{4, 1, "q1 hint 2"},
		{5, 1, "q1 hint 3"},
	}
	for _, w := range want {
		r, err := svc.RevealNext(ctx, store.TrackTest, "quiz")
		if err != nil {
			t.Fatalf("reveal tier %d: %v", w.tier, err)
		}
		if r.AllRevealed {
			t.Fatalf("tier %d flagged AllRevealed", w.tier)
		}
		if r.Tier != w.tier || r.QuestionIndex != w.question || r.Text != w.text {
			t.Errorf("reveal = %+v, want %+v", r, w)
		}
	}
}

func TestRevealNextExhausted(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.RevealNext(ctx, store.TrackTest, "quiz"); err != nil {
			t.Fatalf("reveal %d: %v", i, err)
		}
	}

	r, err := svc.RevealNext(ctx, store.TrackTest, "quiz")
	if err != nil {
		t.Fatalf("exhausted reveal: %v", err)
	}
	if !r.AllRevealed || r.Tier != 5 {
		t.Errorf("reveal = %+v, want AllRevealed with tier 5", r)
	}

	// The no-op inserted nothing.
	revealed, err := svc.Revealed(ctx, store.TrackTest, "quiz")
	if err != nil {
		t.Fatalf("revealed: %v", err)
	}
	if len(revealed) != 5 {
		t.Errorf("revealed tiers = %d, want 5", len(revealed))
	}
}

func TestRevealed(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	revealed, err := svc.Revealed(ctx, store.TrackTest, "quiz")
	if err != nil {
		t.Fatalf("revealed (empty): %v", err)
	}
	if len(revealed) != 0 {
		t.Errorf("revealed = %v, want empty", revealed)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.RevealNext(ctx, store.TrackTest, "quiz"); err != nil {
			t.Fatalf("reveal %d: %v", i, err)
		}
	}

	revealed, err = svc.Revealed(ctx, store.TrackTest, "quiz")
	if err != nil {
		t.Fatalf("revealed: %v", err)
	}
	if len(revealed) != 3 {
		t.Fatalf("revealed tiers = %d, want 3", len(revealed))
	}
	for i, r := range revealed {
		if r.Tier != i+1 {
			t.Errorf("revealed[%d].Tier = %d, want %d", i, r.Tier, i+1)
		}
	}
}

func TestRevealNextNoHints(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.RevealNext(context.Background(), store.TrackTest, "letter"); err == nil {
		t.Fatal("expected error for hintless step")
	}
}

func TestRevealNextNoActiveRun(t *testing.T) {
	svc, s := newService(t)
	ctx := context.Background()
	if err := s.RunRepo().ResetTrack(ctx, store.TrackTest); err != nil {
		t.Fatalf("reset: %v", err)
	}
	_, err := svc.RevealNext(ctx, store.TrackTest, "quiz")
	if !errors.Is(err, store.ErrNoActiveChapter) {
		t.Fatalf("err = %v, want ErrNoActiveChapter", err)
	}
}

func TestRevealNextForeignStep(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.RevealNext(context.Background(), store.TrackTest, "nope"); err == nil {
		t.Fatal("expected error for unknown step")
	}
}
