package progress

import (
	"reflect"
	"testing"
	"time"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// threeStepChapter is a letter, a puzzle, and a closing sms — the
// smallest shape that exercises every classification branch.
func threeStepChapter() *catalog.Chapter {
	return &catalog.Chapter{
		ID: "ch1",
		Steps: []catalog.Step{
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "s0", Order: 0, Name: "Opening letter"},
				Channel:   catalog.ChannelLetter,
				Recipient: "+47",
				Trigger:   catalog.ManualTrigger{},
			},
			&catalog.WebsiteStep{
				StepMeta:  catalog.StepMeta{ID: "s1", Order: 1, Name: "The bench"},
				Condition: catalog.TapCondition{},
			},
			&catalog.MessageStep{
				StepMeta:  catalog.StepMeta{ID: "s2", Order: 2, Name: "Closing sms"},
				Channel:   catalog.ChannelSMS,
				Recipient: "+47",
				Trigger:   catalog.ManualTrigger{},
			},
		},
	}
}

func snapshotWith(completed []string, attempts []store.MessageAttempt) *store.Snapshot {
	snap := &store.Snapshot{
		Run: store.ChapterRun{ID: "run", Track: store.TrackTest, ChapterID: "ch1"},
	}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, stepID := range completed {
		snap.Completions = append(snap.Completions, store.StepCompletion{
			ChapterRunID: "run",
			StepID:       stepID,
			CompletedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	snap.Attempts = attempts
	return snap
}

func states(views []StepView) []StepState {
	out := make([]StepState, len(views))
	for i, v := range views {
		out[i] = v.State
	}
	return out
}

func TestDeriveEmptyLedger(t *testing.T) {
	ch := threeStepChapter()
	views := DeriveStepStates(ch, snapshotWith(nil, nil))

	want := []StepState{StateReady, StateLocked, StateLocked}
	if got := states(views); !reflect.DeepEqual(got, want) {
		t.Errorf("states = %v, want %v", got, want)
	}
}

func TestDeriveAfterFirstAdvance(t *testing.T) {
	ch := threeStepChapter()
	views := DeriveStepStates(ch, snapshotWith([]string{"s0"}, nil))

	want := []StepState{StateSent, StateActive, StateLocked}
	if got := states(views); !reflect.DeepEqual(got, want) {
		t.Errorf("states = %v, want %v", got, want)
	}
	if views[0].CompletedAt == nil {
		t.Error("completed step lost its timestamp")
	}
}

func TestDerivePassedWebsiteStepIsSent(t *testing.T) {
	// Website steps never get an attempt row; once passed they still
	// classify as sent.
	ch := threeStepChapter()
	views := DeriveStepStates(ch, snapshotWith([]string{"s0", "s1"}, nil))

	want := []StepState{StateSent, StateSent, StateReady}
	if got := states(views); !reflect.DeepEqual(got, want) {
		t.Errorf("states = %v, want %v", got, want)
	}
}

func TestDeriveAttemptPrecedence(t *testing.T) {
	ch := threeStepChapter()
	now := time.Date(2026, 3, 2, 4, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		attempt store.MessageAttempt
		want    StepState
	}{
		{"delivered wins", store.MessageAttempt{StepID: "s0", Role: store.RolePrimary, Status: store.StatusDelivered}, StateDelivered},
		{"sent", store.MessageAttempt{StepID: "s0", Role: store.RolePrimary, Status: store.StatusSent}, StateSent},
		{"scheduled with time", store.MessageAttempt{StepID: "s0", Role: store.RolePrimary, Status: store.StatusScheduled, ScheduledAt: &now}, StateScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := DeriveStepStates(ch, snapshotWith(nil, []store.MessageAttempt{tt.attempt}))
			if views[0].State != tt.want {
				t.Errorf("state = %v, want %v", views[0].State, tt.want)
			}
		})
	}
}

func TestDeriveFailedAttemptFallsThrough(t *testing.T) {
	// A failed attempt does not pin the step; the positional rules take
	// over so the admin sees it as ready to act on again.
	ch := threeStepChapter()
	failed := store.MessageAttempt{StepID: "s0", Role: store.RolePrimary, Status: store.StatusFailed, Error: "gateway down"}
	views := DeriveStepStates(ch, snapshotWith(nil, []store.MessageAttempt{failed}))
	if views[0].State != StateReady {
		t.Errorf("state = %v, want %v", views[0].State, StateReady)
	}
}

func TestDeriveCompanionAttemptDoesNotDrivePrimaryState(t *testing.T) {
	ch := threeStepChapter()
	companion := store.MessageAttempt{StepID: "s0", Role: store.RoleCompanion, Status: store.StatusDelivered}
	views := DeriveStepStates(ch, snapshotWith(nil, []store.MessageAttempt{companion}))
	if views[0].State != StateReady {
		t.Errorf("state = %v, want %v", views[0].State, StateReady)
	}
}

func TestDeriveIsPure(t *testing.T) {
	ch := threeStepChapter()
	snap := snapshotWith([]string{"s0"}, []store.MessageAttempt{
		{StepID: "s0", Role: store.RolePrimary, Status: store.StatusSent},
	})

	first := DeriveStepStates(ch, snap)
	second := DeriveStepStates(ch, snap)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different outputs")
	}
}

func TestCurrent(t *testing.T) {
	ch := threeStepChapter()

	idx, view := Current(ch, snapshotWith([]string{"s0"}, nil))
	if idx != 1 || view == nil || view.StepID != "s1" {
		t.Errorf("Current = %d, %+v; want 1, s1", idx, view)
	}

	idx, view = Current(ch, snapshotWith([]string{"s0", "s1", "s2"}, nil))
	if idx != -1 || view != nil {
		t.Errorf("finished chapter: Current = %d, %+v; want -1, nil", idx, view)
	}
}
