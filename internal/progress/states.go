// Package progress derives presentation state from the step catalog and
// a ledger snapshot. DeriveStepStates is the only place step state is
// computed; every surface (CLI, board, engine results) consumes it
// rather than re-deriving its own rules.
package progress

import (
	"time"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// StepState is the presentation state of one step.
type StepState string

const (
	// StateLocked: beyond the current step, nothing recorded.
	StateLocked StepState = "locked"
	// StateActive: current website step awaiting its advance condition.
	StateActive StepState = "active"
	// StateReady: current message step, eligible for manual send.
	StateReady StepState = "ready"
	// StateScheduled: a scheduled attempt exists with a concrete time.
	StateScheduled StepState = "scheduled"
	// StateSent: message sent, or website step already passed.
	StateSent StepState = "sent"
	// StateDelivered: delivery receipt recorded.
	StateDelivered StepState = "delivered"
)

// StepView is the derived state of one step, in catalog order.
type StepView struct {
	StepID      string
	Name        string
	State       StepState
	CompletedAt *time.Time
	ScheduledAt *time.Time
}

// DeriveStepStates classifies every step of the chapter against the
// snapshot. Pure: identical inputs always yield identical output.
//
// Precedence per step at index i:
//  1. non-failed attempt in sent/delivered → that state
//  2. attempt in scheduled with a scheduled time → scheduled
//  3. i < current index → sent (passed website steps have no attempt row)
//  4. i == current index → active (website) or ready (message)
//  5. otherwise → locked
func DeriveStepStates(ch *catalog.Chapter, snap *store.Snapshot) []StepView {
	current := snap.CurrentIndex()
	views := make([]StepView, 0, len(ch.Steps))
	for i, step := range ch.Steps {
		meta := step.Meta()
		view := StepView{
			StepID:      meta.ID,
			Name:        meta.Name,
			CompletedAt: snap.CompletedAt(meta.ID),
		}
		view.State, view.ScheduledAt = classify(step, i, current, snap)
		views = append(views, view)
	}
	return views
}

func classify(step catalog.Step, i, current int, snap *store.Snapshot) (StepState, *time.Time) {
	meta := step.Meta()
	if a := snap.PrimaryAttempt(meta.ID); a != nil && a.Status != store.StatusFailed {
		switch a.Status {
		case store.StatusSent:
			return StateSent, nil
		case store.StatusDelivered:
			return StateDelivered, nil
		case store.StatusScheduled:
			if a.ScheduledAt != nil {
				return StateScheduled, a.ScheduledAt
			}
		}
	}
	switch {
	case i < current:
		return StateSent, nil
	case i == current:
		if _, ok := step.(*catalog.WebsiteStep); ok {
			return StateActive, nil
		}
		return StateReady, nil
	default:
		return StateLocked, nil
	}
}

// Current returns the index and view of the current step, or -1 and nil
// when every step of the chapter is complete.
func Current(ch *catalog.Chapter, snap *store.Snapshot) (int, *StepView) {
	idx := snap.CurrentIndex()
	if idx >= len(ch.Steps) {
		return -1, nil
	}
	views := DeriveStepStates(ch, snap)
	return idx, &views[idx]
}
