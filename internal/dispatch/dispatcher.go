package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// Dispatcher resolves message-step triggers into attempt rows. It never
// deletes or overwrites an attempt; a retry after failure is a fresh row
// created only by an explicit admin action.
type Dispatcher struct {
	cat      *catalog.Catalog
	runs     store.RunRepo
	messages store.MessageRepo
	msgr     Messenger
	now      func() time.Time
}

// New creates a Dispatcher. The clock defaults to time.Now.
func New(cat *catalog.Catalog, runs store.RunRepo, messages store.MessageRepo, msgr Messenger) *Dispatcher {
	return &Dispatcher{
		cat:      cat,
		runs:     runs,
		messages: messages,
		msgr:     msgr,
		now:      time.Now,
	}
}

// WithClock replaces the dispatcher's clock, for tests.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// SendStep performs a manual admin send of a message step: it transports
// the message and records a sent attempt, if and only if no non-failed
// attempt already exists for the step in the active run. Repeat calls
// return the existing attempt without sending again.
func (d *Dispatcher) SendStep(ctx context.Context, track store.Track, stepID string) (*store.MessageAttempt, error) {
	run, step, err := d.resolve(ctx, track, stepID)
	if err != nil {
		return nil, err
	}
	return d.send(ctx, run, step)
}

// ScheduleStep records a scheduled attempt eligible at the Nth morning
// from now. Nothing is transported; a due attempt still needs an
// explicit ConfirmScheduled — live sends always keep a human in the loop.
func (d *Dispatcher) ScheduleStep(ctx context.Context, track store.Track, stepID string, delayMornings int) (*store.MessageAttempt, error) {
	run, step, err := d.resolve(ctx, track, stepID)
	if err != nil {
		return nil, err
	}

	existing, err := d.messages.NonFailed(ctx, run.ID, stepID, store.RolePrimary)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	at := NextMorning(d.now(), delayMornings)
	attempt := &store.MessageAttempt{
		Track:        run.Track,
		ChapterRunID: run.ID,
		StepID:       stepID,
		Role:         store.RolePrimary,
		Channel:      string(step.Channel),
		Recipient:    step.Recipient,
		Status:       store.StatusScheduled,
		ScheduledAt:  &at,
	}
	if err := d.messages.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// ConfirmScheduled transports a due scheduled attempt and marks it sent.
// Fails if the attempt is not yet due.
func (d *Dispatcher) ConfirmScheduled(ctx context.Context, track store.Track, stepID string) (*store.MessageAttempt, error) {
	run, step, err := d.resolve(ctx, track, stepID)
	if err != nil {
		return nil, err
	}

	attempt, err := d.messages.NonFailed(ctx, run.ID, stepID, store.RolePrimary)
	if err != nil {
		return nil, err
	}
	if attempt == nil || attempt.Status != store.StatusScheduled {
		return nil, fmt.Errorf("step %s: no scheduled attempt to confirm", stepID)
	}
	if attempt.ScheduledAt != nil && d.now().Before(*attempt.ScheduledAt) {
		return nil, fmt.Errorf("step %s: scheduled for %s, not due yet", stepID, attempt.ScheduledAt.Format(time.RFC3339))
	}

	sendErr := d.msgr.Send(ctx, stepMessage(step))
	if sendErr != nil {
		if err := d.messages.MarkFailed(ctx, attempt.ID, sendErr.Error()); err != nil {
			return nil, err
		}
		return nil, &DispatchError{StepID: stepID, Err: sendErr}
	}
	if err := d.messages.MarkSent(ctx, attempt.ID, d.now().UTC()); err != nil {
		return nil, err
	}

	fanErr := d.fanOut(ctx, run, step)
	attempt.Status = store.StatusSent
	return attempt, fanErr
}

// RetryStep creates and transports a fresh attempt after a failed one.
// It refuses to act while a non-failed attempt exists.
func (d *Dispatcher) RetryStep(ctx context.Context, track store.Track, stepID string) (*store.MessageAttempt, error) {
	run, step, err := d.resolve(ctx, track, stepID)
	if err != nil {
		return nil, err
	}

	existing, err := d.messages.NonFailed(ctx, run.ID, stepID, store.RolePrimary)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("step %s: attempt already %s, nothing to retry", stepID, existing.Status)
	}
	return d.transport(ctx, run, step, store.RolePrimary)
}

// MarkDelivered records a delivery receipt for the step's sent attempt.
func (d *Dispatcher) MarkDelivered(ctx context.Context, track store.Track, stepID string) error {
	run, _, err := d.resolve(ctx, track, stepID)
	if err != nil {
		return err
	}
	attempt, err := d.messages.NonFailed(ctx, run.ID, stepID, store.RolePrimary)
	if err != nil {
		return err
	}
	if attempt == nil {
		return fmt.Errorf("step %s: no attempt to mark delivered", stepID)
	}
	return d.messages.MarkDelivered(ctx, attempt.ID, d.now().UTC())
}

// FireQuestComplete sends every quest-complete-triggered message step of
// the chapter. Called by the advance engine when the waiting step is
// reached; idempotent per run via the non-failed guard.
func (d *Dispatcher) FireQuestComplete(ctx context.Context, run *store.ChapterRun, ch *catalog.Chapter) error {
	var errs []error
	for _, s := range ch.Steps {
		ms, ok := s.(*catalog.MessageStep)
		if !ok {
			continue
		}
		if _, ok := ms.Trigger.(catalog.QuestCompleteTrigger); !ok {
			continue
		}
		if _, err := d.send(ctx, run, ms); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FirePassphrase records scheduled attempts for passphrase-triggered
// message steps, eligible after each trigger's delay. Creation and
// eventual transport are distinct; ConfirmScheduled sends them later.
func (d *Dispatcher) FirePassphrase(ctx context.Context, run *store.ChapterRun, ch *catalog.Chapter) error {
	var errs []error
	for _, s := range ch.Steps {
		ms, ok := s.(*catalog.MessageStep)
		if !ok {
			continue
		}
		trig, ok := ms.Trigger.(catalog.PassphraseTrigger)
		if !ok {
			continue
		}
		existing, err := d.messages.NonFailed(ctx, run.ID, ms.ID, store.RolePrimary)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if existing != nil {
			continue
		}
		at := d.now().Add(trig.Delay).UTC()
		attempt := &store.MessageAttempt{
			Track:        run.Track,
			ChapterRunID: run.ID,
			StepID:       ms.ID,
			Role:         store.RolePrimary,
			Channel:      string(ms.Channel),
			Recipient:    ms.Recipient,
			Status:       store.StatusScheduled,
			ScheduledAt:  &at,
		}
		if err := d.messages.Create(ctx, attempt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// resolve loads the active run for the track and the message step for
// stepID, checking that the step belongs to the run's chapter.
func (d *Dispatcher) resolve(ctx context.Context, track store.Track, stepID string) (*store.ChapterRun, *catalog.MessageStep, error) {
	run, err := d.runs.Active(ctx, track)
	if err != nil {
		return nil, nil, err
	}
	ch := d.cat.ChapterOf(stepID)
	if ch == nil || ch.ID != run.ChapterID {
		return nil, nil, fmt.Errorf("step %s: not part of active chapter %s", stepID, run.ChapterID)
	}
	ms, ok := d.cat.Step(stepID).(*catalog.MessageStep)
	if !ok {
		return nil, nil, fmt.Errorf("step %s: not a message step", stepID)
	}
	return run, ms, nil
}

// send is the guarded immediate-send path shared by manual sends and
// quest-complete triggers.
func (d *Dispatcher) send(ctx context.Context, run *store.ChapterRun, step *catalog.MessageStep) (*store.MessageAttempt, error) {
	existing, err := d.messages.NonFailed(ctx, run.ID, step.ID, store.RolePrimary)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	attempt, err := d.transport(ctx, run, step, store.RolePrimary)
	if err != nil {
		return attempt, err
	}
	return attempt, d.fanOut(ctx, run, step)
}

// fanOut sends the companion message, if any. Companion failures never
// touch the primary attempt's status.
func (d *Dispatcher) fanOut(ctx context.Context, run *store.ChapterRun, step *catalog.MessageStep) error {
	if step.Companion == nil {
		return nil
	}
	existing, err := d.messages.NonFailed(ctx, run.ID, step.ID, store.RoleCompanion)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = d.transport(ctx, run, step, store.RoleCompanion)
	return err
}

// transport performs one messenger round-trip and records the outcome as
// a new attempt row, sent or failed.
func (d *Dispatcher) transport(ctx context.Context, run *store.ChapterRun, step *catalog.MessageStep, role store.AttemptRole) (*store.MessageAttempt, error) {
	msg := stepMessage(step)
	if role == store.RoleCompanion {
		msg = Message{
			Channel:   step.Companion.Channel,
			Recipient: step.Companion.Recipient,
			Body:      step.Companion.Body,
			MediaURL:  step.Companion.MediaURL,
		}
	}

	attempt := &store.MessageAttempt{
		Track:        run.Track,
		ChapterRunID: run.ID,
		StepID:       step.ID,
		Role:         role,
		Channel:      string(msg.Channel),
		Recipient:    msg.Recipient,
	}

	sendErr := d.msgr.Send(ctx, msg)
	if sendErr != nil {
		attempt.Status = store.StatusFailed
		attempt.Error = sendErr.Error()
		if err := d.messages.Create(ctx, attempt); err != nil {
			return nil, err
		}
		return attempt, &DispatchError{StepID: step.ID, Companion: role == store.RoleCompanion, Err: sendErr}
	}

	now := d.now().UTC()
	attempt.Status = store.StatusSent
	attempt.SentAt = &now
	if err := d.messages.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func stepMessage(step *catalog.MessageStep) Message {
	return Message{
		Channel:   step.Channel,
		Recipient: step.Recipient,
		Body:      step.Body,
		MediaURL:  step.MediaURL,
	}
}
