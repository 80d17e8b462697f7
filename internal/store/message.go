package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halvard/paperchase/ent"
	"github.com/halvard/paperchase/ent/messageattempt"
)

// messageRepo implements MessageRepo using the ent client.
type messageRepo struct {
	client *ent.Client
}

func (r *messageRepo) Create(ctx context.Context, a *MessageAttempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	builder := r.client.MessageAttempt.Create().
		SetID(a.ID).
		SetTrack(string(a.Track)).
		SetChapterRunID(a.ChapterRunID).
		SetStepID(a.StepID).
		SetRole(string(a.Role)).
		SetChannel(a.Channel).
		SetRecipient(a.Recipient).
		SetStatus(string(a.Status)).
		SetCreatedAt(a.CreatedAt)
	if a.ScheduledAt != nil {
		builder = builder.SetScheduledAt(*a.ScheduledAt)
	}
	if a.SentAt != nil {
		builder = builder.SetSentAt(*a.SentAt)
	}
	if a.DeliveredAt != nil {
		builder = builder.SetDeliveredAt(*a.DeliveredAt)
	}
	if a.Error != "" {
		builder = builder.SetError(a.Error)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create message attempt: %w", err)
	}
	return nil
}

func (r *messageRepo) NonFailed(ctx context.Context, runID, stepID string, role AttemptRole) (*MessageAttempt, error) {
	row, err := r.client.MessageAttempt.Query().
		Where(
			messageattempt.ChapterRunID(runID),
			messageattempt.StepID(stepID),
			messageattempt.Role(string(role)),
			messageattempt.StatusNEQ(string(StatusFailed)),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query non-failed attempt: %w", err)
	}
	return entAttemptToAttempt(row), nil
}

func (r *messageRepo) MarkSent(ctx context.Context, attemptID string, at time.Time) error {
	return r.transition(ctx, attemptID, StatusScheduled, func(u *ent.MessageAttemptUpdate) {
		u.SetStatus(string(StatusSent)).SetSentAt(at)
	})
}

func (r *messageRepo) MarkDelivered(ctx context.Context, attemptID string, at time.Time) error {
	return r.transition(ctx, attemptID, StatusSent, func(u *ent.MessageAttemptUpdate) {
		u.SetStatus(string(StatusDelivered)).SetDeliveredAt(at)
	})
}

func (r *messageRepo) MarkFailed(ctx context.Context, attemptID string, errMsg string) error {
	n, err := r.client.MessageAttempt.Update().
		Where(
			messageattempt.ID(attemptID),
			messageattempt.StatusNotIn(string(StatusDelivered), string(StatusFailed)),
		).
		SetStatus(string(StatusFailed)).
		SetError(errMsg).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("attempt %s: no non-terminal attempt to fail", attemptID)
	}
	return nil
}

// transition applies a forward-only status change guarded by the
// required current status. Zero affected rows means the attempt was not
// in the expected state.
func (r *messageRepo) transition(ctx context.Context, attemptID string, from MessageStatus, apply func(*ent.MessageAttemptUpdate)) error {
	u := r.client.MessageAttempt.Update().
		Where(
			messageattempt.ID(attemptID),
			messageattempt.Status(string(from)),
		)
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("transition attempt: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("attempt %s: not in %s state", attemptID, from)
	}
	return nil
}

func (r *messageRepo) ForRun(ctx context.Context, runID string) ([]MessageAttempt, error) {
	rows, err := r.client.MessageAttempt.Query().
		Where(messageattempt.ChapterRunID(runID)).
		Order(ent.Asc(messageattempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	out := make([]MessageAttempt, 0, len(rows))
	for _, a := range rows {
		out = append(out, *entAttemptToAttempt(a))
	}
	return out, nil
}

func entAttemptToAttempt(a *ent.MessageAttempt) *MessageAttempt {
	return &MessageAttempt{
		ID:           a.ID,
		Track:        Track(a.Track),
		ChapterRunID: a.ChapterRunID,
		StepID:       a.StepID,
		Role:         AttemptRole(a.Role),
		Channel:      a.Channel,
		Recipient:    a.Recipient,
		Status:       MessageStatus(a.Status),
		CreatedAt:    a.CreatedAt,
		ScheduledAt:  a.ScheduledAt,
		SentAt:       a.SentAt,
		DeliveredAt:  a.DeliveredAt,
		Error:        a.Error,
	}
}
