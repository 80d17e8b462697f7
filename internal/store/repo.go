package store

import (
	"context"
	"time"
)

// ChapterRun is one play-through attempt of a chapter on a track.
type ChapterRun struct {
	ID          string
	Track       Track
	ChapterID   string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Active reports whether the run is still open.
func (r *ChapterRun) Active() bool { return r.CompletedAt == nil }

// StepCompletion is one completed step within a run.
type StepCompletion struct {
	ChapterRunID string
	StepID       string
	CompletedAt  time.Time
}

// HintReveal is one revealed hint tier within a run.
type HintReveal struct {
	ChapterRunID string
	StepID       string
	Tier         int
	RevealedAt   time.Time
}

// QuizAnswerRecord is one audited quiz answer.
type QuizAnswerRecord struct {
	ChapterRunID   string
	StepID         string
	QuestionIndex  int
	SelectedOption int
	Correct        bool
	AnsweredAt     time.Time
}

// MessageStatus is the lifecycle state of a MessageAttempt. Transitions
// only move forward: scheduled→sent→delivered, or →failed from any
// non-terminal state.
type MessageStatus string

const (
	StatusScheduled MessageStatus = "scheduled"
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusFailed    MessageStatus = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s MessageStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// AttemptRole distinguishes a step's primary message from its companion
// fan-out.
type AttemptRole string

const (
	RolePrimary   AttemptRole = "primary"
	RoleCompanion AttemptRole = "companion"
)

// MessageAttempt is one try at delivering a message step.
type MessageAttempt struct {
	ID           string
	Track        Track
	ChapterRunID string
	StepID       string
	Role         AttemptRole
	Channel      string
	Recipient    string
	Status       MessageStatus
	CreatedAt    time.Time
	ScheduledAt  *time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time
	Error        string
}

// Snapshot is a point-in-time read of every ledger row relevant to one
// chapter run. State derivation consumes it as a plain value.
type Snapshot struct {
	Run         ChapterRun
	Completions []StepCompletion
	Attempts    []MessageAttempt
}

// CurrentIndex derives the current step index: the count of completion
// rows. This is the canonical derivation; no stored counter exists.
func (s *Snapshot) CurrentIndex() int {
	return len(s.Completions)
}

// CompletedAt returns the completion time for a step, or nil.
func (s *Snapshot) CompletedAt(stepID string) *time.Time {
	for i := range s.Completions {
		if s.Completions[i].StepID == stepID {
			return &s.Completions[i].CompletedAt
		}
	}
	return nil
}

// PrimaryAttempt returns the most relevant primary attempt for a step:
// the latest non-failed one if any, else the latest failed one, else nil.
func (s *Snapshot) PrimaryAttempt(stepID string) *MessageAttempt {
	return s.attemptFor(stepID, RolePrimary)
}

// CompanionAttempt is PrimaryAttempt for the companion fan-out row.
func (s *Snapshot) CompanionAttempt(stepID string) *MessageAttempt {
	return s.attemptFor(stepID, RoleCompanion)
}

func (s *Snapshot) attemptFor(stepID string, role AttemptRole) *MessageAttempt {
	var failed *MessageAttempt
	for i := range s.Attempts {
		a := &s.Attempts[i]
		if a.StepID != stepID || a.Role != role {
			continue
		}
		if a.Status != StatusFailed {
			return a
		}
		failed = a
	}
	return failed
}

// RunRepo manages chapter run rows.
type RunRepo interface {
	// Activate opens a new run for the chapter, closing any still-open
	// run on the track first. Test-track only.
	Activate(ctx context.Context, track Track, chapterID string) (*ChapterRun, error)

	// Active returns the open run for the track, or ErrNoActiveChapter.
	Active(ctx context.Context, track Track) (*ChapterRun, error)

	// Complete closes the run.
	Complete(ctx context.Context, runID string) error

	// Snapshot loads the run plus its completions and attempts.
	Snapshot(ctx context.Context, runID string) (*Snapshot, error)

	// ResetTrack deletes every ledger row for the track in one
	// transaction. Test-track only.
	ResetTrack(ctx context.Context, track Track) error

	// CompleteChapter bulk-completes every step of the run and closes
	// it, for QA. Test-track only.
	CompleteChapter(ctx context.Context, track Track, runID string, steps []StepSeed) error
}

// CompletionRepo manages step completion rows. Insert-only.
type CompletionRepo interface {
	// Insert records a completion. A duplicate (run, step) insert
	// returns an error satisfying IsDuplicate.
	Insert(ctx context.Context, track Track, runID, stepID string) (*StepCompletion, error)

	// Count returns the number of completions for the run.
	Count(ctx context.Context, runID string) (int, error)

	// ForRun returns the run's completions in completion order.
	ForRun(ctx context.Context, runID string) ([]StepCompletion, error)
}

// HintRepo manages hint reveal rows. Insert-only, monotonic.
type HintRepo interface {
	// Tiers returns the revealed tiers for (run, step), ascending.
	Tiers(ctx context.Context, runID, stepID string) ([]int, error)

	// Insert records a reveal. A duplicate (run, step, tier) insert
	// returns an error satisfying IsDuplicate.
	Insert(ctx context.Context, track Track, runID, stepID string, tier int) (*HintReveal, error)
}

// QuizRepo appends quiz answer audit rows.
type QuizRepo interface {
	Append(ctx context.Context, track Track, rec QuizAnswerRecord) error
}

// MessageRepo manages message attempt rows.
type MessageRepo interface {
	// Create inserts a new attempt row.
	Create(ctx context.Context, a *MessageAttempt) error

	// NonFailed returns the non-failed attempt for (run, step, role),
	// or nil. At most one such row exists per key.
	NonFailed(ctx context.Context, runID, stepID string, role AttemptRole) (*MessageAttempt, error)

	// MarkSent transitions scheduled→sent.
	MarkSent(ctx context.Context, attemptID string, at time.Time) error

	// MarkDelivered transitions sent→delivered.
	MarkDelivered(ctx context.Context, attemptID string, at time.Time) error

	// MarkFailed transitions any non-terminal status to failed.
	MarkFailed(ctx context.Context, attemptID string, errMsg string) error

	// ForRun returns every attempt for the run, oldest first.
	ForRun(ctx context.Context, runID string) ([]MessageAttempt, error)
}
