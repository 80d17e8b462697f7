package engine

import (
	"errors"
	"fmt"

	"github.com/halvard/paperchase/internal/store"
)

// ErrNoActiveChapter mirrors the store sentinel so callers can match
// either layer.
var ErrNoActiveChapter = store.ErrNoActiveChapter

// ErrChapterComplete is returned when an advance is claimed past the
// final step of the chapter.
var ErrChapterComplete = errors.New("chapter already complete")

// StaleAdvanceError means the caller's expected index no longer matches
// the ledger — a retried request or a lost race. Expected and
// recoverable: re-fetch state, do not retry blindly.
type StaleAdvanceError struct {
	Expected int
	Actual   int
}

func (e *StaleAdvanceError) Error() string {
	return fmt.Sprintf("stale advance: expected index %d, ledger says %d", e.Expected, e.Actual)
}

// IsStaleAdvance reports whether err is a StaleAdvanceError.
func IsStaleAdvance(err error) bool {
	var sa *StaleAdvanceError
	return errors.As(err, &sa)
}

// ConditionError means the submitted proof did not satisfy the step's
// advance condition. No ledger mutation took place.
type ConditionError struct {
	StepID string
	Reason string
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("step %s: condition not met: %s", e.StepID, e.Reason)
}
