// Package dispatch resolves message-step triggers into recorded send
// attempts. Transport itself belongs to the Messenger collaborator; the
// dispatcher only records outcomes and never retries on its own.
package dispatch

import (
	"context"
	"fmt"

	"github.com/halvard/paperchase/internal/catalog"
)

// Message is one outbound message handed to the transport collaborator.
type Message struct {
	Channel   catalog.Channel
	Recipient string
	Body      string
	MediaURL  string
}

// Messenger delivers messages. Implementations own transport, retries,
// and rate limiting; the dispatcher only records success or failure.
type Messenger interface {
	Send(ctx context.Context, msg Message) error
}

// DispatchError reports that an attempt row was recorded but transport
// failed. The progression commit that triggered it stands; retry is an
// explicit admin action.
type DispatchError struct {
	StepID    string
	Companion bool
	Err       error
}

func (e *DispatchError) Error() string {
	if e.Companion {
		return fmt.Sprintf("dispatch step %s (companion): %v", e.StepID, e.Err)
	}
	return fmt.Sprintf("dispatch step %s: %v", e.StepID, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
