package dispatch

import (
	"context"
	"fmt"
	"io"
)

// ConsoleMessenger writes each message to w and reports success. Letters
// are hand-delivered and electronic channels go through an external
// gateway, so the CLI's job ends at showing the operator exactly what to
// send; wire a real transport here when one exists.
type ConsoleMessenger struct {
	W io.Writer
}

var _ Messenger = (*ConsoleMessenger)(nil)

func (c *ConsoleMessenger) Send(_ context.Context, msg Message) error {
	_, err := fmt.Fprintf(c.W, "[%s → %s] %s\n", msg.Channel, msg.Recipient, msg.Body)
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if msg.MediaURL != "" {
		if _, err := fmt.Fprintf(c.W, "  media: %s\n", msg.MediaURL); err != nil {
			return fmt.Errorf("write message: %w", err)
		}
	}
	return nil
}
