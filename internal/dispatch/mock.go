package dispatch

import (
	"context"
	"sync"
)

// MockMessenger is a test double that records sent messages and can be
// told to fail, globally or per recipient.
type MockMessenger struct {
	mu sync.Mutex

	Sent    []Message
	Err     error
	FailFor map[string]error // recipient → error
}

var _ Messenger = (*MockMessenger)(nil)

func (m *MockMessenger) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if err, ok := m.FailFor[msg.Recipient]; ok {
		return err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentTo returns the messages delivered to a recipient.
func (m *MockMessenger) SentTo(recipient string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Message
	for _, msg := range m.Sent {
		if msg.Recipient == recipient {
			out = append(out, msg)
		}
	}
	return out
}
