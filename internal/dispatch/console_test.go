package dispatch

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvard/paperchase/internal/catalog"
)

func TestConsoleMessengerSend(t *testing.T) {
	var buf bytes.Buffer
	m := &ConsoleMessenger{W: &buf}

	err := m.Send(context.Background(), Message{
		Channel:   catalog.ChannelSMS,
		Recipient: "+4711",
		Body:      "Look under the bench.",
	})
	require.NoError(t, err)
	assert.Equal(t, "[sms → +4711] Look under the bench.\n", buf.String())
}

func TestConsoleMessengerSendWithMedia(t *testing.T) {
	var buf bytes.Buffer
	m := &ConsoleMessenger{W: &buf}

	err := m.Send(context.Background(), Message{
		Channel:   catalog.ChannelMMS,
		Recipient: "+4711",
		Body:      "A photograph.",
		MediaURL:  "https://example.com/oak.jpg",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "media: https://example.com/oak.jpg")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestConsoleMessengerWriteError(t *testing.T) {
	m := &ConsoleMessenger{W: failWriter{}}
	err := m.Send(context.Background(), Message{Channel: catalog.ChannelSMS, Recipient: "+4711"})
	require.Error(t, err)
}
