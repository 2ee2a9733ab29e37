package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Message(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "user", "pass", "reminders@example.com")

	m := c.message("ops@example.com", "2h shift reminder pass failed", "boom")

	assert.Equal(t, []string{"reminders@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"ops@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"2h shift reminder pass failed"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "boom")
}

func TestClient_Send_CancelledContext(t *testing.T) {
	c := NewClient("smtp.invalid", 587, "", "", "reminders@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Send(ctx, "ops@example.com", "subject", "body")
	assert.ErrorIs(t, err, context.Canceled)
}
