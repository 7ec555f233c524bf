package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PULSE_SMTP_HOST", "")
	t.Setenv("PULSE_SMTP_PORT", "")
	t.Setenv("PULSE_SMTP_FROM", "")

	cfg := LoadConfig()
	assert.Equal(t, "587", cfg.Port)
	assert.False(t, cfg.Enabled())
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{Host: "smtp.example.edu"}.Enabled(), "a from address is required")
	assert.False(t, Config{From: "pulse@example.edu"}.Enabled(), "a host is required")
	assert.True(t, Config{Host: "smtp.example.edu", From: "pulse@example.edu"}.Enabled())
}

func TestNewSender_NoopWhenDisabled(t *testing.T) {
	sender := NewSender(Config{})
	_, isNoop := sender.(NoopSender)
	assert.True(t, isNoop)

	assert.NoError(t, sender.Send(context.Background(), []string{"a@example.edu"}, "subject", "body"))
}

func TestSmtpSender_NoRecipients(t *testing.T) {
	sender := &smtpSender{cfg: Config{Host: "smtp.example.edu", From: "pulse@example.edu"}}
	err := sender.Send(context.Background(), nil, "subject", "body")
	assert.Error(t, err)
}

func TestSmtpSender_CancelledContext(t *testing.T) {
	sender := &smtpSender{cfg: Config{Host: "smtp.example.edu", From: "pulse@example.edu"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, []string{"a@example.edu"}, "subject", "body")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("pulse@example.edu",
		[]string{"director@example.edu", "avp@example.edu"},
		"Weekly Team Summary", "The team had a strong week."))

	assert.True(t, strings.HasPrefix(msg, "From: pulse@example.edu\r\n"))
	assert.Contains(t, msg, "To: director@example.edu, avp@example.edu\r\n")
	assert.Contains(t, msg, "Subject: Weekly Team Summary\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8\r\n")

	headerEnd := strings.Index(msg, "\r\n\r\n")
	assert.Greater(t, headerEnd, 0)
	assert.Equal(t, "The team had a strong week.", msg[headerEnd+4:])
}
