package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Sender delivers notification email.
type Sender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// Config holds SMTP settings, read from PULSE_SMTP_* environment
// variables. Sending is disabled unless a host is configured.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func LoadConfig() Config {
	return Config{
		Host:     os.Getenv("PULSE_SMTP_HOST"),
		Port:     getenvDefault("PULSE_SMTP_PORT", "587"),
		Username: os.Getenv("PULSE_SMTP_USERNAME"),
		Password: os.Getenv("PULSE_SMTP_PASSWORD"),
		From:     os.Getenv("PULSE_SMTP_FROM"),
	}
}

func (c Config) Enabled() bool {
	return c.Host != "" && c.From != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// NewSender returns an SMTP sender when the config enables one, and a
// NoopSender otherwise.
func NewSender(cfg Config) Sender {
	if !cfg.Enabled() {
		return NoopSender{}
	}
	return &smtpSender{cfg: cfg}
}

type smtpSender struct {
	cfg Config
}

func (s *smtpSender) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(s.cfg.From, to, subject, body)
	addr := s.cfg.Host + ":" + s.cfg.Port

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, to, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// NoopSender silently drops mail. Used when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) Send(context.Context, []string, string, string) error { return nil }
