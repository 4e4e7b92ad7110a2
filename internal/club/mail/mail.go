// Package mail delivers invitation emails. Production uses SMTP; every other
// environment logs the message instead of sending it, so local and test runs
// never need a mail relay.
package mail

import (
	"context"
	"log/slog"
)

// Message is a fully rendered email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message. A delivery failure is reported to the caller and
// never rolls back whatever state change prompted the email; resend exists to
// recover from bounces.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.Logger.Info("mail (not delivered, non-production)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
