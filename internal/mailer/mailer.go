// Package mailer delivers notification emails over SMTP using the go-mail
// library. One message, one session, one attempt; transport failures
// propagate to the caller.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Subject is the fixed subject line for upload notifications.
const Subject = "Your file has been uploaded"

// SMTPConfig holds connection parameters for the sending mailbox.
type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string // mailbox address, also the SMTP username
	Password string
}

// SMTPSender sends email through a single configured SMTP account.
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates an SMTPSender with the given configuration.
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

// Send delivers one message to exactly one recipient, opening a fresh SMTP
// session for the call. TLS is mandatory.
func (s *SMTPSender) Send(ctx context.Context, to, subject string, body Body) error {
	m := mail.NewMsg()
	if err := m.From(s.config.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}

	m.Subject(subject)

	// Plain-text fallback for clients that don't render HTML.
	m.SetBodyString(mail.TypeTextPlain, body.Text)
	m.AddAlternativeString(mail.TypeTextHTML, body.HTML)

	c, err := mail.NewClient(s.config.Host,
		mail.WithPort(s.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.config.Sender),
		mail.WithPassword(s.config.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	return c.DialAndSendWithContext(ctx, m)
}
