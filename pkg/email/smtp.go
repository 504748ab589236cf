package email

import (
	"context"
	"crypto/tls"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the relay settings. Port 587 with STARTTLS is the
// expected setup; implicit TLS is never used.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPTransport relays messages through an authenticated SMTP server.
// It holds no per-request state and is safe for concurrent use.
type SMTPTransport struct {
	dialer   *gomail.Dialer
	username string
	password string
}

// NewSMTPTransport creates a transport for the given relay.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	// Plain connect, then upgrade with STARTTLS when the server offers it
	dialer.SSL = false
	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &SMTPTransport{
		dialer:   dialer,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// IsConfigured checks if the transport has credentials to log in with.
func (t *SMTPTransport) IsConfigured() bool {
	return t.username != "" && t.password != ""
}

// Verify opens a session, authenticates and quits.
func (t *SMTPTransport) Verify(ctx context.Context) Outcome {
	if err := ctx.Err(); err != nil {
		return UnknownFailure(err)
	}
	if !t.IsConfigured() {
		return AuthFailure(ErrMissingCredentials)
	}

	session, err := t.dialer.Dial()
	if err != nil {
		return Classify(openFailed(err))
	}
	return Classify(session.Close())
}

// Send delivers msg in a fresh session.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) Outcome {
	if err := ctx.Err(); err != nil {
		return UnknownFailure(err)
	}
	if !t.IsConfigured() {
		return AuthFailure(ErrMissingCredentials)
	}

	session, err := t.dialer.Dial()
	if err != nil {
		return Classify(openFailed(err))
	}
	defer session.Close()

	// Send on the session keeps the server reply intact for Classify
	return Classify(session.Send(msg.FromAddress, []string{msg.To}, buildMessage(msg)))
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	return m
}
