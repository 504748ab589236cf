// Package email relays outbound messages to an SMTP server and reports the
// result as an Outcome instead of a bare error.
package email

import (
	"context"
	"errors"
)

// ErrMissingCredentials is reported as an authentication failure when the
// transport has no username or password to log in with.
var ErrMissingCredentials = errors.New("email: missing SMTP credentials")

// Message is a single plain-text email.
type Message struct {
	FromName    string
	FromAddress string
	ReplyTo     string
	To          string
	Subject     string
	Text        string
}

// Transport is the mail relay collaborator. Both calls make a single attempt.
type Transport interface {
	// Verify checks connectivity and credentials without sending anything.
	Verify(ctx context.Context) Outcome
	Send(ctx context.Context, msg Message) Outcome
}

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeAuthFailure
	OutcomeConnFailure
	OutcomeUnknownFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeAuthFailure:
		return "auth_failure"
	case OutcomeConnFailure:
		return "connection_failure"
	case OutcomeUnknownFailure:
		return "unknown_failure"
	default:
		return "invalid"
	}
}

// Outcome is the tagged result of a transport call. Err is nil only for success.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

func AuthFailure(err error) Outcome {
	return Outcome{Kind: OutcomeAuthFailure, Err: err}
}

func ConnFailure(err error) Outcome {
	return Outcome{Kind: OutcomeConnFailure, Err: err}
}

func UnknownFailure(err error) Outcome {
	return Outcome{Kind: OutcomeUnknownFailure, Err: err}
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}
