package email

import (
	"errors"
	"net"
	"net/textproto"
	"syscall"
)

// SMTP reply codes that reject the credentials. 454 is left out on purpose:
// servers also use it for a refused STARTTLS.
const (
	codeAuthRequired     = 530
	codeAuthTooWeak      = 534
	codeAuthCredsInvalid = 535
)

// sessionError marks a failure while opening a session: the TCP connect,
// the greeting, EHLO, STARTTLS or AUTH.
type sessionError struct {
	err error
}

func (e *sessionError) Error() string { return e.err.Error() }

func (e *sessionError) Unwrap() error { return e.err }

func openFailed(err error) error {
	if err == nil {
		return nil
	}
	return &sessionError{err: err}
}

// Classify maps an error from the SMTP client to an Outcome. A nil error is
// a success.
func Classify(err error) Outcome {
	if err == nil {
		return Success()
	}

	if errors.Is(err, ErrMissingCredentials) {
		return AuthFailure(err)
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case codeAuthRequired, codeAuthTooWeak, codeAuthCredsInvalid:
			return AuthFailure(err)
		}
	}

	var openErr *sessionError
	if errors.As(err, &openErr) || isConnectError(err) {
		return ConnFailure(err)
	}

	return UnknownFailure(err)
}

// isConnectError reports failures to establish the TCP connection. Errors on
// an already open connection are not connect errors.
func isConnectError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}
