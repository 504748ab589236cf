package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/textproto"
	"testing"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/apperror"
	"contact-relay-backend/pkg/email"
	"contact-relay-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport stands in for the SMTP relay
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Verify(ctx context.Context) email.Outcome {
	return m.Called(ctx).Get(0).(email.Outcome)
}

func (m *MockTransport) Send(ctx context.Context, msg email.Message) email.Outcome {
	return m.Called(ctx, msg).Get(0).(email.Outcome)
}

func newContactUsecase(transport email.Transport) domain.ContactUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewContactUsecase(transport, validate, usecase.ContactSettings{
		Recipient:     "owner@example.com",
		SubjectPrefix: "Portfolio Contact: ",
	})
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I like your work.\nLet's talk.",
	}
}

func requireAppError(t *testing.T, err error, code int, message string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
	return appErr
}

func TestSendContactMessage_MissingFields(t *testing.T) {
	cases := map[string]func(r *domain.ContactRequest){
		"name":    func(r *domain.ContactRequest) { r.Name = "" },
		"email":   func(r *domain.ContactRequest) { r.Email = "" },
		"subject": func(r *domain.ContactRequest) { r.Subject = "" },
		"message": func(r *domain.ContactRequest) { r.Message = "" },
		"all":     func(r *domain.ContactRequest) { *r = domain.ContactRequest{} },
		// Required wins over the header check when both fail
		"name missing and email unsafe": func(r *domain.ContactRequest) {
			r.Name = ""
			r.Email = "jane@example.com\r\nBcc: x@example.com"
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			transport := new(MockTransport)
			uc := newContactUsecase(transport)

			req := validRequest()
			mutate(req)

			err := uc.SendContactMessage(context.Background(), req)
			requireAppError(t, err, http.StatusBadRequest, domain.MsgAllFieldsRequired)
			transport.AssertNotCalled(t, "Verify", mock.Anything)
			transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSendContactMessage_HeaderInjection(t *testing.T) {
	cases := map[string]func(r *domain.ContactRequest){
		"name":    func(r *domain.ContactRequest) { r.Name = "Jane\r\nBcc: victim@example.com" },
		"email":   func(r *domain.ContactRequest) { r.Email = "jane@example.com\nX-Spam: yes" },
		"subject": func(r *domain.ContactRequest) { r.Subject = "Hi\r\nContent-Type: text/html" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			transport := new(MockTransport)
			uc := newContactUsecase(transport)

			req := validRequest()
			mutate(req)

			err := uc.SendContactMessage(context.Background(), req)
			requireAppError(t, err, http.StatusBadRequest, domain.MsgUnsafeHeaderValue)
			transport.AssertNotCalled(t, "Verify", mock.Anything)
		})
	}
}

func TestSendContactMessage_BuildsMessage(t *testing.T) {
	transport := new(MockTransport)
	uc := newContactUsecase(transport)
	ctx := context.Background()

	want := email.Message{
		FromName:    "Jane Doe",
		FromAddress: "jane@example.com",
		ReplyTo:     "jane@example.com",
		To:          "owner@example.com",
		Subject:     "Portfolio Contact: Hello",
		Text:        "Name: Jane Doe\nEmail: jane@example.com\n\nMessage:\nI like your work.\nLet's talk.",
	}
	transport.On("Verify", ctx).Return(email.Success()).Once()
	transport.On("Send", ctx, want).Return(email.Success()).Once()

	err := uc.SendContactMessage(ctx, validRequest())
	require.NoError(t, err)
	transport.AssertExpectations(t)
}

func TestSendContactMessage_WhitespaceCountsAsPresent(t *testing.T) {
	transport := new(MockTransport)
	uc := newContactUsecase(transport)

	transport.On("Verify", mock.Anything).Return(email.Success())
	transport.On("Send", mock.Anything, mock.Anything).Return(email.Success())

	req := validRequest()
	req.Subject = "   "
	require.NoError(t, uc.SendContactMessage(context.Background(), req))
}

func TestSendContactMessage_OutcomeMapping(t *testing.T) {
	authErr := &textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}
	connErr := errors.New("dial tcp 127.0.0.1:587: connect: connection refused")
	otherErr := errors.New("550 mailbox unavailable")

	tests := []struct {
		name       string
		verify     email.Outcome
		send       email.Outcome
		expectSend bool
		wantCode   int
		wantMsg    string
		wantCause  error
	}{
		{
			name:       "auth failure on verify",
			verify:     email.AuthFailure(authErr),
			wantCode:   http.StatusUnauthorized,
			wantMsg:    domain.MsgAuthFailed,
			wantCause:  authErr,
			expectSend: false,
		},
		{
			name:       "missing credentials",
			verify:     email.AuthFailure(email.ErrMissingCredentials),
			wantCode:   http.StatusUnauthorized,
			wantMsg:    domain.MsgAuthFailed,
			wantCause:  email.ErrMissingCredentials,
			expectSend: false,
		},
		{
			name:       "connection failure on verify",
			verify:     email.ConnFailure(connErr),
			wantCode:   http.StatusServiceUnavailable,
			wantMsg:    domain.MsgConnectionFailed,
			wantCause:  connErr,
			expectSend: false,
		},
		{
			name:       "unknown failure on verify",
			verify:     email.UnknownFailure(otherErr),
			wantCode:   http.StatusInternalServerError,
			wantMsg:    domain.MsgSendFailed,
			wantCause:  otherErr,
			expectSend: false,
		},
		{
			name:       "auth failure on send",
			verify:     email.Success(),
			send:       email.AuthFailure(authErr),
			expectSend: true,
			wantCode:   http.StatusUnauthorized,
			wantMsg:    domain.MsgAuthFailed,
			wantCause:  authErr,
		},
		{
			name:       "connection failure on send",
			verify:     email.Success(),
			send:       email.ConnFailure(connErr),
			expectSend: true,
			wantCode:   http.StatusServiceUnavailable,
			wantMsg:    domain.MsgConnectionFailed,
			wantCause:  connErr,
		},
		{
			name:       "unknown failure on send",
			verify:     email.Success(),
			send:       email.UnknownFailure(otherErr),
			expectSend: true,
			wantCode:   http.StatusInternalServerError,
			wantMsg:    domain.MsgSendFailed,
			wantCause:  otherErr,
		},
		{
			name:       "invalid outcome kind",
			verify:     email.Success(),
			send:       email.Outcome{Kind: email.OutcomeKind(99), Err: otherErr},
			expectSend: true,
			wantCode:   http.StatusInternalServerError,
			wantMsg:    domain.MsgSendFailed,
			wantCause:  otherErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := new(MockTransport)
			uc := newContactUsecase(transport)

			transport.On("Verify", mock.Anything).Return(tt.verify).Once()
			if tt.expectSend {
				transport.On("Send", mock.Anything, mock.Anything).Return(tt.send).Once()
			}

			err := uc.SendContactMessage(context.Background(), validRequest())
			appErr := requireAppError(t, err, tt.wantCode, tt.wantMsg)
			assert.ErrorIs(t, appErr, tt.wantCause)
			// Transport detail never reaches the public message
			assert.NotContains(t, appErr.Error(), tt.wantCause.Error())

			transport.AssertExpectations(t)
			if !tt.expectSend {
				transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSendContactMessage_NotIdempotent(t *testing.T) {
	transport := new(MockTransport)
	uc := newContactUsecase(transport)

	transport.On("Verify", mock.Anything).Return(email.Success())
	transport.On("Send", mock.Anything, mock.Anything).Return(email.Success())

	require.NoError(t, uc.SendContactMessage(context.Background(), validRequest()))
	require.NoError(t, uc.SendContactMessage(context.Background(), validRequest()))

	transport.AssertNumberOfCalls(t, "Verify", 2)
	transport.AssertNumberOfCalls(t, "Send", 2)
}
