package usecase

import (
	"context"
	"fmt"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/apperror"
	"contact-relay-backend/pkg/email"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactSettings is the static part of every outbound message.
type ContactSettings struct {
	Recipient     string
	SubjectPrefix string
}

type contactUsecase struct {
	transport email.Transport
	validate  *validator.Validate
	settings  ContactSettings
}

// NewContactUsecase creates a new contact usecase. validate must have the
// custom tags from validation.RegisterValidators.
func NewContactUsecase(transport email.Transport, validate *validator.Validate, settings ContactSettings) domain.ContactUsecase {
	return &contactUsecase{
		transport: transport,
		validate:  validate,
		settings:  settings,
	}
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Info("Contact submission rejected", "fields", validation.FailedFields(err))
		if validation.HasTag(err, validation.TagHeaderSafe) && !validation.HasTag(err, validation.TagRequired) {
			return apperror.BadRequest(domain.MsgUnsafeHeaderValue)
		}
		return apperror.BadRequest(domain.MsgAllFieldsRequired)
	}

	msg := uc.buildMessage(req)

	outcome := uc.transport.Verify(ctx)
	if !outcome.OK() {
		return outcomeError("verify", outcome)
	}
	logger.Log.Info("Mail transport verified")

	outcome = uc.transport.Send(ctx, msg)
	if !outcome.OK() {
		return outcomeError("send", outcome)
	}
	logger.Log.Info("Contact message sent", "to", msg.To)

	return nil
}

func (uc *contactUsecase) buildMessage(req *domain.ContactRequest) email.Message {
	return email.Message{
		FromName:    req.Name,
		FromAddress: req.Email,
		ReplyTo:     req.Email,
		To:          uc.settings.Recipient,
		Subject:     uc.settings.SubjectPrefix + req.Subject,
		Text:        fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", req.Name, req.Email, req.Message),
	}
}

// outcomeError maps a failed transport outcome to the response the caller sees.
// The transport detail stays in the wrapped error and is only logged.
func outcomeError(step string, outcome email.Outcome) error {
	cause := fmt.Errorf("mail %s: %w", step, outcome.Err)

	switch outcome.Kind {
	case email.OutcomeAuthFailure:
		logger.Log.Error("SMTP authentication failed, check GMAIL_USER and GMAIL_APP_PASS", "step", step, "error", outcome.Err)
		return apperror.Unauthorized(domain.MsgAuthFailed, cause)
	case email.OutcomeConnFailure:
		logger.Log.Error("Could not connect to SMTP server", "step", step, "error", outcome.Err)
		return apperror.ServiceUnavailable(domain.MsgConnectionFailed, cause)
	case email.OutcomeUnknownFailure:
		logger.Log.Error("Failed to send contact message", "step", step, "error", outcome.Err)
		return apperror.Internal(domain.MsgSendFailed, cause)
	default:
		logger.Log.Error("Unexpected mail outcome", "step", step, "kind", outcome.Kind.String())
		return apperror.Internal(domain.MsgSendFailed, cause)
	}
}
