package domain

import "context"

// Public response messages. Callers see exactly these strings.
const (
	MsgMessageSent       = "Message sent successfully!"
	MsgAllFieldsRequired = "All fields are required"
	MsgUnsafeHeaderValue = "Name, email and subject must not contain line breaks or control characters"
	MsgAuthFailed        = "Authentication failed. Check server configuration."
	MsgConnectionFailed  = "Could not connect to email server."
	MsgSendFailed        = "Failed to send message. Please check server logs."
	MsgInvalidBody       = "Invalid JSON body"
	MsgBodyTooLarge      = "Request body too large"
	MsgOriginNotAllowed  = "Not allowed by CORS"
	MsgNotFound          = "Not found"
	MsgInternalError     = "Internal server error"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,header_safe"`
	Email   string `json:"email" validate:"required,header_safe"`
	Subject string `json:"subject" validate:"required,header_safe"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it to the
	// configured recipient. Failures are *apperror.AppError values.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
