package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"contact-relay-backend/internal/delivery/http/response"
	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/send-message", handler.SendMessage)
}

// SendMessage godoc
// @Summary      Send contact message
// @Description  Relays a contact form submission to the site owner by email. All four fields are required.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  v1.SuccessBody
// @Failure      400      {object}  v1.ErrorBody  "Missing field, unsafe header value or malformed JSON"
// @Failure      401      {object}  v1.ErrorBody  "SMTP authentication failed"
// @Failure      403      {object}  v1.ErrorBody  "Origin not allowed"
// @Failure      413      {object}  v1.ErrorBody  "Body too large"
// @Failure      500      {object}  v1.ErrorBody  "Send failed"
// @Failure      503      {object}  v1.ErrorBody  "SMTP server unreachable"
// @Router       /api/send-message [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	req, err := decodeContactRequest(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.PayloadTooLarge(domain.MsgBodyTooLarge))
		} else {
			c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		}
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgMessageSent)
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeContactRequest reads exactly one JSON value. Keys match
// case-sensitively, unknown keys are ignored and a present field must be a
// string or null. An empty body decodes to an empty request.
func decodeContactRequest(body io.Reader) (*domain.ContactRequest, error) {
	req := &domain.ContactRequest{}

	dec := json.NewDecoder(body)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errTrailingData
	}

	targets := map[string]*string{
		"name":    &req.Name,
		"email":   &req.Email,
		"subject": &req.Subject,
		"message": &req.Message,
	}
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// SuccessBody is the 200 response of the contact endpoint
type SuccessBody struct {
	Success string `json:"success" example:"Message sent successfully!"`
}

// ErrorBody is returned for every failure
type ErrorBody struct {
	Error string `json:"error" example:"All fields are required"`
}
