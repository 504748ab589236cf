package validation

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	TagRequired   = "required"
	TagHeaderSafe = "header_safe"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation(TagHeaderSafe, HeaderSafe)
}

// HeaderSafe rejects values that could break out of a mail header line:
// CR, LF and every other control character except tab.
func HeaderSafe(fl validator.FieldLevel) bool {
	return IsHeaderSafe(fl.Field().String())
}

func IsHeaderSafe(val string) bool {
	for _, r := range val {
		if r == '\t' {
			continue
		}
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
			return false
		}
	}
	return true
}

// HasTag reports whether err is a validation failure on the given tag.
func HasTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, e := range validationErrors {
		if e.Tag() == tag {
			return true
		}
	}
	return false
}

// FailedFields lists "Field:tag" pairs for logging.
func FailedFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, e.Field()+":"+e.Tag())
	}
	return fields
}
