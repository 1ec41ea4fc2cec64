package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/electa/internal/app/models/dto"
)

// HandleBindingError writes the 400 response for a request-body
// binding failure, naming the offending field when the failure is
// field-level.
func HandleBindingError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, FormatBindingError(err)).
		WithDetails(err.Error())
	if field := bindingErrorField(err); field != "" {
		detail = detail.WithField(field)
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

// FormatBindingError turns a gin binding failure into a human-readable
// message. Binding runs the validator tags, so field-level failures
// arrive as validator.ValidationErrors.
func FormatBindingError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Invalid request format"
	}
	return formatValidationError(validationErrors[0])
}

// bindingErrorField returns the field behind a binding failure, or ""
// when the failure is not field-level (malformed JSON, wrong types).
func bindingErrorField(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Field()
	}
	return ""
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
