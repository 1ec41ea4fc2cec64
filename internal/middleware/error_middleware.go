package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/electa/internal/app/models/dto"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError translates application errors into structured HTTP
// responses. Request handlers delegate every service error here so
// the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCatalogUnavailable,
				"Course catalog is unavailable; recommendations cannot be served").
				WithSeverity(dto.ErrorSeverityCritical)))

	case errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSessionNotFound,
				"Session not found. Please upload your grade card again.")))

	case errors.Is(err, apperrors.ErrMissingGradeCard):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMissingGradeCard, "No file part")))

	case apperrors.Is(err, apperrors.ErrTranscriptFormat, apperrors.ErrTextExtraction):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTranscriptFormat,
				"Failed to process the grade card. Please ensure it is a valid transcript. Details: "+err.Error())))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))

	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		if gin.IsDebugging() {
			detail = detail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}
