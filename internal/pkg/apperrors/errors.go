package apperrors

import "errors"

// Common errors
var (
	// Catalog errors
	ErrCatalogUnavailable = errors.New("course catalog unavailable")
	ErrCatalogSource      = errors.New("catalog source unreadable")
	ErrCourseNotFound     = errors.New("course not found")

	// Transcript errors
	ErrTranscriptFormat = errors.New("invalid or unsupported transcript format")
	ErrMissingGradeCard = errors.New("no grade card file part")
	ErrTextExtraction   = errors.New("failed to extract text from document")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors
	ErrBadRequest = errors.New("bad request")
)

// NewTranscriptFormatError wraps ErrTranscriptFormat with the field
// that failed extraction.
func NewTranscriptFormatError(field string) error {
	return &CustomError{
		Err:     ErrTranscriptFormat,
		Message: "transcript field could not be extracted: " + field,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
