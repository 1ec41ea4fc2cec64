package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/electa/internal/pkg/apperrors"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return rec
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "catalog unavailable",
			err:        apperrors.ErrCatalogUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "SRV_002",
		},
		{
			name:       "session not found",
			err:        apperrors.ErrSessionNotFound,
			wantStatus: http.StatusBadRequest,
			wantBody:   "upload your grade card",
		},
		{
			name:       "missing grade card",
			err:        apperrors.ErrMissingGradeCard,
			wantStatus: http.StatusBadRequest,
			wantBody:   "No file part",
		},
		{
			name:       "transcript format",
			err:        apperrors.NewTranscriptFormatError("rollNo"),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "rollNo",
		},
		{
			name:       "text extraction",
			err:        apperrors.ErrTextExtraction,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "valid transcript",
		},
		{
			name:       "bad request",
			err:        apperrors.NewBadRequestError("roll number cannot be empty"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "roll number cannot be empty",
		},
		{
			name:       "course not found",
			err:        apperrors.ErrCourseNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "RES_001",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "SRV_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWithError(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/bind", func(c *gin.Context) {
		var req struct {
			RollNo string `json:"rollNo" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing required field names the field", func(t *testing.T) {
		rec := post(`{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_001")
		assert.Contains(t, rec.Body.String(), "RollNo is required")
		assert.Contains(t, rec.Body.String(), `"field":"RollNo"`)
	})

	t.Run("malformed body has no field", func(t *testing.T) {
		rec := post(`not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request format")
		assert.NotContains(t, rec.Body.String(), `"field"`)
	})
}
