package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/electa/internal/app/models/dto"
	"github.com/yigit/electa/internal/app/services"
	"github.com/yigit/electa/internal/middleware"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

// AdvisorController handles grade-card uploads and elective
// recommendation requests
type AdvisorController struct {
	advisorService *services.AdvisorService
	logger         zerolog.Logger
}

// NewAdvisorController creates a new AdvisorController
func NewAdvisorController(advisorService *services.AdvisorService, logger zerolog.Logger) *AdvisorController {
	return &AdvisorController{
		advisorService: advisorService,
		logger:         logger,
	}
}

// InitFromPDF handles the grade card upload and starts the session
// @Summary Initialize a session from a grade card
// @Description Parses the uploaded grade card, derives the student's current semester and occupied slots, and registers the profile for later recommendation requests
// @Tags advisor
// @Accept multipart/form-data
// @Produce json
// @Param gradeCard formData file true "Grade card document (PDF)"
// @Success 200 {object} dto.APIResponse{data=dto.InitFromTranscriptResponse} "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Missing gradeCard file part"
// @Failure 422 {object} dto.ErrorResponse "Invalid or unsupported transcript format"
// @Failure 503 {object} dto.ErrorResponse "Course catalog unavailable"
// @Router /init_from_pdf [post]
func (c *AdvisorController) InitFromPDF(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("gradeCard")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingGradeCard)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to open uploaded grade card")
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrTextExtraction, "could not read uploaded file"))
		return
	}
	defer file.Close()

	profile, questions, err := c.advisorService.InitFromTranscript(ctx, file, fileHeader.Size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.InitFromTranscriptResponse{
		StudentProfile:     profile,
		SuggestedQuestions: questions,
	}))
}

// RecommendElectives provides elective recommendations for a session
// @Summary Recommend electives
// @Description Returns up to five electives in free slots matching the student's preference, filtered by prior technical performance
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body dto.RecommendElectivesRequest true "Roll number and free-text preference"
// @Success 200 {object} dto.APIResponse{data=dto.RecommendElectivesResponse} "Recommendations"
// @Failure 400 {object} dto.ErrorResponse "Missing roll number or unknown session"
// @Failure 503 {object} dto.ErrorResponse "Course catalog unavailable"
// @Router /recommend_electives [post]
func (c *AdvisorController) RecommendElectives(ctx *gin.Context) {
	var req dto.RecommendElectivesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	recommendations, err := c.advisorService.RecommendElectives(ctx, req.RollNo, req.Preference)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RecommendElectivesResponse{
		Recommendations: recommendations,
	}))
}
