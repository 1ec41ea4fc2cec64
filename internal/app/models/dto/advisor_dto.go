package dto

import "github.com/yigit/electa/internal/app/models"

// RecommendElectivesRequest is the body of POST /api/recommend_electives.
type RecommendElectivesRequest struct {
	RollNo     string `json:"rollNo" binding:"required" example:"CE21B001"`
	Preference string `json:"preference" example:"music"` // Empty or "any" means no preference filter
}

// InitFromTranscriptResponse is the payload of POST /api/init_from_pdf.
type InitFromTranscriptResponse struct {
	StudentProfile     *models.StudentProfile `json:"studentProfile"`
	SuggestedQuestions []string               `json:"suggestedQuestions"`
}

// RecommendElectivesResponse carries at most five recommended courses
// in catalog order.
type RecommendElectivesResponse struct {
	Recommendations []models.CourseRecord `json:"recommendations"`
}
