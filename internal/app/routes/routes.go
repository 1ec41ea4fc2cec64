package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/electa/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	advisorController *controllers.AdvisorController,
) {
	// The front-end talks to a flat /api surface
	api := router.Group("/api")
	{
		api.POST("/init_from_pdf", advisorController.InitFromPDF)
		api.POST("/recommend_electives", advisorController.RecommendElectives)
	}
}
