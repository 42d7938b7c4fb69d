package api

import (
	"time"

	"agent_review_go_backend/internal/services"
	"agent_review_go_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the API surface. All ledger state is served from
// the in-memory store; the analyze route calls out to the Gemini
// collaborator and always answers 200 with either commentary or a
// placeholder.
func SetupRoutes(
	r *gin.Engine,
	ledger *store.Ledger,
	analysisService *services.AnalysisService,
	reportService *services.ReportService,
	citationService *services.CitationService,
	rateLimitRPS int,
	simulatedLatency time.Duration,
) {
	api := r.Group("/api")
	api.Use(RateLimitMiddleware(rateLimitRPS))
	if simulatedLatency > 0 {
		api.Use(SimulatedLatencyMiddleware(simulatedLatency))
	}
	{
		api.POST("/session", createSessionHandler(ledger))
		api.GET("/papers", listPapersHandler(ledger))
		api.GET("/papers/:paper_id", getPaperHandler(ledger))
		api.GET("/papers/:paper_id/reviews", listReviewsHandler(ledger))
		api.POST("/papers/:paper_id/analyze", analyzePaperHandler(ledger, analysisService))
		api.GET("/papers/:paper_id/report", paperReportHandler(ledger, reportService))
		api.GET("/papers/:paper_id/citation", paperCitationHandler(ledger, citationService))
		api.POST("/reviews", SessionMiddleware(ledger), submitReviewHandler(ledger))
		api.GET("/me", SessionMiddleware(ledger), currentUserHandler())
		api.GET("/leaderboard", leaderboardHandler(ledger))
	}
}
