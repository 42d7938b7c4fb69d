package api

import (
	"fmt"
	"net/http"

	"agent_review_go_backend/internal/errors"
	"agent_review_go_backend/internal/services"
	"agent_review_go_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func listPapersHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"papers": ledger.ListPapers()})
	}
}

func getPaperHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		paper, err := ledger.GetPaper(c.Param("paper_id"))
		if err != nil {
			errors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, paper)
	}
}

func listReviewsHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := ledger.ListReviews(c.Param("paper_id"))
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

func analyzePaperHandler(ledger *store.Ledger, analysisService *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paper, err := ledger.GetPaper(c.Param("paper_id"))
		if err != nil {
			errors.HandleError(c, err)
			return
		}

		// The collaborator fails soft: any model failure comes back as a
		// placeholder string, never as an HTTP error.
		analysis := analysisService.AnalyzePaper(c.Request.Context(), paper)
		c.JSON(http.StatusOK, gin.H{
			"paper_id": paper.ID,
			"analysis": analysis,
		})
	}
}

func paperReportHandler(ledger *store.Ledger, reportService *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paper, err := ledger.GetPaper(c.Param("paper_id"))
		if err != nil {
			errors.HandleError(c, err)
			return
		}

		report, err := reportService.BuildPaperReport(paper, ledger.ListReviews(paper.ID))
		if err != nil {
			errors.HandleError(c, errors.New500Error(err))
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-review-report.pdf", paper.ID))
		c.Data(http.StatusOK, "application/pdf", report)
	}
}

func paperCitationHandler(ledger *store.Ledger, citationService *services.CitationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paper, err := ledger.GetPaper(c.Param("paper_id"))
		if err != nil {
			errors.HandleError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/x-bibtex", []byte(citationService.BibTeXEntry(paper)))
	}
}
