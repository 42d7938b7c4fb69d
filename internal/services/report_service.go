package services

import (
	"bytes"
	"fmt"
	"strings"

	"agent_review_go_backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ReportService renders a paper's review state as a downloadable PDF.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildPaperReport produces a PDF with the paper header, its aggregate
// statistics and every review, most recent first (callers pass reviews in
// the order the ledger returns them).
func (s *ReportService) BuildPaperReport(paper models.Paper, reviews []models.Review) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, tr(paper.Title), "", "L", false)

	pdf.SetFont("Arial", "I", 11)
	pdf.MultiCell(0, 6, tr(strings.Join(paper.Authors, ", ")), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Category: %s    Published: %s", paper.Category, paper.PublishedDate)), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Average score: %.1f / 5 from %d reviews", paper.AvgScore, paper.ReviewCount), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(0, 6, "Abstract", "", "L", false)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(paper.Abstract), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Reviews (%d)", len(reviews)), "", "L", false)
	if len(reviews) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, "No reviews submitted yet.", "", "L", false)
	}
	for _, review := range reviews {
		pdf.SetFont("Arial", "B", 10)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s - %d/5 - %s", review.UserName, review.Score, review.Timestamp.Format("2006-01-02 15:04"))), "", "L", false)
		if review.Comment != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(review.Comment), "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %v", err)
	}
	return buf.Bytes(), nil
}
