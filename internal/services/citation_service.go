package services

import (
	"strings"

	"agent_review_go_backend/internal/models"

	"github.com/nickng/bibtex"
)

// CitationService renders papers as BibTeX entries.
type CitationService struct{}

func NewCitationService() *CitationService {
	return &CitationService{}
}

// BibTeXEntry renders the paper as an @misc entry.
func (s *CitationService) BibTeXEntry(paper models.Paper) string {
	bib := bibtex.NewBibTex()
	entry := bibtex.NewBibEntry("misc", citeKey(paper))
	entry.AddField("title", bibtex.NewBibConst(paper.Title))
	if len(paper.Authors) > 0 {
		entry.AddField("author", bibtex.NewBibConst(strings.Join(paper.Authors, " and ")))
	}
	if year := publicationYear(paper); year != "" {
		entry.AddField("year", bibtex.NewBibConst(year))
	}
	if paper.HFURL != "" {
		entry.AddField("howpublished", bibtex.NewBibConst(paper.HFURL))
	}
	entry.AddField("note", bibtex.NewBibConst(paper.Category))
	bib.AddEntry(entry)
	return bib.String()
}

func citeKey(paper models.Paper) string {
	key := paper.ID
	if len(paper.Authors) > 0 {
		parts := strings.Fields(paper.Authors[0])
		if len(parts) > 0 {
			key = strings.ToLower(parts[len(parts)-1])
		}
	}
	if year := publicationYear(paper); year != "" {
		key += year
	}
	return key
}

func publicationYear(paper models.Paper) string {
	if len(paper.PublishedDate) >= 4 {
		return paper.PublishedDate[:4]
	}
	return ""
}
