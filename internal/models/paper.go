package models

// Paper is a catalogue entry plus the rolling review aggregate maintained
// by the ledger. AvgScore is the mean of all submitted scores, rounded to
// one decimal place; ReviewCount is the number of scores folded into it.
type Paper struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Abstract      string   `json:"abstract"`
	Category      string   `json:"category"`
	PublishedDate string   `json:"publishedDate"`
	Upvotes       int      `json:"upvotes"`
	ReviewCount   int      `json:"reviewCount"`
	AvgScore      float64  `json:"avgScore"`
	HFURL         string   `json:"hfUrl,omitempty"`
}
