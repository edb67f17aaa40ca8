package model

// CitationStyle selects an output/validation format for citations.
type CitationStyle string

const (
	StyleSCC          CitationStyle = "scc"          // Supreme Court Cases law report
	StyleAIR          CitationStyle = "air"          // All India Reporter parallel report
	StyleNeutral      CitationStyle = "neutral"      // Neutral citation
	StyleIndianKanoon CitationStyle = "indiankanoon" // Online reporter
)

// CitationStyles lists the supported styles in display order.
var CitationStyles = []CitationStyle{StyleSCC, StyleAIR, StyleNeutral, StyleIndianKanoon}

// ValidStyle reports whether s names a supported citation style.
func ValidStyle(s string) bool {
	for _, style := range CitationStyles {
		if string(style) == s {
			return true
		}
	}
	return false
}

// CitationElements holds the normalized pieces a citation is built from.
type CitationElements struct {
	PartyA     string `json:"party_a"`
	PartyB     string `json:"party_b"`
	Court      string `json:"court,omitempty"` // e.g. "SC", "Bom HC"
	Year       int    `json:"year"`
	Volume     int    `json:"volume,omitempty"`
	Page       int    `json:"page,omitempty"`
	CaseNumber string `json:"case_number,omitempty"`
	DocID      int    `json:"doc_id,omitempty"`    // For the online-reporter style
	Paragraph  int    `json:"paragraph,omitempty"` // Pinpoint
}

// FormattedCitation carries every derived variant for one style.
type FormattedCitation struct {
	Style        CitationStyle `json:"style"`
	Full         string        `json:"full"`
	Short        string        `json:"short"`
	InText       string        `json:"in_text"`
	Footnote     string        `json:"footnote"`
	Bibliography string        `json:"bibliography"`
	Pinpoint     string        `json:"pinpoint,omitempty"`
}

// ValidationReport is the payload of the validate_citation tool. An invalid
// citation is a reportable outcome, not an error.
type ValidationReport struct {
	Citation   string        `json:"citation"`
	Style      CitationStyle `json:"style"`
	Valid      bool          `json:"valid"`
	Problems   []string      `json:"problems,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
}
