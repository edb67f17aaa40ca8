package model

// SectionRef is a statute section reference extracted from a query.
type SectionRef struct {
	Number      string   `json:"number"`                // As written, e.g. "302" or "148A"
	Act         string   `json:"act"`                   // "IPC", "BNS", "CrPC", "BNSS"
	Valid       bool     `json:"valid"`                 // Within the act's known numeric range
	Suggestions []string `json:"suggestions,omitempty"` // Corrections when invalid
}

// ProcessedQuery is the structured search plan derived from a raw query.
// Immutable after construction; building it performs no I/O.
type ProcessedQuery struct {
	Original   string       `json:"original"`
	Normalized string       `json:"normalized"`
	Sections   []SectionRef `json:"sections,omitempty"`
	Concepts   []string     `json:"concepts,omitempty"`
	Variants   []string     `json:"variants"` // Ordered: tried first to last
	Words      []string     `json:"-"`        // Significant free-text words, for ranking
}

// HasValidSections reports whether at least one extracted section passed
// range validation.
func (q *ProcessedQuery) HasValidSections() bool {
	for _, s := range q.Sections {
		if s.Valid {
			return true
		}
	}
	return false
}
