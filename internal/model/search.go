package model

// SearchResult represents a single document returned by the IndianKanoon
// search endpoint. Field names mirror the upstream API so responses pass
// through losslessly where we do not explicitly transform them.
type SearchResult struct {
	TID         int    `json:"tid"`                   // Document identifier
	Title       string `json:"title"`                 // Case title
	DocSource   string `json:"docsource,omitempty"`   // Court label as reported upstream
	PublishDate string `json:"publishdate,omitempty"` // "YYYY-MM-DD" (sometimes partial)
	NumCites    int    `json:"numcites,omitempty"`    // Documents this one cites
	NumCitedBy  int    `json:"numcitedby,omitempty"`  // Documents citing this one
	Headline    string `json:"headline,omitempty"`    // Snippet with query highlights
	Citation    string `json:"citation,omitempty"`    // Raw reported citation, if any
}

// SearchPage is the upstream search response envelope.
type SearchPage struct {
	Docs       []SearchResult `json:"docs"`
	Found      string         `json:"found,omitempty"`
	Categories [][]any        `json:"categories,omitempty"`
}

// ScoredCase augments a SearchResult with the computed relevance breakdown.
// Created during ranking, discarded after response serialization.
type ScoredCase struct {
	SearchResult
	Score           float64  `json:"relevance_score"`
	CourtTier       string   `json:"court_tier"`
	MatchedSections []string `json:"matched_sections,omitempty"`
	MatchedConcepts []string `json:"matched_concepts,omitempty"`
	BelowThreshold  bool     `json:"below_threshold,omitempty"`
}

// SearchDiagnostics explains an empty or thin result set and offers
// alternative queries. Returned instead of a bare empty list.
type SearchDiagnostics struct {
	Reason       string   `json:"reason"`
	Detail       string   `json:"detail,omitempty"`
	Alternatives []string `json:"alternative_queries"`
}

// SearchOutput is the payload of the search_cases tool.
type SearchOutput struct {
	Query         string             `json:"query"`
	Processed     *ProcessedQuery    `json:"processed_query,omitempty"`
	Cases         []ScoredCase       `json:"cases"`
	TotalFound    string             `json:"total_found,omitempty"`
	LowConfidence bool               `json:"low_confidence,omitempty"`
	Warnings      []string           `json:"warnings,omitempty"`
	Diagnostics   *SearchDiagnostics `json:"diagnostics,omitempty"`
}

// CaseDocument is the payload of the get_case_document tool.
type CaseDocument struct {
	TID        int            `json:"tid"`
	Title      string         `json:"title"`
	Court      string         `json:"court,omitempty"`
	Date       string         `json:"date,omitempty"`
	Citation   string         `json:"citation,omitempty"`
	Text       string         `json:"text"`
	Complete   bool           `json:"complete"` // false when truncated at a sentence boundary
	NumCites   int            `json:"numcites,omitempty"`
	NumCitedBy int            `json:"numcitedby,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
