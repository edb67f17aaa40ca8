package model

// LegalWeight labels the jurisprudential weight of a text fragment.
type LegalWeight string

const (
	WeightRatioDecidendi     LegalWeight = "ratio_decidendi"
	WeightOverruling         LegalWeight = "overruling_precedent"
	WeightStatutoryInterp    LegalWeight = "statutory_interpretation"
	WeightEvidenceAnalysis   LegalWeight = "evidence_analysis"
	WeightFollowingPrecedent LegalWeight = "following_precedent"
	WeightDistinguishing     LegalWeight = "distinguishing"
	WeightProcedural         LegalWeight = "procedural_direction"
	WeightConcession         LegalWeight = "concession_admission"
	WeightDisagreement       LegalWeight = "judicial_disagreement"
	WeightObiterDicta        LegalWeight = "obiter_dicta"
	WeightObservation        LegalWeight = "supporting_observation"
)

// PrincipleFragment is a paragraph-level excerpt from a judgment with its
// classified legal weight. Created during extraction, never persisted.
type PrincipleFragment struct {
	DocID       int           `json:"doc_id"`
	Paragraph   int           `json:"paragraph"` // Extracted or positional fallback
	Text        string        `json:"text"`
	Context     string        `json:"context,omitempty"` // Surrounding text, truncated
	Weight      LegalWeight   `json:"weight"`
	Confidence  float64       `json:"confidence"`             // 0..1
	AlsoMatched []LegalWeight `json:"also_matched,omitempty"` // Lower-priority categories that matched
}

// PrinciplesOutput is the payload of the extract_legal_principles tool.
type PrinciplesOutput struct {
	DocID     int                 `json:"doc_id"`
	Title     string              `json:"title,omitempty"`
	Query     string              `json:"query,omitempty"`
	Fragments []PrincipleFragment `json:"fragments"`
	Warnings  []string            `json:"warnings,omitempty"`
}
