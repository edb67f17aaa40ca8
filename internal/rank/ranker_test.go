package rank

import (
	"math"
	"testing"
	"time"

	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/query"
)

var fixedNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_CourtTierMultipliers(t *testing.T) {
	r := NewRankerAt(fixedNow)

	tests := []struct {
		source string
		want   float64
	}{
		{"Supreme Court of India", 1.5},
		{"Bombay High Court", 1.2},
		{"District Court, Pune", 1.0},
		{"Income Tax Appellate Tribunal", 0.9},
	}

	for _, tt := range tests {
		sc := r.Score(model.SearchResult{DocSource: tt.source, PublishDate: "2005-01-01"}, nil)
		if !almostEqual(sc.Score, tt.want) {
			t.Errorf("Score for %q = %v, want %v", tt.source, sc.Score, tt.want)
		}
	}
}

func TestScore_RecencyBonus(t *testing.T) {
	r := NewRankerAt(fixedNow)

	recent := r.Score(model.SearchResult{DocSource: "District Court", PublishDate: "2023-03-15"}, nil)
	if !almostEqual(recent.Score, 1.3) {
		t.Errorf("Expected recency bonus 1.3, got %v", recent.Score)
	}

	old := r.Score(model.SearchResult{DocSource: "District Court", PublishDate: "2010-03-15"}, nil)
	if !almostEqual(old.Score, 1.0) {
		t.Errorf("Expected no recency bonus, got %v", old.Score)
	}

	// Exactly on the boundary still counts.
	edge := r.Score(model.SearchResult{DocSource: "District Court", PublishDate: "2022-01-01"}, nil)
	if !almostEqual(edge.Score, 1.3) {
		t.Errorf("Expected boundary year to earn the bonus, got %v", edge.Score)
	}
}

func TestScore_CitationBonusMutuallyExclusive(t *testing.T) {
	r := NewRankerAt(fixedNow)
	base := model.SearchResult{DocSource: "District Court", PublishDate: "2005-01-01"}

	tests := []struct {
		citedBy int
		want    float64
	}{
		{0, 1.0},
		{10, 1.0},
		{11, 1.2},
		{20, 1.2},
		{21, 1.4},
		{500, 1.4},
	}
	for _, tt := range tests {
		res := base
		res.NumCitedBy = tt.citedBy
		if sc := r.Score(res, nil); !almostEqual(sc.Score, tt.want) {
			t.Errorf("citedBy=%d: score %v, want %v", tt.citedBy, sc.Score, tt.want)
		}
	}
}

func TestScore_FactorsMultiply(t *testing.T) {
	r := NewRankerAt(fixedNow)
	sc := r.Score(model.SearchResult{
		DocSource:   "Supreme Court of India",
		PublishDate: "2023-05-01",
		NumCitedBy:  25,
	}, nil)
	want := 1.5 * 1.3 * 1.4
	if !almostEqual(sc.Score, want) {
		t.Errorf("Expected %v, got %v", want, sc.Score)
	}
}

func TestScore_SectionMatchPenalty(t *testing.T) {
	r := NewRankerAt(fixedNow)
	pq := query.Process("Section 302 IPC murder")

	matched := r.Score(model.SearchResult{
		DocSource:   "District Court",
		PublishDate: "2005-01-01",
		Title:       "State v. Accused",
		Headline:    "conviction under Section 302 for murder",
	}, pq)
	unmatched := r.Score(model.SearchResult{
		DocSource:   "District Court",
		PublishDate: "2005-01-01",
		Title:       "A v. B",
		Headline:    "a property dispute",
	}, pq)

	if matched.Score <= unmatched.Score {
		t.Errorf("Section-matching result must outscore non-matching: %v vs %v",
			matched.Score, unmatched.Score)
	}
	if len(matched.MatchedSections) != 1 || matched.MatchedSections[0] != "302" {
		t.Errorf("Expected matched section 302, got %v", matched.MatchedSections)
	}
	if len(unmatched.MatchedSections) != 0 {
		t.Errorf("Expected no matched sections, got %v", unmatched.MatchedSections)
	}
	// The penalty halves the query-match factor.
	if unmatched.Score >= 1.0 {
		t.Errorf("Expected penalized score below 1.0, got %v", unmatched.Score)
	}
}

func TestRank_StableOrderOnTies(t *testing.T) {
	r := NewRankerAt(fixedNow)
	results := []model.SearchResult{
		{TID: 1, DocSource: "District Court", PublishDate: "2005-01-01"},
		{TID: 2, DocSource: "District Court", PublishDate: "2005-01-01"},
		{TID: 3, DocSource: "District Court", PublishDate: "2005-01-01"},
	}
	ranked, low := r.Rank(results, nil, 0, 10)
	if low {
		t.Fatal("Unexpected low-confidence flag")
	}
	for i, sc := range ranked {
		if sc.TID != results[i].TID {
			t.Errorf("Tied results reordered: position %d has TID %d", i, sc.TID)
		}
	}
}

func TestRank_ThresholdFallback(t *testing.T) {
	r := NewRankerAt(fixedNow)
	results := []model.SearchResult{
		{TID: 1, DocSource: "District Court", PublishDate: "2005-01-01"},
		{TID: 2, DocSource: "Supreme Court of India", PublishDate: "2005-01-01"},
	}

	ranked, low := r.Rank(results, nil, 99.0, 10)
	if !low {
		t.Fatal("Expected low-confidence fallback")
	}
	if len(ranked) == 0 {
		t.Fatal("Fallback must never return empty when candidates exist")
	}
	if ranked[0].TID != 2 {
		t.Errorf("Expected best candidate first, got TID %d", ranked[0].TID)
	}
	for _, sc := range ranked {
		if !sc.BelowThreshold {
			t.Errorf("TID %d missing BelowThreshold flag", sc.TID)
		}
	}
}

func TestRank_ThresholdAndLimit(t *testing.T) {
	r := NewRankerAt(fixedNow)
	results := []model.SearchResult{
		{TID: 1, DocSource: "Supreme Court of India", PublishDate: "2005-01-01"},
		{TID: 2, DocSource: "Bombay High Court", PublishDate: "2005-01-01"},
		{TID: 3, DocSource: "District Court", PublishDate: "2005-01-01"},
	}

	ranked, low := r.Rank(results, nil, 1.1, 1)
	if low {
		t.Fatal("Unexpected low-confidence flag")
	}
	if len(ranked) != 1 || ranked[0].TID != 1 {
		t.Fatalf("Expected only the apex result, got %+v", ranked)
	}
	if ranked[0].BelowThreshold {
		t.Error("Above-threshold result flagged BelowThreshold")
	}
}

func TestRank_EmptyInput(t *testing.T) {
	r := NewRankerAt(fixedNow)
	ranked, low := r.Rank(nil, nil, 1.0, 10)
	if ranked != nil || low {
		t.Errorf("Expected nil, false for empty input, got %v, %v", ranked, low)
	}
}

func TestClassifyCourt(t *testing.T) {
	tests := []struct {
		label string
		want  CourtTier
	}{
		{"Supreme Court of India", TierApex},
		{"Bombay High Court", TierHigh},
		{"Karnataka", TierHigh},
		{"Sessions Court, Mumbai", TierDistrict},
		{"National Company Law Appellate Tribunal", TierTribunal},
		{"National Consumer Disputes Redressal Commission", TierCommission},
		{"Gram Nyayalaya", TierOther},
	}
	for _, tt := range tests {
		if got := ClassifyCourt(tt.label); got != tt.want {
			t.Errorf("ClassifyCourt(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
