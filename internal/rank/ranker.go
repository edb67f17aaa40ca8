package rank

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lexindia/precedent/internal/model"
)

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Ranker assigns comparable relevance scores to heterogeneous search
// results. The clock is injectable so recency scoring is testable.
type Ranker struct {
	now func() time.Time
}

// NewRanker creates a ranker using the wall clock.
func NewRanker() *Ranker {
	return &Ranker{now: time.Now}
}

// NewRankerAt creates a ranker with a fixed clock, for tests.
func NewRankerAt(now time.Time) *Ranker {
	return &Ranker{now: func() time.Time { return now }}
}

// Score computes the relevance score for one result. Factors multiply a
// running score starting at 1.0, in this order: court tier, recency,
// citation weight, then the query-match bonus when query context exists.
func (r *Ranker) Score(res model.SearchResult, pq *model.ProcessedQuery) model.ScoredCase {
	tier := ClassifyCourt(res.DocSource)
	score := tierMultipliers[tier]

	if year, ok := publishYear(res.PublishDate); ok {
		if r.now().Year()-year <= 2 {
			score *= 1.3
		}
	}

	// Citation-weight bonus; thresholds are mutually exclusive.
	switch {
	case res.NumCitedBy > 20:
		score *= 1.4
	case res.NumCitedBy > 10:
		score *= 1.2
	}

	sc := model.ScoredCase{
		SearchResult: res,
		CourtTier:    string(tier),
	}

	if pq != nil {
		score *= r.queryMatchFactor(res, pq, &sc)
	}

	sc.Score = score
	return sc
}

// queryMatchFactor rewards results that mention the query's sections,
// concepts, and significant words, and penalizes results answering a
// section-specific query without mentioning any of the sections.
func (r *Ranker) queryMatchFactor(res model.SearchResult, pq *model.ProcessedQuery, sc *model.ScoredCase) float64 {
	text := strings.ToLower(res.Title + " " + res.Headline)

	requested := 0
	for _, ref := range pq.Sections {
		if !ref.Valid {
			continue
		}
		requested++
		if strings.Contains(text, strings.ToLower(ref.Number)) {
			sc.MatchedSections = append(sc.MatchedSections, ref.Number)
		}
	}

	for _, concept := range pq.Concepts {
		if strings.Contains(text, concept) {
			sc.MatchedConcepts = append(sc.MatchedConcepts, concept)
		}
	}

	wordMatches := 0
	for _, w := range pq.Words {
		if strings.Contains(text, w) {
			wordMatches++
		}
	}

	factor := 1.0
	if requested > 0 {
		factor += 0.4 * float64(len(sc.MatchedSections)) / float64(requested)
	}
	if len(pq.Concepts) > 0 {
		factor += 0.3 * float64(len(sc.MatchedConcepts)) / float64(len(pq.Concepts))
	}
	if len(pq.Words) > 0 {
		factor += 0.2 * float64(wordMatches) / float64(len(pq.Words))
	}

	if requested > 0 && len(sc.MatchedSections) == 0 {
		factor *= 0.5
	}

	return factor
}

// Rank scores and orders results, applies the relevance threshold, and caps
// at limit. When the threshold would empty a non-empty candidate set, the
// best-scoring candidates are returned flagged BelowThreshold instead of an
// empty list; the second return value reports that low-confidence fallback.
func (r *Ranker) Rank(results []model.SearchResult, pq *model.ProcessedQuery, threshold float64, limit int) ([]model.ScoredCase, bool) {
	if len(results) == 0 {
		return nil, false
	}
	if limit <= 0 {
		limit = len(results)
	}

	scored := make([]model.ScoredCase, 0, len(results))
	for _, res := range results {
		scored = append(scored, r.Score(res, pq))
	}

	// Stable: ties keep the upstream order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	kept := make([]model.ScoredCase, 0, limit)
	for _, sc := range scored {
		if sc.Score >= threshold {
			kept = append(kept, sc)
			if len(kept) == limit {
				break
			}
		}
	}

	if len(kept) > 0 {
		return kept, false
	}

	// Threshold fallback: never return empty when candidates existed.
	n := limit
	if n > len(scored) {
		n = len(scored)
	}
	fallback := make([]model.ScoredCase, n)
	copy(fallback, scored[:n])
	for i := range fallback {
		fallback[i].BelowThreshold = true
	}
	return fallback, true
}

// publishYear parses the publish year out of the upstream date string,
// which is usually "YYYY-MM-DD" but occasionally just a year.
func publishYear(date string) (int, bool) {
	m := yearRe.FindString(date)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}
