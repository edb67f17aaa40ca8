package tools

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lexindia/precedent/internal/kanoon"
	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/query"
)

func courtEnum() []string {
	return []string{"all", "supremecourt", "highcourts", "tribunals", "district"}
}

func (r *Registry) searchTool() *Tool {
	return &Tool{
		Name:        "search_cases",
		Description: "Search IndianKanoon for relevant case law, ranked by court hierarchy, recency, citations, and query match.",
		Fields: []FieldSpec{
			{Name: "query", Type: "string", Required: true, Help: "free-text legal query"},
			{Name: "court", Type: "string", Enum: courtEnum(), Help: "court filter"},
			{Name: "max_results", Type: "int", Bounded: true, Min: 1, Max: 50},
			{Name: "threshold", Type: "float", Bounded: true, Min: 0, Max: 10, Help: "minimum relevance score"},
			{Name: "page", Type: "int", Bounded: true, Min: 0, Max: 100},
			{Name: "from_date", Type: "string", Help: "DD-MM-YYYY"},
			{Name: "to_date", Type: "string", Help: "DD-MM-YYYY"},
		},
		run: func(ctx context.Context, p Params) (any, error) {
			return r.runSearch(ctx, p)
		},
	}
}

// runSearch implements search_cases: preprocess, primary search, variant
// fan-out when the primary is thin, merge/dedupe, rank with threshold
// fallback. An empty upstream result set yields diagnostics, never a bare
// empty list.
func (r *Registry) runSearch(ctx context.Context, p Params) (*model.SearchOutput, error) {
	rawQuery := p.str("query", "")
	pq := query.Process(rawQuery)

	court := p.str("court", r.cfg.Search.DefaultCourt)
	filters := kanoon.SearchFilters{
		Doctypes: model.CourtFilters[court],
		FromDate: p.str("from_date", ""),
		ToDate:   p.str("to_date", ""),
	}
	maxResults := p.integer("max_results", r.cfg.Search.MaxResults)
	threshold := p.float("threshold", r.cfg.Search.Threshold)
	page := p.integer("page", 0)

	out := &model.SearchOutput{Query: rawQuery, Processed: pq}
	for _, ref := range pq.Sections {
		if !ref.Valid {
			w := fmt.Sprintf("section %s is outside the %s range", ref.Number, ref.Act)
			if len(ref.Suggestions) > 0 {
				w += fmt.Sprintf(" (suggestions: %v)", ref.Suggestions)
			}
			out.Warnings = append(out.Warnings, w)
		}
	}

	seen := make(map[int]bool)
	var candidates []model.SearchResult
	merge := func(docs []model.SearchResult) {
		for _, doc := range docs {
			if !seen[doc.TID] {
				seen[doc.TID] = true
				candidates = append(candidates, doc)
			}
		}
	}

	primary, err := r.client.Search(ctx, pq.Normalized, page, filters)
	if err != nil {
		// Auth and exhausted rate limits will not improve on a variant.
		if errors.Is(err, kanoon.ErrAuth) || errors.Is(err, kanoon.ErrRateLimited) {
			return nil, err
		}
		out.Warnings = append(out.Warnings, fmt.Sprintf("primary search failed: %v", err))
	} else {
		out.TotalFound = primary.Found
		merge(primary.Docs)
	}

	attempted, failed := 0, 0
	if len(candidates) < r.cfg.Search.MinResults {
		pages, failures := r.searchVariants(ctx, pq, filters)
		attempted = len(pages)
		failed = len(failures)
		out.Warnings = append(out.Warnings, failures...)
		for _, docs := range pages {
			merge(docs)
		}
	}

	if len(candidates) == 0 {
		// Only a total inability to produce anything is a top-level error.
		if err != nil && (attempted == 0 || failed == attempted) {
			return nil, err
		}
		out.Cases = []model.ScoredCase{}
		out.Diagnostics = r.diagnose(pq, err)
		return out, nil
	}

	ranked, lowConfidence := r.ranker.Rank(candidates, pq, threshold, maxResults)
	out.Cases = ranked
	out.LowConfidence = lowConfidence
	if lowConfidence {
		out.Warnings = append(out.Warnings,
			"no result reached the relevance threshold; returning the closest matches")
	}
	return out, nil
}

// searchVariants fires the remaining query variants concurrently. Each
// variant's failure is isolated: it degrades to an empty partial result and
// a warning instead of aborting the search. Results come back in variant
// order so merging stays deterministic.
func (r *Registry) searchVariants(ctx context.Context, pq *model.ProcessedQuery, filters kanoon.SearchFilters) ([][]model.SearchResult, []string) {
	var variants []string
	for _, v := range pq.Variants {
		if v != pq.Normalized {
			variants = append(variants, v)
		}
	}
	if len(variants) == 0 {
		return nil, nil
	}

	pages := make([][]model.SearchResult, len(variants))
	errs := make([]error, len(variants))
	var wg sync.WaitGroup

	for i, variant := range variants {
		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()
			page, err := r.client.Search(ctx, q, 0, filters)
			if err != nil {
				errs[idx] = err
				return
			}
			pages[idx] = page.Docs
		}(i, variant)
	}
	wg.Wait()

	var failures []string
	for i, err := range errs {
		if err != nil {
			failures = append(failures, fmt.Sprintf("variant search %q failed: %v", variants[i], err))
		}
	}
	return pages, failures
}

// diagnose explains an empty result set and always offers at least one
// alternative query.
func (r *Registry) diagnose(pq *model.ProcessedQuery, primaryErr error) *model.SearchDiagnostics {
	d := &model.SearchDiagnostics{Alternatives: query.Alternatives(pq)}

	switch {
	case primaryErr != nil:
		d.Reason = "searches_failed"
		d.Detail = "one or more searches failed and the remainder matched nothing"
	case !pq.HasValidSections() && len(pq.Sections) > 0:
		d.Reason = "invalid_sections"
		d.Detail = "every extracted section number failed range validation"
	default:
		d.Reason = "no_documents_matched"
		d.Detail = "the query and its variants matched no documents"
	}

	if len(d.Alternatives) == 0 {
		d.Alternatives = []string{pq.Normalized + " judgment"}
	}
	return d
}
