package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/lexindia/precedent/internal/model"
)

func (r *Registry) memoTool() *Tool {
	return &Tool{
		Name:        "build_research_memo",
		Description: "Research a legal question end to end: search, rank, extract principles from the leading cases, and render a memo.",
		Fields: []FieldSpec{
			{Name: "question", Type: "string", Required: true},
			{Name: "court", Type: "string", Enum: courtEnum()},
			{Name: "max_results", Type: "int", Bounded: true, Min: 1, Max: 50},
			{Name: "threshold", Type: "float", Bounded: true, Min: 0, Max: 10},
			{Name: "principle_cases", Type: "int", Bounded: true, Min: 0, Max: 10, Help: "how many top cases to mine for principles"},
		},
		run: func(ctx context.Context, p Params) (any, error) {
			return r.runMemo(ctx, p)
		},
	}
}

func (r *Registry) runMemo(ctx context.Context, p Params) (any, error) {
	question := p.str("question", "")

	searchParams := Params{"query": question}
	for _, name := range []string{"court", "max_results", "threshold"} {
		if v, ok := p[name]; ok {
			searchParams[name] = v
		}
	}

	search, err := r.runSearch(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("research search: %w", err)
	}

	warnings := append([]string(nil), search.Warnings...)
	if search.Diagnostics != nil {
		warnings = append(warnings, "no authorities found: "+search.Diagnostics.Reason)
	}

	// Mine the leading cases for principles concurrently; a failed mine
	// costs a caveat, not the memo.
	principleCases := p.integer("principle_cases", 3)
	if principleCases > len(search.Cases) {
		principleCases = len(search.Cases)
	}

	fragments := make([][]model.PrincipleFragment, principleCases)
	mineErrs := make([]error, principleCases)
	var wg sync.WaitGroup
	for i := 0; i < principleCases; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			out, err := r.runPrinciples(ctx, Params{
				"doc_id":        search.Cases[idx].TID,
				"query":         question,
				"max_fragments": 5,
			})
			if err != nil {
				mineErrs[idx] = err
				return
			}
			fragments[idx] = out.Fragments
		}(i)
	}
	wg.Wait()

	var allFragments []model.PrincipleFragment
	for i := 0; i < principleCases; i++ {
		if mineErrs[i] != nil {
			warnings = append(warnings, fmt.Sprintf("principles unavailable for %q: %v", search.Cases[i].Title, mineErrs[i]))
			continue
		}
		allFragments = append(allFragments, fragments[i]...)
	}

	return r.builder.Build(ctx, question, search.Processed, search.Cases, allFragments, search.LowConfidence, warnings), nil
}
