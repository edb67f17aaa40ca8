package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lexindia/precedent/internal/classify"
	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/query"
	"github.com/lexindia/precedent/internal/textutil"
)

func (r *Registry) principlesTool() *Tool {
	return &Tool{
		Name:        "extract_legal_principles",
		Description: "Extract classified legal-principle fragments (ratio decidendi, obiter dicta, ...) from a judgment.",
		Fields: []FieldSpec{
			{Name: "doc_id", Type: "int", Required: true, Bounded: true, Min: 1, Max: 1e9},
			{Name: "query", Type: "string", Required: true, Help: "legal issue to probe for"},
			{Name: "max_fragments", Type: "int", Bounded: true, Min: 1, Max: 50},
			{Name: "context_length", Type: "int", Bounded: true, Min: 100, Max: 2000},
		},
		run: func(ctx context.Context, p Params) (any, error) {
			return r.runPrinciples(ctx, p)
		},
	}
}

func (r *Registry) runPrinciples(ctx context.Context, p Params) (*model.PrinciplesOutput, error) {
	id := p.integer("doc_id", 0)
	rawQuery := p.str("query", "")
	maxFragments := p.integer("max_fragments", 10)
	contextLength := p.integer("context_length", 400)

	pq := query.Process(rawQuery)
	out := &model.PrinciplesOutput{DocID: id, Query: rawQuery}

	// One fragment call per probe. Multiple recognized concepts fan out
	// concurrently, each isolated so a single failure costs only its own
	// fragments.
	probes := []string{pq.Normalized}
	if len(pq.Concepts) > 1 {
		probes = pq.Concepts
	}

	markups := make([][]string, len(probes))
	titles := make([]string, len(probes))
	errs := make([]error, len(probes))
	var wg sync.WaitGroup
	for i, probe := range probes {
		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()
			raw, err := r.client.DocumentFragments(ctx, id, q)
			if err != nil {
				errs[idx] = err
				return
			}
			markups[idx] = fragmentMarkup(raw)
			titles[idx] = textutil.Clean(docString(raw, "title"))
		}(i, probe)
	}
	wg.Wait()

	for _, title := range titles {
		if title != "" {
			out.Title = title
			break
		}
	}

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			out.Warnings = append(out.Warnings, fmt.Sprintf("fragment query %q failed: %v", probes[i], err))
		}
	}
	if failed == len(probes) {
		return nil, fmt.Errorf("fetch fragments for document %d: %w", id, errs[0])
	}

	seen := make(map[string]bool)
	ordinal := 0
	for _, group := range markups {
		for _, markup := range group {
			for _, block := range textutil.Blocks(markup) {
				text, _ := textutil.TruncateAtSentence(block.Text, contextLength)
				norm := strings.ToLower(strings.TrimSpace(text))
				if norm == "" || seen[norm] {
					continue
				}
				seen[norm] = true

				result := classify.Classify(block.Text)
				out.Fragments = append(out.Fragments, model.PrincipleFragment{
					DocID:       id,
					Paragraph:   textutil.ParaNumber(block, ordinal),
					Text:        text,
					Context:     contextAround(block.Text, text, contextLength),
					Weight:      result.Weight,
					Confidence:  result.Confidence,
					AlsoMatched: result.AlsoMatched,
				})
				ordinal++
			}
		}
	}

	// Highest-confidence principles first; paragraph order breaks ties.
	sort.SliceStable(out.Fragments, func(i, j int) bool {
		if out.Fragments[i].Confidence != out.Fragments[j].Confidence {
			return out.Fragments[i].Confidence > out.Fragments[j].Confidence
		}
		return out.Fragments[i].Paragraph < out.Fragments[j].Paragraph
	})
	if len(out.Fragments) > maxFragments {
		out.Fragments = out.Fragments[:maxFragments]
	}

	if len(out.Fragments) == 0 {
		out.Warnings = append(out.Warnings, "no fragments matched the query in this document")
	}

	return out, nil
}

// fragmentMarkup pulls the fragment HTML strings out of the upstream
// response, which reports them under "fragments" or, for older responses,
// a single "headline".
func fragmentMarkup(raw map[string]any) []string {
	var markup []string
	if list, ok := raw["fragments"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				markup = append(markup, s)
			}
		}
	}
	if len(markup) == 0 {
		if s := docString(raw, "headline"); strings.TrimSpace(s) != "" {
			markup = append(markup, s)
		}
	}
	return markup
}

// contextAround returns the text surrounding an excerpt when the excerpt
// was cut out of a longer block; empty when the excerpt is the whole block.
func contextAround(full, excerpt string, contextLength int) string {
	idx := strings.Index(full, excerpt)
	if idx < 0 || idx+len(excerpt) >= len(full) {
		return ""
	}
	rest := strings.TrimSpace(full[idx+len(excerpt):])
	if rest == "" {
		return ""
	}
	ctx, _ := textutil.TruncateAtSentence(rest, contextLength)
	return ctx
}
