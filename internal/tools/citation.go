package tools

import (
	"context"
	"fmt"

	"github.com/lexindia/precedent/internal/citation"
	"github.com/lexindia/precedent/internal/model"
)

func styleNames() []string {
	styles := make([]string, 0, len(model.CitationStyles))
	for _, s := range model.CitationStyles {
		styles = append(styles, string(s))
	}
	return styles
}

func styleEnum() []string {
	return append(styleNames(), "all")
}

func (r *Registry) formatCitationTool() *Tool {
	return &Tool{
		Name:        "format_citation",
		Description: "Build style-specific citation strings (full, short, in-text, footnote, bibliography) for a case.",
		Fields: []FieldSpec{
			{Name: "title", Type: "string", Help: "case title; split on the versus marker when party names are not given"},
			{Name: "party_a", Type: "string"},
			{Name: "party_b", Type: "string"},
			{Name: "court", Type: "string", Help: "court abbreviation, e.g. SC, Bom"},
			{Name: "year", Type: "int", Required: true, Bounded: true, Min: 1800, Max: 2100},
			{Name: "volume", Type: "int", Bounded: true, Min: 0, Max: 50},
			{Name: "page", Type: "int", Bounded: true, Min: 0, Max: 100000},
			{Name: "case_number", Type: "string"},
			{Name: "doc_id", Type: "int", Bounded: true, Min: 0, Max: 1e9},
			{Name: "paragraph", Type: "int", Bounded: true, Min: 0, Max: 10000, Help: "pinpoint paragraph"},
			{Name: "style", Type: "string", Enum: styleEnum()},
		},
		run: func(ctx context.Context, p Params) (any, error) {
			return r.runFormatCitation(p)
		},
	}
}

func (r *Registry) runFormatCitation(p Params) (any, error) {
	el := model.CitationElements{
		PartyA:     p.str("party_a", ""),
		PartyB:     p.str("party_b", ""),
		Court:      p.str("court", "SC"),
		Year:       p.integer("year", 0),
		Volume:     p.integer("volume", 0),
		Page:       p.integer("page", 0),
		CaseNumber: p.str("case_number", ""),
		DocID:      p.integer("doc_id", 0),
		Paragraph:  p.integer("paragraph", 0),
	}

	if el.PartyA == "" {
		title := p.str("title", "")
		if title == "" {
			return nil, fmt.Errorf("either title or party_a/party_b is required")
		}
		el.PartyA, el.PartyB = citation.SplitParties(title)
	}

	style := p.str("style", r.cfg.Search.DefaultStyle)
	if style == "all" {
		return citation.FormatAll(el), nil
	}
	return citation.Format(el, model.CitationStyle(style)), nil
}

func (r *Registry) validateCitationTool() *Tool {
	return &Tool{
		Name:        "validate_citation",
		Description: "Validate a citation string against a style's pattern, suggesting corrections for known typos.",
		Fields: []FieldSpec{
			{Name: "citation", Type: "string", Required: true},
			{Name: "style", Type: "string", Required: true, Enum: styleNames()},
		},
		run: func(ctx context.Context, p Params) (any, error) {
			c := p.str("citation", "")
			style := model.CitationStyle(p.str("style", ""))
			return citation.Validate(c, style), nil
		},
	}
}
