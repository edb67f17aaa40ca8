package tools

import (
	"context"
	"fmt"

	"github.com/lexindia/precedent/internal/kanoon"
	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/textutil"
)

func (r *Registry) documentTool() *Tool {
	return &Tool{
		Name:        "get_case_document",
		Description: "Fetch a judgment by document id, stripped to plain text and truncated at a sentence boundary.",
		Fields: []FieldSpec{
			{Name: "doc_id", Type: "int", Required: true, Bounded: true, Min: 1, Max: 1e9},
			{Name: "max_length", Type: "int", Bounded: true, Min: 500, Max: 200000, Help: "maximum body length in bytes"},
			{Name: "max_cites", Type: "int", Bounded: true, Min: 0, Max: 100},
			{Name: "max_cited_by", Type: "int", Bounded: true, Min: 0, Max: 100},
			{Name: "include_metadata", Type: "bool"},
		},
		run: func(ctx context.Context, p Params) (any, error) {
			return r.runDocument(ctx, p)
		},
	}
}

func (r *Registry) runDocument(ctx context.Context, p Params) (*model.CaseDocument, error) {
	id := p.integer("doc_id", 0)
	maxLength := p.integer("max_length", 20000)

	raw, err := r.client.Document(ctx, id, kanoon.CiteLimits{
		MaxCites:   p.integer("max_cites", 10),
		MaxCitedBy: p.integer("max_cited_by", 10),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch document %d: %w", id, err)
	}

	text, complete := textutil.TruncateAtSentence(textutil.StripHTML(docString(raw, "doc")), maxLength)

	doc := &model.CaseDocument{
		TID:        id,
		Title:      textutil.Clean(docString(raw, "title")),
		Court:      docString(raw, "docsource"),
		Date:       docString(raw, "publishdate"),
		Citation:   docString(raw, "citation"),
		Text:       text,
		Complete:   complete,
		NumCites:   docInt(raw, "numcites"),
		NumCitedBy: docInt(raw, "numcitedby"),
	}

	if p.boolean("include_metadata", false) {
		meta, err := r.client.DocumentMetadata(ctx, id)
		if err != nil {
			// Metadata is supplementary; its failure degrades silently to
			// the document we already have.
			return doc, nil
		}
		doc.Metadata = make(map[string]any, len(meta))
		for k, v := range meta {
			if k == "doc" { // never duplicate the body
				continue
			}
			doc.Metadata[k] = v
		}
	}

	return doc, nil
}

func docString(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func docInt(obj map[string]any, key string) int {
	if n, ok := toFloat(obj[key]); ok {
		return int(n)
	}
	return 0
}
