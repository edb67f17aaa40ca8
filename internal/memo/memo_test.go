package memo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/query"
)

type stubProvider struct {
	summary string
	err     error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Summarize(ctx context.Context, memoMarkdown string, maxTokens int) (string, error) {
	return s.summary, s.err
}

func sampleCases() []model.ScoredCase {
	return []model.ScoredCase{
		{
			SearchResult: model.SearchResult{
				TID:         257876,
				Title:       "Kesavananda Bharati v. State of Kerala on 24 April, 1973",
				PublishDate: "1973-04-24",
				Headline:    "basic structure doctrine",
			},
			Score: 3.1,
		},
	}
}

func sampleFragments() []model.PrincipleFragment {
	return []model.PrincipleFragment{
		{DocID: 257876, Paragraph: 316, Text: "Parliament cannot alter the basic structure.",
			Weight: model.WeightRatioDecidendi, Confidence: 0.9},
		{DocID: 257876, Paragraph: 402, Text: "It may be noted that the preamble guides interpretation.",
			Weight: model.WeightObiterDicta, Confidence: 0.5},
	}
}

func TestBuild_Sections(t *testing.T) {
	pq := query.Process("basic structure Article 368 amendment Section 368 IPC")
	b := NewBuilder(model.StyleSCC, nil, 0)

	m := b.Build(context.Background(), "Can Parliament amend the basic structure?",
		pq, sampleCases(), sampleFragments(), false, nil)

	for _, heading := range []string{"# Research Memo", "**Question:**", "## Leading Authorities", "## Extracted Principles"} {
		if !strings.Contains(m.Markdown, heading) {
			t.Errorf("Memo missing %q", heading)
		}
	}
	if !strings.Contains(m.Markdown, "indiankanoon.org/doc/257876/") {
		t.Error("Authority missing its document citation")
	}
	if !strings.Contains(m.Markdown, "### Ratio Decidendi") {
		t.Error("Principles not grouped under their weight heading")
	}
	if m.Summary != "" {
		t.Errorf("Summary without a provider: %q", m.Summary)
	}
}

func TestBuild_LowConfidenceNote(t *testing.T) {
	b := NewBuilder(model.StyleSCC, nil, 0)
	m := b.Build(context.Background(), "q", nil, sampleCases(), nil, true, nil)
	if !strings.Contains(m.Markdown, "Confidence is low") {
		t.Error("Low-confidence note missing")
	}
}

func TestBuild_NoAuthorities(t *testing.T) {
	b := NewBuilder(model.StyleSCC, nil, 0)
	m := b.Build(context.Background(), "q", nil, nil, nil, false, []string{"no authorities found: no_documents_matched"})
	if !strings.Contains(m.Markdown, "No authorities were located") {
		t.Error("Empty-authorities note missing")
	}
	if !strings.Contains(m.Markdown, "## Caveats") {
		t.Error("Warnings not rendered as caveats")
	}
}

func TestBuild_ProviderSummary(t *testing.T) {
	b := NewBuilder(model.StyleSCC, &stubProvider{summary: "Executive summary."}, 0)
	m := b.Build(context.Background(), "q", nil, sampleCases(), nil, false, nil)
	if m.Summary != "Executive summary." {
		t.Errorf("Summary = %q", m.Summary)
	}
}

func TestBuild_ProviderFailureBecomesWarning(t *testing.T) {
	b := NewBuilder(model.StyleSCC, &stubProvider{err: errors.New("quota exhausted")}, 0)
	m := b.Build(context.Background(), "q", nil, sampleCases(), nil, false, nil)
	if m.Summary != "" {
		t.Errorf("Unexpected summary %q", m.Summary)
	}
	found := false
	for _, w := range m.Warnings {
		if strings.Contains(w, "llm summary failed") {
			found = true
		}
	}
	if !found {
		t.Errorf("Provider failure not surfaced as a warning: %v", m.Warnings)
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(model.LLMConfig{}); p != nil || err != nil {
		t.Errorf("Empty provider should disable summarization, got %v, %v", p, err)
	}
	if _, err := NewProvider(model.LLMConfig{Provider: "openai"}); err == nil {
		t.Error("openai provider without a key must fail")
	}
	if _, err := NewProvider(model.LLMConfig{Provider: "claude"}); err == nil {
		t.Error("Unknown provider must fail")
	}
	p, err := NewProvider(model.LLMConfig{Provider: "openai", APIKey: "k"})
	if err != nil || p == nil {
		t.Fatalf("Expected a provider, got %v, %v", p, err)
	}
	if p.Name() != "openai" {
		t.Errorf("Name = %q", p.Name())
	}
}
