// Package memo renders research memos from ranked cases and classified
// principles. The memo is deterministic markdown; an optional LLM summary
// can be appended but never replaces or reorders the deterministic content.
package memo

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexindia/precedent/internal/citation"
	"github.com/lexindia/precedent/internal/model"
)

// Memo is the payload of the build_research_memo tool.
type Memo struct {
	Question string   `json:"question"`
	Markdown string   `json:"markdown"`
	Summary  string   `json:"llm_summary,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Builder assembles research memos.
type Builder struct {
	style     model.CitationStyle
	provider  Provider
	maxTokens int
}

// NewBuilder creates a memo builder. provider may be nil.
func NewBuilder(style model.CitationStyle, provider Provider, maxTokens int) *Builder {
	return &Builder{style: style, provider: provider, maxTokens: maxTokens}
}

// Build renders the memo. Sub-result gaps (failed searches, missing
// principles) arrive as warnings and are noted in the memo rather than
// failing it.
func (b *Builder) Build(ctx context.Context, question string, pq *model.ProcessedQuery, cases []model.ScoredCase, fragments []model.PrincipleFragment, lowConfidence bool, warnings []string) *Memo {
	var md strings.Builder

	md.WriteString("# Research Memo\n\n")
	md.WriteString("**Question:** " + question + "\n\n")

	if lowConfidence {
		md.WriteString("> Confidence is low: no authority cleared the relevance threshold; " +
			"the closest available matches are listed below.\n\n")
	}

	b.writeFramework(&md, pq)
	b.writeAuthorities(&md, cases)
	b.writePrinciples(&md, fragments)

	if len(warnings) > 0 {
		md.WriteString("## Caveats\n\n")
		for _, w := range warnings {
			md.WriteString("- " + w + "\n")
		}
		md.WriteString("\n")
	}

	m := &Memo{
		Question: question,
		Markdown: md.String(),
		Warnings: warnings,
	}

	if b.provider != nil {
		summary, err := b.provider.Summarize(ctx, m.Markdown, b.maxTokens)
		if err != nil {
			m.Warnings = append(m.Warnings, fmt.Sprintf("llm summary failed: %v", err))
		} else {
			m.Summary = summary
		}
	}

	return m
}

func (b *Builder) writeFramework(md *strings.Builder, pq *model.ProcessedQuery) {
	if pq == nil || (len(pq.Sections) == 0 && len(pq.Concepts) == 0) {
		return
	}

	md.WriteString("## Statutory Framework\n\n")
	for _, ref := range pq.Sections {
		if ref.Valid {
			md.WriteString(fmt.Sprintf("- Section %s, %s\n", ref.Number, ref.Act))
		} else {
			line := fmt.Sprintf("- Section %s, %s: not a recognized section", ref.Number, ref.Act)
			if len(ref.Suggestions) > 0 {
				line += " (did you mean " + strings.Join(ref.Suggestions, ", ") + "?)"
			}
			md.WriteString(line + "\n")
		}
	}
	if len(pq.Concepts) > 0 {
		md.WriteString("\n**Concepts:** " + strings.Join(pq.Concepts, ", ") + "\n")
	}
	md.WriteString("\n")
}

func (b *Builder) writeAuthorities(md *strings.Builder, cases []model.ScoredCase) {
	md.WriteString("## Leading Authorities\n\n")
	if len(cases) == 0 {
		md.WriteString("No authorities were located for this question.\n\n")
		return
	}

	for i, c := range cases {
		partyA, partyB := citation.SplitParties(c.Title)
		year, _ := titleYear(c.PublishDate)
		formatted := citation.Format(model.CitationElements{
			PartyA: partyA,
			PartyB: partyB,
			Year:   year,
			DocID:  c.TID,
		}, model.StyleIndianKanoon)

		md.WriteString(fmt.Sprintf("%d. **%s**, %s", i+1, c.Title, formatted.Full))
		if c.BelowThreshold {
			md.WriteString(" _(below relevance threshold)_")
		}
		md.WriteString("\n")
		if c.Headline != "" {
			md.WriteString("   " + strings.TrimSpace(c.Headline) + "\n")
		}
	}
	md.WriteString("\n")
}

func (b *Builder) writePrinciples(md *strings.Builder, fragments []model.PrincipleFragment) {
	if len(fragments) == 0 {
		return
	}

	md.WriteString("## Extracted Principles\n\n")

	grouped := make(map[model.LegalWeight][]model.PrincipleFragment)
	var order []model.LegalWeight
	for _, f := range fragments {
		if _, ok := grouped[f.Weight]; !ok {
			order = append(order, f.Weight)
		}
		grouped[f.Weight] = append(grouped[f.Weight], f)
	}

	for _, weight := range order {
		md.WriteString("### " + weightHeading(weight) + "\n\n")
		for _, f := range grouped[weight] {
			md.WriteString(fmt.Sprintf("- (doc %d, para %d, confidence %.2f) %s\n", f.DocID, f.Paragraph, f.Confidence, f.Text))
		}
		md.WriteString("\n")
	}
}

func weightHeading(w model.LegalWeight) string {
	words := strings.Split(string(w), "_")
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func titleYear(date string) (int, bool) {
	if len(date) >= 4 {
		var year int
		if _, err := fmt.Sscanf(date[:4], "%d", &year); err == nil {
			return year, true
		}
	}
	return 0, false
}
