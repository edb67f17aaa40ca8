package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lexindia/precedent/internal/model"
)

// conceptVocabulary is the fixed set of recognized legal-concept keywords.
// Multi-word phrases are matched before their substrings would be.
var conceptVocabulary = []string{
	"anticipatory bail",
	"regular bail",
	"bail",
	"quashing",
	"compromise",
	"mens rea",
	"actus reus",
	"common intention",
	"common object",
	"dying declaration",
	"circumstantial evidence",
	"hostile witness",
	"burden of proof",
	"dowry death",
	"cruelty",
	"abetment",
	"conspiracy",
	"self defence",
	"sudden provocation",
	"juvenile",
	"parole",
	"remission",
	"maintenance",
	"custody",
	"acquittal",
	"conviction",
}

// Abbreviations normalized before variant generation.
var abbreviations = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bu/s\.?\s*`), "under Section "},
	{regexp.MustCompile(`(?i)\br/w\.?\s*`), "read with "},
	{regexp.MustCompile(`(?i)\bsec\.\s*`), "Section "},
	{regexp.MustCompile(`(?i)\bhon'ble\b`), "honourable"},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// stopwords excluded from significant-word extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "under": true,
	"case": true, "cases": true, "section": true, "act": true, "law": true,
	"legal": true, "court": true, "judgment": true, "judgement": true,
	"about": true, "related": true, "regarding": true, "what": true,
	"are": true, "can": true, "all": true, "any": true, "from": true,
	"ipc": true, "bns": true, "crpc": true, "bnss": true,
}

// Process turns a free-text legal query into a structured search plan.
// Pure and deterministic: no I/O, no clock, no randomness.
func Process(raw string) *model.ProcessedQuery {
	normalized := Normalize(raw)
	sections := ExtractSections(raw)
	concepts := ExtractConcepts(raw)
	words := significantWords(normalized)

	pq := &model.ProcessedQuery{
		Original:   raw,
		Normalized: normalized,
		Sections:   sections,
		Concepts:   concepts,
		Words:      words,
	}
	pq.Variants = buildVariants(pq)
	return pq
}

// Normalize expands common abbreviations and collapses whitespace.
func Normalize(text string) string {
	out := text
	for _, abbr := range abbreviations {
		out = abbr.pattern.ReplaceAllString(out, abbr.replacement)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(out, " "))
}

// ExtractConcepts finds recognized legal-concept keywords using
// case-insensitive word-boundary matching. Longer phrases shadow the
// shorter phrases they contain ("anticipatory bail" suppresses "bail").
func ExtractConcepts(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	claimed := make([]bool, len(lower))

	for _, concept := range conceptVocabulary {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(concept) + `\b`)
		loc := re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		overlap := false
		for i := loc[0]; i < loc[1]; i++ {
			if claimed[i] {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		for i := loc[0]; i < loc[1]; i++ {
			claimed[i] = true
		}
		found = append(found, concept)
	}
	return found
}

// buildVariants produces the ordered list of search strings. Order matters:
// earlier variants are tried first when the primary search is too thin.
func buildVariants(pq *model.ProcessedQuery) []string {
	var variants []string
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	// 1. Quoted-phrase variant for multi-word queries.
	if strings.Contains(pq.Normalized, " ") {
		add(`"` + pq.Normalized + `"`)
	}

	// 2. Section-focused variant.
	var sectionTerms []string
	for _, ref := range pq.Sections {
		if ref.Valid {
			sectionTerms = append(sectionTerms, SectionQueryTerm(ref))
		}
	}
	if len(sectionTerms) > 0 {
		add(strings.Join(sectionTerms, " "))
	}

	// 3. Concept-combined variant.
	if len(pq.Concepts) > 0 {
		combined := strings.Join(pq.Concepts, " ")
		if len(sectionTerms) > 0 {
			combined = fmt.Sprintf("%s %s", sectionTerms[0], combined)
		}
		add(combined)
	}

	// 4. Normalized text.
	add(pq.Normalized)

	// 5. Boolean-AND join of significant words. IndianKanoon spells the
	// AND operator "ANDD".
	if len(pq.Words) > 1 {
		add(strings.Join(pq.Words, " ANDD "))
	}

	return variants
}

// significantWords extracts the query words that carry meaning for
// match-ratio scoring: lowercased, stopwords and short tokens removed.
func significantWords(text string) []string {
	var words []string
	seen := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, `.,;:"'()?!`)
		if len(w) < 3 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// Alternatives suggests reformulated queries for an empty result set,
// ordered most-specific first.
func Alternatives(pq *model.ProcessedQuery) []string {
	var alts []string
	seen := map[string]bool{pq.Normalized: true}
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			alts = append(alts, v)
		}
	}

	for _, v := range pq.Variants {
		add(v)
	}
	for _, ref := range pq.Sections {
		for _, s := range ref.Suggestions {
			add(fmt.Sprintf("Section %s %s", s, ref.Act))
		}
	}
	for _, concept := range pq.Concepts {
		add(concept)
	}
	if len(pq.Words) > 0 {
		add(strings.Join(pq.Words, " "))
	}
	return alts
}
