package citation

import (
	"regexp"
	"strings"

	"github.com/lexindia/precedent/internal/model"
)

// Per-style citation patterns. Keep in sync with referenceString: a
// formatted citation must validate against its own style.
var stylePatterns = map[model.CitationStyle]*regexp.Regexp{
	model.StyleSCC:          regexp.MustCompile(`^.+\sv\.\s.+,\s\(\d{4}\)\s\d+\sSCC\s\d+$`),
	model.StyleAIR:          regexp.MustCompile(`^.+\sv\.\s.+,\sAIR\s\d{4}\s[A-Z]+\s\d+$`),
	model.StyleNeutral:      regexp.MustCompile(`^.+\sv\.\s.+,\s\d{4}\s[A-Z]+\s\d+$`),
	model.StyleIndianKanoon: regexp.MustCompile(`^.+\sv\.\s.+,\s(?:https?://)?(?:www\.)?indiankanoon\.org/doc/\d+/?$`),
}

// Known abbreviation typos and their corrections, applied when a citation
// fails its style pattern.
var typoCorrections = []struct {
	wrong *regexp.Regexp
	right string
}{
	{regexp.MustCompile(`\bSCCC\b`), "SCC"},
	{regexp.MustCompile(`\bSSC\b`), "SCC"},
	{regexp.MustCompile(`\bAIRR\b`), "AIR"},
	{regexp.MustCompile(`\bAER\b`), "AIR"},
	{regexp.MustCompile(`\bINSCC\b`), "INSC"},
	{regexp.MustCompile(`(?i)\bvs\.?\s`), "v. "},
	{regexp.MustCompile(`(?i)\bversus\s`), "v. "},
}

// Validate checks a citation string against its style's pattern. On
// failure it applies the typo table and, if the corrected string passes,
// reports it as a suggestion. Invalid citations are reportable outcomes,
// never errors.
func Validate(citation string, style model.CitationStyle) model.ValidationReport {
	report := model.ValidationReport{
		Citation: citation,
		Style:    style,
	}

	pattern, ok := stylePatterns[style]
	if !ok {
		report.Problems = append(report.Problems, "unknown citation style")
		return report
	}

	trimmed := strings.TrimSpace(citation)
	if pattern.MatchString(trimmed) {
		report.Valid = true
		return report
	}

	report.Problems = append(report.Problems, "citation does not match the "+strings.ToUpper(string(style))+" pattern")

	corrected := trimmed
	for _, fix := range typoCorrections {
		corrected = fix.wrong.ReplaceAllString(corrected, fix.right)
	}
	if corrected != trimmed && pattern.MatchString(corrected) {
		report.Suggestion = corrected
		report.Problems = append(report.Problems, "a known abbreviation typo was detected")
	}

	return report
}
