package citation

import (
	"regexp"
	"strings"
)

// versusRe matches the party separator in case titles, accepting the
// common abbreviations and spellings.
var versusRe = regexp.MustCompile(`(?i)\s+(?:vs?\.?|v/s\.?|versus)\s+`)

// trailingNoiseRe strips the "on 12 January, 2019" suffix IndianKanoon
// appends to titles.
var trailingNoiseRe = regexp.MustCompile(`(?i)\s+on\s+\d{1,2}\s+\w+,?\s+\d{4}\s*$`)

// SplitParties splits a case title into the two party names. The second
// name is empty when no versus marker is found.
func SplitParties(title string) (string, string) {
	title = strings.TrimSpace(trailingNoiseRe.ReplaceAllString(title, ""))

	parts := versusRe.Split(title, 2)
	if len(parts) < 2 {
		return title, ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
