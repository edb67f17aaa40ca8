package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lexindia/precedent/internal/model"
)

// Known numeric ranges per statute code.
var actRanges = map[string]int{
	"IPC":  511, // Indian Penal Code, 1860
	"BNS":  358, // Bharatiya Nyaya Sanhita, 2023
	"CrPC": 484, // Code of Criminal Procedure, 1973
	"BNSS": 531, // Bharatiya Nagarik Suraksha Sanhita, 2023
}

// Commonly confused section numbers seen in real queries: a typed number
// that does not exist mapped to the sections users usually meant.
var confusedSections = map[string][]string{
	"823": {"323", "324"},
	"834": {"324", "334"},
	"938": {"398", "438"},
	"825": {"325"},
	"999": {"399"},
	"513": {"511", "153"},
}

// Ordered surface patterns for section references. Each captures the
// section number in group 1 and optionally the act in group 2.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsections?\s+(\d{1,3}[A-Za-z]?)\s*(?:of\s+(?:the\s+)?)?(IPC|BNS|CrPC|BNSS)?\b`),
	regexp.MustCompile(`(?i)\bu/s\.?\s*(\d{1,3}[A-Za-z]?)\s*(IPC|BNS|CrPC|BNSS)?\b`),
	regexp.MustCompile(`(?i)\bsec\.?\s+(\d{1,3}[A-Za-z]?)\s*(IPC|BNS|CrPC|BNSS)?\b`),
	regexp.MustCompile(`(?i)\bs\.\s*(\d{1,3}[A-Za-z]?)\s*(IPC|BNS|CrPC|BNSS)?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3}[A-Za-z]?)\s+(IPC|BNS|CrPC|BNSS)\b`),
}

// canonicalAct normalizes the act token captured by a pattern. An empty
// token defaults to IPC, by far the most common code in free-text queries.
func canonicalAct(tok string) string {
	switch strings.ToUpper(tok) {
	case "BNS":
		return "BNS"
	case "CRPC":
		return "CrPC"
	case "BNSS":
		return "BNSS"
	case "", "IPC":
		return "IPC"
	}
	return "IPC"
}

// ExtractSections pulls statute section references out of free text,
// deduplicating overlapping matches, and validates each against its act's
// numeric range.
func ExtractSections(text string) []model.SectionRef {
	seen := make(map[string]bool)
	var refs []model.SectionRef

	for _, pattern := range sectionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			number := strings.ToUpper(m[1])
			act := "IPC"
			if len(m) > 2 {
				act = canonicalAct(m[2])
			}

			key := act + ":" + number
			if seen[key] {
				continue
			}
			seen[key] = true

			ref := model.SectionRef{Number: number, Act: act}
			ref.Valid = sectionInRange(number, act)
			if !ref.Valid {
				ref.Suggestions = suggestCorrections(number, act)
			}
			refs = append(refs, ref)
		}
	}

	return refs
}

// sectionInRange validates the numeric part of a section against the act's
// range. Letter suffixes (498A) count as their base number.
func sectionInRange(number, act string) bool {
	limit, ok := actRanges[act]
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimRight(number, "ABCDEFabcdef"))
	if err != nil {
		return false
	}
	return n >= 1 && n <= limit
}

// suggestCorrections builds a best-effort correction list for an
// out-of-range section: the known-confusion table first, then a
// leading-digit strip, then nearby in-range integers.
func suggestCorrections(number, act string) []string {
	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] && sectionInRange(s, act) {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, s := range confusedSections[number] {
		add(s)
	}

	// A stray leading digit is a frequent typo: 8302 -> 302.
	if len(number) > 1 {
		add(number[1:])
	}

	// Nearby integers within a small window.
	if n, err := strconv.Atoi(strings.TrimRight(number, "ABCDEFabcdef")); err == nil {
		for offset := -2; offset <= 2; offset++ {
			if offset == 0 {
				continue
			}
			add(strconv.Itoa(n + offset))
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

// SectionQueryTerm renders a section reference the way IndianKanoon indexes
// it, e.g. "Section 302 IPC".
func SectionQueryTerm(ref model.SectionRef) string {
	return fmt.Sprintf("Section %s %s", ref.Number, ref.Act)
}
