package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TruncateAtSentence shortens text to at most max bytes without cutting
// mid-clause. If the text already fits it is returned whole and marked
// complete. Otherwise the cut lands on the rightmost sentence boundary
// (terminator followed by a capital letter or end of text) at or past the
// floor, falling back to semicolon/colon/paragraph break, and finally a
// hard cut at max. The second return value reports completeness.
func TruncateAtSentence(text string, max int) (string, bool) {
	if max <= 0 || len(text) <= max {
		return text, true
	}

	floor := max / 2

	if cut := lastSentenceEnd(text, floor, max); cut > 0 {
		return strings.TrimSpace(text[:cut]), false
	}

	// No sentence boundary: fall back to weaker break points.
	window := text[floor:max]
	if idx := strings.LastIndex(window, "\n\n"); idx >= 0 {
		return strings.TrimSpace(text[:floor+idx]), false
	}
	if idx := strings.LastIndexAny(window, ";:"); idx >= 0 {
		return strings.TrimSpace(text[:floor+idx+1]), false
	}

	// Hard cut, but never mid-rune.
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut]), false
}

// lastSentenceEnd finds the rightmost index in (floor, max] that ends a
// sentence: '.', '!' or '?' whose next non-space rune is uppercase, an
// opening quote, or absent.
func lastSentenceEnd(text string, floor, max int) int {
	best := -1
	for i := floor; i < max && i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if startsNewSentence(text[i+1:]) {
				best = i + 1
			}
		}
	}
	return best
}

func startsNewSentence(rest string) bool {
	trimmed := strings.TrimLeft(rest, " \t\n")
	if trimmed == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsUpper(r) || r == '"' || r == '“'
}
