package textutil

import (
	"regexp"
	"strconv"
)

// Ordered textual strategies for paragraph numbers. Structural ids are
// tried before any of these.
var (
	structuralIDRe = regexp.MustCompile(`(?:^|_)p(?:ara)?[_-]?(\d+)$`)
	paraMarkerRe   = regexp.MustCompile(`(?i)\bpara(?:graph)?\.?\s*(\d+)\b`)
	pilcrowRe      = regexp.MustCompile(`¶\s*(\d+)`)
	bracketRe      = regexp.MustCompile(`^\s*\[(\d+)\]`)
	leadingNumRe   = regexp.MustCompile(`^\s*(\d+)\.\s`)
)

// ParaNumber resolves the paragraph number for a block: first the
// structural id carried over from the markup, then explicit textual
// markers, then a leading "N." pattern, finally the block's ordinal
// position (1-based) in its source list.
func ParaNumber(block Block, ordinal int) int {
	if block.ID != "" {
		if m := structuralIDRe.FindStringSubmatch(block.ID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}

	for _, re := range []*regexp.Regexp{paraMarkerRe, pilcrowRe, bracketRe} {
		if m := re.FindStringSubmatch(block.Text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}

	if m := leadingNumRe.FindStringSubmatch(block.Text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	return ordinal + 1
}
