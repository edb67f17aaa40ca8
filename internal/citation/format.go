// Package citation formats and validates Indian case citations in the four
// styles legal practitioners expect: SCC, AIR, neutral, and the
// IndianKanoon online reporter.
package citation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lexindia/precedent/internal/model"
)

var digitsRe = regexp.MustCompile(`\d+`)

// neutralCodes maps court abbreviations to their neutral-citation codes.
var neutralCodes = map[string]string{
	"SC":  "INSC",
	"DEL": "DHC",
	"BOM": "BHC",
	"CAL": "CHC",
	"MAD": "MHC",
}

// Format builds every citation variant for one style. Well-formed inputs
// produce strings that pass Validate for the same style.
func Format(el model.CitationElements, style model.CitationStyle) model.FormattedCitation {
	parties := partiesString(el)
	reference := referenceString(el, style)

	fc := model.FormattedCitation{
		Style:        style,
		Full:         fmt.Sprintf("%s, %s", parties, reference),
		Short:        fmt.Sprintf("%s (supra)", shortParty(el.PartyA)),
		InText:       fmt.Sprintf("%s (%s)", parties, reference),
		Footnote:     fmt.Sprintf("%s, %s.", parties, reference),
		Bibliography: fmt.Sprintf("%s, %s (%d).", parties, reference, el.Year),
	}

	if el.Paragraph > 0 {
		fc.Pinpoint = fmt.Sprintf("%s, %s, para %d", parties, reference, el.Paragraph)
	}

	return fc
}

// FormatAll builds citations in every supported style.
func FormatAll(el model.CitationElements) []model.FormattedCitation {
	out := make([]model.FormattedCitation, 0, len(model.CitationStyles))
	for _, style := range model.CitationStyles {
		out = append(out, Format(el, style))
	}
	return out
}

func partiesString(el model.CitationElements) string {
	a := strings.TrimSpace(el.PartyA)
	b := strings.TrimSpace(el.PartyB)
	if a == "" {
		a = "Unknown"
	}
	if b == "" {
		b = "Unknown"
	}
	return fmt.Sprintf("%s v. %s", a, b)
}

// referenceString renders the style-specific report reference.
func referenceString(el model.CitationElements, style model.CitationStyle) string {
	switch style {
	case model.StyleSCC:
		return fmt.Sprintf("(%d) %d SCC %d", el.Year, el.Volume, el.Page)
	case model.StyleAIR:
		return fmt.Sprintf("AIR %d %s %d", el.Year, courtAbbrev(el.Court), el.Page)
	case model.StyleNeutral:
		return fmt.Sprintf("%d %s %s", el.Year, neutralCode(el.Court), caseSerial(el))
	case model.StyleIndianKanoon:
		return fmt.Sprintf("indiankanoon.org/doc/%d/", el.DocID)
	}
	return fmt.Sprintf("(%d) %d SCC %d", el.Year, el.Volume, el.Page)
}

func shortParty(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Unknown"
	}
	// "State of Maharashtra" shortens to "State"; individuals keep their
	// first name only.
	fields := strings.Fields(name)
	return fields[0]
}

func courtAbbrev(court string) string {
	c := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(court), ".", ""))
	c = strings.ReplaceAll(c, " ", "")
	if c == "" {
		return "SC"
	}
	return c
}

func neutralCode(court string) string {
	abbrev := courtAbbrev(court)
	if code, ok := neutralCodes[abbrev]; ok {
		return code
	}
	return abbrev
}

// caseSerial extracts the numeric serial for the neutral style: the digits
// of the case number, falling back to the report page.
func caseSerial(el model.CitationElements) string {
	if m := digitsRe.FindString(el.CaseNumber); m != "" {
		return m
	}
	return fmt.Sprintf("%d", el.Page)
}
