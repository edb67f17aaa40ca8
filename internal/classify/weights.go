// Package classify labels judgment fragments with their jurisprudential
// weight using an ordered table of surface markers. The classifier is
// rule-based: determinism and the priority order are the contract.
package classify

import (
	"regexp"

	"github.com/lexindia/precedent/internal/model"
)

// category pairs a weight label with its surface markers and a base
// confidence. Categories are evaluated in declaration order and the first
// match wins; later matches are still recorded on the fragment.
type category struct {
	weight   model.LegalWeight
	base     float64
	patterns []*regexp.Regexp
}

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return res
}

// categories in strict priority order. Do not reorder: the resolution of
// multi-category fragments depends on it.
var categories = []category{
	{
		weight: model.WeightRatioDecidendi,
		base:   0.9,
		patterns: compile(
			`\bwe hold that\b`,
			`\bit is held that\b`,
			`\bit is settled law\b`,
			`\bit is well settled\b`,
			`\bthe law laid down\b`,
			`\bwe are of the considered (?:view|opinion)\b`,
			`\bthe principle (?:of law )?that emerges\b`,
			`\bthe ratio\b`,
		),
	},
	{
		weight: model.WeightOverruling,
		base:   0.85,
		patterns: compile(
			`\boverruled?\b`,
			`\bper incuriam\b`,
			`\bno longer good law\b`,
			`\bcannot be sustained\b`,
			`\bstands? overruled\b`,
		),
	},
	{
		weight: model.WeightStatutoryInterp,
		base:   0.8,
		patterns: compile(
			`\bplain meaning\b`,
			`\bliteral (?:construction|interpretation)\b`,
			`\bharmonious construction\b`,
			`\blegislative intent\b`,
			`\bpurposive (?:construction|interpretation)\b`,
			`\bmischief rule\b`,
			`\bon a (?:true|proper) construction\b`,
		),
	},
	{
		weight: model.WeightEvidenceAnalysis,
		base:   0.75,
		patterns: compile(
			`\bevidence on record\b`,
			`\bappreciation of (?:the )?evidence\b`,
			`\btestimony of\b`,
			`\bprosecution has (?:proved|established)\b`,
			`\bbenefit of (?:the )?doubt\b`,
			`\bbeyond reasonable doubt\b`,
		),
	},
	{
		weight: model.WeightFollowingPrecedent,
		base:   0.75,
		patterns: compile(
			`\bfollowing the (?:decision|judgment|dictum)\b`,
			`\bas held (?:by|in)\b`,
			`\brelying (?:up)?on\b`,
			`\bin view of the (?:law|judgment|decision)\b`,
			`\bapplying the (?:ratio|principle)\b`,
		),
	},
	{
		weight: model.WeightDistinguishing,
		base:   0.7,
		patterns: compile(
			`\bdistinguishable\b`,
			`\bdistinguished\b`,
			`\bfacts of the present case are different\b`,
			`\bhas no application to\b`,
			`\bnot applicable to the facts\b`,
		),
	},
	{
		weight: model.WeightProcedural,
		base:   0.65,
		patterns: compile(
			`\bwe direct\b`,
			`\bis directed to\b`,
			`\bremanded?\b`,
			`\bissue notice\b`,
			`\blisted? (?:for|on)\b`,
			`\bdisposed of\b`,
		),
	},
	{
		weight: model.WeightConcession,
		base:   0.6,
		patterns: compile(
			`\bfairly conceded\b`,
			`\bconceded (?:by|that)\b`,
			`\badmitted (?:by|that|position)\b`,
			`\bnot (?:in )?disputed?\b`,
		),
	},
	{
		weight: model.WeightDisagreement,
		base:   0.6,
		patterns: compile(
			`\bwith (?:great |due )?respect\b`,
			`\bunable to agree\b`,
			`\bdissent(?:ing)?\b`,
			`\bcontrary view\b`,
			`\brespectfully disagree\b`,
		),
	},
	{
		weight: model.WeightObiterDicta,
		base:   0.5,
		patterns: compile(
			`\bin passing\b`,
			`\bit may be noted\b`,
			`\bincidentally\b`,
			`\bwe may (?:observe|add)\b`,
			`\bobiter\b`,
		),
	},
}

// Result is the outcome of classifying one fragment.
type Result struct {
	Weight      model.LegalWeight
	Confidence  float64
	AlsoMatched []model.LegalWeight
}

// Classify tests a fragment against every category. The final label is the
// highest-priority match; confidence starts at that category's base and
// rises slightly with additional matches within it, capped at 1.0. A
// fragment matching nothing is a supporting observation.
func Classify(text string) Result {
	var winner *category
	var winnerMatches int
	var also []model.LegalWeight

	for i := range categories {
		cat := &categories[i]
		matches := 0
		for _, re := range cat.patterns {
			if re.MatchString(text) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		if winner == nil {
			winner = cat
			winnerMatches = matches
		} else {
			also = append(also, cat.weight)
		}
	}

	if winner == nil {
		return Result{Weight: model.WeightObservation, Confidence: 0.4}
	}

	confidence := winner.base + 0.05*float64(winnerMatches-1)
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Result{
		Weight:      winner.weight,
		Confidence:  confidence,
		AlsoMatched: also,
	}
}
