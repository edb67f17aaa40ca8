package rank

import "strings"

// CourtTier buckets a court label into the Indian judicial hierarchy.
type CourtTier string

const (
	TierApex       CourtTier = "apex"
	TierHigh       CourtTier = "high_court"
	TierDistrict   CourtTier = "district"
	TierTribunal   CourtTier = "tribunal"
	TierCommission CourtTier = "commission"
	TierOther      CourtTier = "other"
)

// Regional high courts that upstream labels by city or state without the
// words "high court".
var regionalHighCourts = []string{
	"bombay", "madras", "calcutta", "delhi", "allahabad", "karnataka",
	"kerala", "gujarat", "rajasthan", "punjab", "haryana", "patna",
	"orissa", "andhra pradesh", "telangana", "madhya pradesh", "gauhati",
	"jharkhand", "chhattisgarh", "uttarakhand", "himachal", "jammu",
	"sikkim", "manipur", "meghalaya", "tripura",
}

// Multiplier per tier. Unrecognized courts score like trial courts.
var tierMultipliers = map[CourtTier]float64{
	TierApex:       1.5,
	TierHigh:       1.2,
	TierDistrict:   1.0,
	TierTribunal:   0.9,
	TierCommission: 1.0,
	TierOther:      1.0,
}

// ClassifyCourt assigns a hierarchy tier by substring matching against the
// document's court label.
func ClassifyCourt(label string) CourtTier {
	l := strings.ToLower(label)

	switch {
	case strings.Contains(l, "supreme") || strings.Contains(l, "apex"):
		return TierApex
	case strings.Contains(l, "high court") || strings.Contains(l, " hc"):
		return TierHigh
	case strings.Contains(l, "district") || strings.Contains(l, "sessions"):
		return TierDistrict
	case strings.Contains(l, "tribunal") || strings.Contains(l, "appellate"):
		return TierTribunal
	case strings.Contains(l, "commission"):
		return TierCommission
	}

	for _, name := range regionalHighCourts {
		if strings.Contains(l, name) {
			return TierHigh
		}
	}

	return TierOther
}
