package classify

import (
	"math"
	"testing"

	"github.com/lexindia/precedent/internal/model"
)

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.LegalWeight
	}{
		{"ratio", "We hold that the right to privacy is a fundamental right.", model.WeightRatioDecidendi},
		{"settled law", "It is well settled that bail is the rule and jail the exception.", model.WeightRatioDecidendi},
		{"overruling", "The decision in ADM Jabalpur stands overruled.", model.WeightOverruling},
		{"per incuriam", "The judgment was rendered per incuriam.", model.WeightOverruling},
		{"statutory", "Applying the principle of harmonious construction to the two provisos.", model.WeightStatutoryInterp},
		{"legislative intent", "The legislative intent behind the amendment is plain.", model.WeightStatutoryInterp},
		{"evidence", "The testimony of PW-3 inspires confidence.", model.WeightEvidenceAnalysis},
		{"benefit of doubt", "The accused is entitled to the benefit of doubt.", model.WeightEvidenceAnalysis},
		{"following", "Relying upon the dictum in Maneka Gandhi, the petition is allowed.", model.WeightFollowingPrecedent},
		{"distinguishing", "That decision is clearly distinguishable on facts.", model.WeightDistinguishing},
		{"procedural", "The matter is remanded to the trial court.", model.WeightProcedural},
		{"concession", "Learned counsel fairly conceded the point.", model.WeightConcession},
		{"disagreement", "We are unable to agree with the view taken by the High Court.", model.WeightDisagreement},
		{"obiter", "We may observe, in passing, that the question remains open.", model.WeightObiterDicta},
		{"default", "The appeal was filed on 3 March 2019.", model.WeightObservation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Weight != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got.Weight, tt.want)
			}
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Ratio markers outrank every other category in the same fragment.
	text := "We hold that the earlier decision is distinguishable and the matter is remanded."
	got := Classify(text)
	if got.Weight != model.WeightRatioDecidendi {
		t.Fatalf("Expected ratio decidendi to win, got %s", got.Weight)
	}

	found := map[model.LegalWeight]bool{}
	for _, w := range got.AlsoMatched {
		found[w] = true
	}
	if !found[model.WeightDistinguishing] {
		t.Error("Expected distinguishing in AlsoMatched")
	}
	if !found[model.WeightProcedural] {
		t.Error("Expected procedural in AlsoMatched")
	}
}

func TestClassify_ConfidenceRisesWithExtraMatches(t *testing.T) {
	single := Classify("We hold that the statute is valid.")
	double := Classify("We hold that, as it is well settled, the statute is valid.")

	if !almost(single.Confidence, 0.9) {
		t.Errorf("Expected base confidence 0.9, got %v", single.Confidence)
	}
	if !almost(double.Confidence, 0.95) {
		t.Errorf("Expected boosted confidence 0.95, got %v", double.Confidence)
	}
}

func TestClassify_ConfidenceCapped(t *testing.T) {
	text := "We hold that it is held that it is settled law and it is well settled; " +
		"the law laid down is the ratio, and we are of the considered view that " +
		"the principle that emerges is clear."
	got := Classify(text)
	if got.Confidence > 1.0 {
		t.Errorf("Confidence exceeded cap: %v", got.Confidence)
	}
}

func TestClassify_DefaultConfidence(t *testing.T) {
	got := Classify("The hearing lasted three days.")
	if got.Weight != model.WeightObservation {
		t.Fatalf("Expected supporting observation, got %s", got.Weight)
	}
	if !almost(got.Confidence, 0.4) {
		t.Errorf("Expected default confidence 0.4, got %v", got.Confidence)
	}
	if len(got.AlsoMatched) != 0 {
		t.Errorf("Expected no secondary matches, got %v", got.AlsoMatched)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	text := "We hold that the decision is distinguishable; the matter is disposed of."
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got.Weight != first.Weight || got.Confidence != first.Confidence {
			t.Fatalf("Classification is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("WE HOLD THAT the appeal must fail."); got.Weight != model.WeightRatioDecidendi {
		t.Errorf("Expected case-insensitive match, got %s", got.Weight)
	}
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
