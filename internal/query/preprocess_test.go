package query

import (
	"reflect"
	"strings"
	"testing"
)

func TestProcess_Deterministic(t *testing.T) {
	raw := "anticipatory bail u/s 438 CrPC"
	first := Process(raw)
	second := Process(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical input")
	}
}

func TestNormalize_Abbreviations(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bail u/s 438 CrPC", "bail under Section 438 CrPC"},
		{"302 r/w 34 IPC", "302 read with 34 IPC"},
		{"the  hon'ble   court", "the honourable court"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractConcepts_LongestPhraseWins(t *testing.T) {
	concepts := ExtractConcepts("application for anticipatory bail")
	if len(concepts) != 1 {
		t.Fatalf("Expected 1 concept, got %v", concepts)
	}
	if concepts[0] != "anticipatory bail" {
		t.Errorf("Expected %q, got %q", "anticipatory bail", concepts[0])
	}
}

func TestExtractConcepts_WordBoundary(t *testing.T) {
	// "bailment" must not match "bail".
	if concepts := ExtractConcepts("a suit about bailment of goods"); len(concepts) != 0 {
		t.Errorf("Expected no concepts, got %v", concepts)
	}
}

func TestExtractConcepts_Multiple(t *testing.T) {
	concepts := ExtractConcepts("dying declaration and circumstantial evidence in murder")
	want := map[string]bool{"dying declaration": true, "circumstantial evidence": true}
	if len(concepts) != 2 {
		t.Fatalf("Expected 2 concepts, got %v", concepts)
	}
	for _, c := range concepts {
		if !want[c] {
			t.Errorf("Unexpected concept %q", c)
		}
	}
}

func TestProcess_VariantOrder(t *testing.T) {
	pq := Process("anticipatory bail u/s 438 CrPC")

	if len(pq.Variants) < 4 {
		t.Fatalf("Expected at least 4 variants, got %v", pq.Variants)
	}

	// Quoted phrase first, then section-focused, then concept-combined.
	if !strings.HasPrefix(pq.Variants[0], `"`) {
		t.Errorf("Expected quoted-phrase variant first, got %q", pq.Variants[0])
	}
	if pq.Variants[1] != "Section 438 CrPC" {
		t.Errorf("Expected section variant second, got %q", pq.Variants[1])
	}
	if pq.Variants[2] != "Section 438 CrPC anticipatory bail" {
		t.Errorf("Expected concept variant third, got %q", pq.Variants[2])
	}

	// The boolean variant uses the upstream's AND spelling.
	last := pq.Variants[len(pq.Variants)-1]
	if !strings.Contains(last, " ANDD ") {
		t.Errorf("Expected ANDD join in last variant, got %q", last)
	}
}

func TestProcess_InvalidSectionExcludedFromVariants(t *testing.T) {
	pq := Process("hurt u/s 823 IPC")
	for _, v := range pq.Variants {
		if v == "Section 823 IPC" {
			t.Errorf("Invalid section produced a section-focused variant")
		}
	}
}

func TestProcess_SingleWordQuery(t *testing.T) {
	pq := Process("bail")
	if len(pq.Variants) == 0 {
		t.Fatal("Expected at least one variant")
	}
	for _, v := range pq.Variants {
		if strings.HasPrefix(v, `"`) {
			t.Errorf("Single-word query should not produce a quoted variant, got %q", v)
		}
	}
}

func TestSignificantWords_Stopwords(t *testing.T) {
	words := significantWords("the court case about dowry death under the act")
	for _, w := range words {
		if stopwords[w] {
			t.Errorf("Stopword %q survived filtering", w)
		}
		if len(w) < 3 {
			t.Errorf("Short token %q survived filtering", w)
		}
	}
}

func TestAlternatives_NeverEmptyForRealQuery(t *testing.T) {
	pq := Process("dowry death Section 304B IPC")
	alts := Alternatives(pq)
	if len(alts) == 0 {
		t.Fatal("Expected at least one alternative")
	}
	for _, a := range alts {
		if a == pq.Normalized {
			t.Errorf("Alternatives must not repeat the normalized query, got %q", a)
		}
	}
}
