package query

import (
	"testing"
)

func TestExtractSections_BasicForms(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		number string
		act    string
	}{
		{"section keyword", "murder under Section 302 IPC", "302", "IPC"},
		{"section of the act", "Section 438 of the CrPC", "438", "CrPC"},
		{"us abbreviation", "bail u/s 438 CrPC", "438", "CrPC"},
		{"sec abbreviation", "sec. 376 IPC", "376", "IPC"},
		{"bare number with act", "cruelty 498A IPC", "498A", "IPC"},
		{"new code", "Section 103 BNS", "103", "BNS"},
		{"default act", "charged under Section 420", "420", "IPC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := ExtractSections(tt.text)
			if len(refs) == 0 {
				t.Fatalf("Expected a section reference in %q, got none", tt.text)
			}
			ref := refs[0]
			if ref.Number != tt.number {
				t.Errorf("Expected number %q, got %q", tt.number, ref.Number)
			}
			if ref.Act != tt.act {
				t.Errorf("Expected act %q, got %q", tt.act, ref.Act)
			}
			if !ref.Valid {
				t.Errorf("Expected %s %s to be valid", ref.Number, ref.Act)
			}
		})
	}
}

func TestExtractSections_Deduplication(t *testing.T) {
	refs := ExtractSections("Section 302 IPC read with 302 IPC and u/s 302 IPC")
	if len(refs) != 1 {
		t.Fatalf("Expected 1 deduplicated reference, got %d: %v", len(refs), refs)
	}
}

func TestExtractSections_MultipleSections(t *testing.T) {
	refs := ExtractSections("offences under Section 302 IPC and Section 34 IPC")
	if len(refs) != 2 {
		t.Fatalf("Expected 2 references, got %d: %v", len(refs), refs)
	}
}

func TestExtractSections_OutOfRange(t *testing.T) {
	refs := ExtractSections("hurt case under Section 823 IPC")
	if len(refs) != 1 {
		t.Fatalf("Expected 1 reference, got %d", len(refs))
	}
	ref := refs[0]
	if ref.Valid {
		t.Error("Expected section 823 IPC to be invalid (IPC ends at 511)")
	}
	if len(ref.Suggestions) == 0 {
		t.Fatal("Expected correction suggestions for 823")
	}
	if ref.Suggestions[0] != "323" {
		t.Errorf("Expected first suggestion 323 (the usual intent), got %q", ref.Suggestions[0])
	}
}

func TestExtractSections_BNSRange(t *testing.T) {
	refs := ExtractSections("Section 400 BNS")
	if len(refs) != 1 {
		t.Fatalf("Expected 1 reference, got %d", len(refs))
	}
	if refs[0].Valid {
		t.Error("Expected section 400 BNS to be invalid (BNS ends at 358)")
	}
}

func TestExtractSections_LetterSuffixInRange(t *testing.T) {
	refs := ExtractSections("dowry harassment Section 498A IPC")
	if len(refs) != 1 || !refs[0].Valid {
		t.Fatalf("Expected 498A IPC valid, got %+v", refs)
	}
}

func TestSuggestCorrections_AllInRange(t *testing.T) {
	for _, number := range []string{"823", "938", "999", "600"} {
		for _, s := range suggestCorrections(number, "IPC") {
			if !sectionInRange(s, "IPC") {
				t.Errorf("Suggestion %q for %q is itself out of range", s, number)
			}
		}
	}
}

func TestSuggestCorrections_Capped(t *testing.T) {
	if got := suggestCorrections("513", "IPC"); len(got) > 5 {
		t.Errorf("Expected at most 5 suggestions, got %d: %v", len(got), got)
	}
}

func TestSectionQueryTerm(t *testing.T) {
	refs := ExtractSections("Section 302 IPC")
	if len(refs) != 1 {
		t.Fatalf("Expected 1 reference, got %d", len(refs))
	}
	if got := SectionQueryTerm(refs[0]); got != "Section 302 IPC" {
		t.Errorf("Expected %q, got %q", "Section 302 IPC", got)
	}
}
