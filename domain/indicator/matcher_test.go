package indicator

import "testing"

// TestMatcherSubstring tests plain substring patterns
func TestMatcherSubstring(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"Total", "Total 15-49", true},
		{"Total", "total 15-49", false}, // case-sensitive by default
		{"Ensemble", "Ensemble", true},
		{"Zinc", "Given zinc for diarrhea|Yes", false},
		{"zinc", "Given zinc for diarrhea|Yes", true},
		{"", "anything", true},
	}

	for _, test := range tests {
		got := Contains(test.pattern).Match(test.candidate)
		if got != test.want {
			t.Errorf("Contains(%q).Match(%q) = %v, want %v", test.pattern, test.candidate, got, test.want)
		}
	}
}

// TestMatcherWildcard tests the "A.*B" ordered-parts form
func TestMatcherWildcard(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"Amount of fluids.*more", "Amount of fluids given|More", false}, // case-sensitive miss on "more"
		{"Amount of fluids.*More", "Amount of fluids given|More", true},
		{"Amount of fluids.*More", "Amount of food given|More", false},
		{"a.*b.*c", "a-x-b-y-c", true},
		{"a.*b.*c", "c-b-a", false}, // parts must appear in order
		{"a.*a", "a", false},        // second part needs a second occurrence
	}

	for _, test := range tests {
		got := Contains(test.pattern).Match(test.candidate)
		if got != test.want {
			t.Errorf("Contains(%q).Match(%q) = %v, want %v", test.pattern, test.candidate, got, test.want)
		}
	}
}

// TestMatcherFoldCase tests case-insensitive matching
func TestMatcherFoldCase(t *testing.T) {
	m := ContainsFold("amount of fluids.*more")
	if !m.Match("Amount of fluids given|More") {
		t.Error("expected fold-case wildcard to match")
	}
	if m.Match("Amount of food given|More") {
		t.Error("fold-case must not loosen the part matching")
	}
}
