package render

import (
	"testing"

	"github.com/signbridge/islgloss/classify"
)

func TestFinalizeMarkers(t *testing.T) {
	tests := []struct {
		name string
		body string
		typ  classify.Type
		want string
	}{
		{"declarative unchanged", "BOY APPLE EAT", classify.Declarative, "BOY APPLE EAT"},
		{"imperative unchanged", "HELP ME PLEASE", classify.Imperative, "HELP ME PLEASE"},
		{"yes-no marker", "YOU COME", classify.YesNoQuestion, "YOU COME [Y/N?]"},
		{"wh marker", "HE WHAT EAT", classify.WhQuestion, "HE WHAT EAT [WH?]"},
		{"whitespace collapsed", "  SHE   HAPPY  NOT ", classify.Declarative, "SHE HAPPY NOT"},
		{"empty body keeps marker only", "", classify.YesNoQuestion, "[Y/N?]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Finalize(tt.body, tt.typ, false)
			if got != tt.want {
				t.Errorf("Finalize(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

// Finalizing an already finalized declarative body changes nothing:
// whitespace collapsing is idempotent.
func TestFinalizeIdempotentOnWhitespace(t *testing.T) {
	once := Finalize("  I   COMFORTABLE   NOT ", classify.Declarative, true)
	twice := Finalize(once, classify.Declarative, true)
	if once != twice {
		t.Errorf("Finalize not idempotent: %q != %q", once, twice)
	}
}

func TestCollapse(t *testing.T) {
	if got := Collapse("\tA  B\n C  "); got != "A B C" {
		t.Errorf("Collapse = %q, want %q", got, "A B C")
	}
	if got := Collapse("   "); got != "" {
		t.Errorf("Collapse(blank) = %q, want empty", got)
	}
}

func TestFingerSpell(t *testing.T) {
	if got := FingerSpell("Faraan"); got != "F A R A A N" {
		t.Errorf("FingerSpell = %q, want %q", got, "F A R A A N")
	}
}
