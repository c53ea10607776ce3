package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/signbridge/islgloss/annotate"
	"github.com/signbridge/islgloss/annotate/corpus"
	"github.com/signbridge/islgloss/fixture"
	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/storage"
)

func newPipeline() *Pipeline {
	return New(corpus.FromDocs(fixture.Doc()), lexicon.Default())
}

func TestGlossScenarios(t *testing.T) {
	p := newPipeline()

	tests := []struct {
		in   string
		want string
	}{
		{"The boy eats an apple.", "BOY APPLE EAT"},
		{"Are you coming?", "YOU COME [Y/N?]"},
		{"What did he eat?", "HE WHAT EAT [WH?]"},
		{"She is not happy.", "SHE HAPPY NOT"},
		{"I want to eat.", "I WANT EAT"},
		{"Please help me", "HELP ME PLEASE"},
		{"I am not comfortable as there is a stranger in the house", "I COMFORTABLE NOT, HOUSE STRANGER"},
		{"What is your name?", "YOUR NAME WHAT [WH?]"},
		{"Are you not coming?", "YOU COME [Y/N?]"},
		{"I want water.", "I WATER WANT"},
		{"Sit down!", "SIT"},
		{"I am Faraan.", "I F A R A A N"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := p.Gloss(tt.in)
			if err != nil {
				t.Fatalf("Gloss(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Gloss(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGlossMultiClause(t *testing.T) {
	p := newPipeline()

	got, err := p.Gloss("Yesterday, I went to school.")
	if err != nil {
		t.Fatalf("Gloss: %v", err)
	}
	if got != "YESTERDAY, I SCHOOL GO" {
		t.Errorf("Gloss = %q, want %q", got, "YESTERDAY, I SCHOOL GO")
	}
}

func TestGlossBlankInput(t *testing.T) {
	p := newPipeline()

	for _, in := range []string{"", "   ", "...", " , , "} {
		got, err := p.Gloss(in)
		if err != nil {
			t.Fatalf("Gloss(%q): %v", in, err)
		}
		if got != "" {
			t.Errorf("Gloss(%q) = %q, want empty", in, got)
		}
	}
}

func TestGlossUnknownClauseAborts(t *testing.T) {
	p := newPipeline()

	_, err := p.Gloss("The boy eats an apple. Unparseable gibberish here.")
	if err == nil {
		t.Fatal("Gloss: expected error for unknown clause")
	}
	if !errors.Is(err, annotate.ErrUnknownSentence) {
		t.Errorf("error = %v, want wrapped ErrUnknownSentence", err)
	}
	if !strings.Contains(err.Error(), "clause 2") {
		t.Errorf("error %q does not name the failing clause", err)
	}
}

func TestGlossRecordsHistory(t *testing.T) {
	var recorded []storage.Entry
	w := writerFunc(func(e storage.Entry) (int, error) {
		recorded = append(recorded, e)
		return len(recorded), nil
	})

	p := newPipeline().WithHistory(w)

	if _, err := p.Gloss("She is not happy."); err != nil {
		t.Fatalf("Gloss: %v", err)
	}
	if _, err := p.Gloss("   "); err != nil {
		t.Fatalf("Gloss(blank): %v", err)
	}

	if len(recorded) != 1 {
		t.Fatalf("recorded %d entries, want 1 (blank input not recorded)", len(recorded))
	}
	if recorded[0].Gloss != "SHE HAPPY NOT" {
		t.Errorf("recorded gloss = %q, want %q", recorded[0].Gloss, "SHE HAPPY NOT")
	}
	if recorded[0].CreatedAt.IsZero() {
		t.Error("recorded entry has zero CreatedAt")
	}
}

func TestSplitClauses(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"The boy eats an apple.", []string{"The boy eats an apple"}},
		{"Yesterday, I went to school.", []string{"Yesterday", "I went to school"}},
		{"I have a problem. Can you help me?", []string{"I have a problem", "Can you help me?"}},
		{"...", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := SplitClauses(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitClauses(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

type writerFunc func(storage.Entry) (int, error)

func (f writerFunc) Append(e storage.Entry) (int, error) {
	return f(e)
}
