package transform

import (
	"testing"

	"github.com/signbridge/islgloss/classify"
	"github.com/signbridge/islgloss/extract"
	"github.com/signbridge/islgloss/fixture"
	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/sentence"
)

func glossBody(t *testing.T, typ classify.Type, s sentence.Sentence) string {
	t.Helper()
	lex := lexicon.Default()
	c := extract.New(lex.Time).Extract(s)
	return New(lex.Wh).Transform(typ, c, s)
}

func TestTransformDeclarativeSOV(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.BoyEatsApple())
	if got != "BOY APPLE EAT" {
		t.Errorf("Transform = %q, want %q", got, "BOY APPLE EAT")
	}
}

func TestTransformDeclarativeTimeFirst(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.YesterdayISchool())
	if got != "YESTERDAY I SCHOOL GO" {
		t.Errorf("Transform = %q, want %q", got, "YESTERDAY I SCHOOL GO")
	}
}

func TestTransformDeclarativeNegationTrailing(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.SheIsNotHappy())
	if got != "SHE HAPPY NOT" {
		t.Errorf("Transform = %q, want %q", got, "SHE HAPPY NOT")
	}
}

// Multiple negation-modifier tokens still render a single NOT: only the
// boolean flag matters, not the count.
func TestTransformNegationNotDuplicated(t *testing.T) {
	s := fixture.SheIsNotHappy()
	extra := sentence.Token{Index: len(s.Tokens), Head: 1, Text: "never", Lemma: "never", Pos: "ADV", Dep: "neg"}
	s.Tokens = append(s.Tokens, extra)

	got := glossBody(t, classify.Declarative, s)
	if got != "SHE HAPPY NOT" {
		t.Errorf("Transform = %q, want %q", got, "SHE HAPPY NOT")
	}
}

func TestTransformCatenativeReconstruction(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.IWantToEat())
	if got != "I WANT EAT" {
		t.Errorf("Transform = %q, want %q", got, "I WANT EAT")
	}
}

func TestTransformDeclarativeContextClause(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.NotComfortable())
	if got != "I COMFORTABLE NOT, HOUSE STRANGER" {
		t.Errorf("Transform = %q, want %q", got, "I COMFORTABLE NOT, HOUSE STRANGER")
	}
}

func TestTransformYesNoQuestion(t *testing.T) {
	got := glossBody(t, classify.YesNoQuestion, fixture.AreYouComing())
	if got != "YOU COME" {
		t.Errorf("Transform = %q, want %q", got, "YOU COME")
	}
}

func TestTransformWhQuestionDefaultOrder(t *testing.T) {
	got := glossBody(t, classify.WhQuestion, fixture.WhatDidHeEat())
	if got != "HE WHAT EAT" {
		t.Errorf("Transform = %q, want %q", got, "HE WHAT EAT")
	}
}

func TestTransformWhQuestionNameCompound(t *testing.T) {
	got := glossBody(t, classify.WhQuestion, fixture.WhatIsYourName())
	if got != "YOUR NAME WHAT" {
		t.Errorf("Transform = %q, want %q", got, "YOUR NAME WHAT")
	}
}

func TestTransformWhQuestionWhyFronted(t *testing.T) {
	got := glossBody(t, classify.WhQuestion, fixture.WhyAreYouFeelingSad())
	if got != "WHY YOU SAD" {
		t.Errorf("Transform = %q, want %q", got, "WHY YOU SAD")
	}
}

func TestTransformImperativeWithPlease(t *testing.T) {
	got := glossBody(t, classify.Imperative, fixture.PleaseHelpMe())
	if got != "HELP ME PLEASE" {
		t.Errorf("Transform = %q, want %q", got, "HELP ME PLEASE")
	}
}

func TestTransformImperativeBareVerb(t *testing.T) {
	got := glossBody(t, classify.Imperative, fixture.SitDown())
	if got != "SIT" {
		t.Errorf("Transform = %q, want %q", got, "SIT")
	}
}

func TestTransformFingerSpellsProperNoun(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.IAmFaraan())
	if got != "I F A R A A N" {
		t.Errorf("Transform = %q, want %q", got, "I F A R A A N")
	}
}

// Copula substitution onto the direct object must not render the token
// twice.
func TestTransformVerbObjectDedup(t *testing.T) {
	got := glossBody(t, classify.Declarative, fixture.IHaveFever())
	if got != "I FEVER" {
		t.Errorf("Transform = %q, want %q", got, "I FEVER")
	}
}

// Missing slots drop their position without leaving gaps.
func TestTransformMissingSlotsCollapse(t *testing.T) {
	lex := lexicon.Default()
	got := New(lex.Wh).Transform(classify.Declarative, extract.Components{}, sentence.Sentence{})
	if got != "" {
		t.Errorf("Transform(empty) = %q, want empty", got)
	}
}
