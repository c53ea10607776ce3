package classify

import (
	"errors"
	"testing"

	"github.com/signbridge/islgloss/fixture"
	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/sentence"
)

func TestClassify(t *testing.T) {
	c := New(lexicon.Default().Wh)

	tests := []struct {
		name string
		s    sentence.Sentence
		want Type
	}{
		{"declarative", fixture.BoyEatsApple(), Declarative},
		{"yes-no question", fixture.AreYouComing(), YesNoQuestion},
		{"negated yes-no question", fixture.AreYouNotComing(), YesNoQuestion},
		{"wh question", fixture.WhatDidHeEat(), WhQuestion},
		{"wh question with copula", fixture.WhatIsYourName(), WhQuestion},
		{"imperative verb first", fixture.SitDown(), Imperative},
		{"imperative with please", fixture.PleaseHelpMe(), Imperative},
		{"declarative with negation", fixture.SheIsNotHappy(), Declarative},
		{"declarative catenative", fixture.IWantToEat(), Declarative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.s)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyEmptySentence(t *testing.T) {
	c := New(lexicon.Default().Wh)

	_, err := c.Classify(sentence.Sentence{})
	if !errors.Is(err, ErrEmptySentence) {
		t.Fatalf("Classify(empty) error = %v, want ErrEmptySentence", err)
	}
}

// A question mark outranks the imperative rule: a verb-first question is
// still a question.
func TestClassifyQuestionMarkWins(t *testing.T) {
	c := New(lexicon.Default().Wh)

	s := sentence.Sentence{Tokens: []sentence.Token{
		{Index: 0, Head: 0, Text: "Remember", Lemma: "remember", Pos: "VERB", Dep: "ROOT"},
		{Index: 1, Head: 0, Text: "me", Lemma: "I", Pos: "PRON", Dep: "dobj"},
		{Index: 2, Head: 0, Text: "?", Lemma: "?", Pos: "PUNCT", Dep: "punct"},
	}}

	got, err := c.Classify(s)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != YesNoQuestion {
		t.Errorf("Classify = %s, want %s", got, YesNoQuestion)
	}
}

func TestTypeString(t *testing.T) {
	want := map[Type]string{
		Declarative:   "declarative",
		YesNoQuestion: "yes-no-question",
		WhQuestion:    "wh-question",
		Imperative:    "imperative",
	}
	for typ, s := range want {
		if typ.String() != s {
			t.Errorf("Type(%d).String() = %q, want %q", typ, typ.String(), s)
		}
	}
}
