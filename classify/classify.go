// Package classify assigns a sentence type to an annotated clause.
//
// The type decides which gloss ordering template applies and which
// non-manual marker, if any, is attached at the end of the pipeline.
package classify

import (
	"errors"

	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/sentence"
)

// Type is the sentence type of one clause.
type Type int

const (
	Declarative Type = iota
	YesNoQuestion
	WhQuestion
	Imperative
)

func (t Type) String() string {
	switch t {
	case Declarative:
		return "declarative"
	case YesNoQuestion:
		return "yes-no-question"
	case WhQuestion:
		return "wh-question"
	case Imperative:
		return "imperative"
	}
	return "unknown"
}

// ErrEmptySentence is returned for a zero-token sentence.
var ErrEmptySentence = errors.New("empty sentence")

// Classifier tags clauses with their sentence type. It only reads the
// wh-word set and is safe for concurrent use.
type Classifier struct {
	wh lexicon.Set
}

func New(wh lexicon.Set) *Classifier {
	return &Classifier{wh: wh}
}

// Classify inspects the clause and returns its type. Rules are checked in
// priority order, first match wins:
//
//  1. A final "?" token makes it a question; a wh-word anywhere makes the
//     question a wh-question, otherwise it is yes/no.
//  2. A verb root that either opens the sentence or is preceded only by
//     "please" makes it imperative.
//  3. Everything else is declarative.
func (c *Classifier) Classify(s sentence.Sentence) (Type, error) {
	last, ok := s.Last()
	if !ok {
		return Declarative, ErrEmptySentence
	}

	if last.Text == "?" {
		for _, t := range s.Tokens {
			if c.wh.Contains(t.Text) {
				return WhQuestion, nil
			}
		}
		return YesNoQuestion, nil
	}

	if root, ok := s.Root(); ok && root.Pos == "VERB" {
		first, _ := s.First()
		if first.Index == root.Index || first.Lower() == "please" {
			return Imperative, nil
		}
	}

	return Declarative, nil
}
