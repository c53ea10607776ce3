// Package annotate defines the boundary to the external annotator that
// turns raw text into POS-tagged, dependency-parsed sentences.
package annotate

import (
	"errors"

	"github.com/signbridge/islgloss/sentence"
)

// Annotator returns the annotated sentence for one clause of raw text.
// The pipeline never retries a failed call; an error is fatal for the
// clause it belongs to.
type Annotator interface {
	Annotate(text string) (sentence.Sentence, error)
}

// ErrEmptyText is returned when the clause contains no words.
var ErrEmptyText = errors.New("empty text")

// ErrUnknownSentence is returned by the corpus annotator when no
// pre-parsed annotation exists for the text.
var ErrUnknownSentence = errors.New("sentence not in corpus")

// Func adapts a function to the Annotator interface.
type Func func(text string) (sentence.Sentence, error)

func (f Func) Annotate(text string) (sentence.Sentence, error) {
	return f(text)
}
