// Package extract pulls the grammatical slots of a clause out of its
// dependency annotations.
package extract

import (
	"strings"

	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/sentence"
)

// Components are the grammatical slots of one clause. Absent slots stay
// nil; they are rendered as omitted text later, never as errors. A
// Components value is filled once per clause and read-only afterwards.
type Components struct {
	Subject *sentence.Token
	Verb    *sentence.Token
	Object  *sentence.Token
	Time    *sentence.Token

	Negation bool
}

// catenatives govern a second verb through an open complement
// ("want to eat"). The governed verb becomes the action slot.
var catenatives = lexicon.New("want", "need")

// copulas are dropped in ISL; their complement takes the verb slot
// ("is happy" signs as HAPPY).
var copulas = lexicon.New("be", "have", "feel", "am", "is", "are")

func isComplementDep(dep string) bool {
	switch dep {
	case "acomp", "attr", "dobj":
		return true
	}
	return false
}

// Extractor scans clauses for grammatical components. It only reads the
// time-word set and is safe for concurrent use.
type Extractor struct {
	time lexicon.Set
}

func New(time lexicon.Set) *Extractor {
	return &Extractor{time: time}
}

// Extract performs a single left-to-right scan assigning slots by
// dependency label, then normalizes the result:
//
//  1. catenative substitution (want/need + open complement, single hop)
//  2. prepositional-object fallback when no direct object was found
//  3. copula/complement substitution
//
// When a label occurs more than once the last assignment wins.
func (e *Extractor) Extract(s sentence.Sentence) Components {
	var c Components

	for i := range s.Tokens {
		t := &s.Tokens[i]
		switch t.Dep {
		case "nsubj", "nsubjpass":
			c.Subject = t
		case sentence.RootDep:
			c.Verb = t
		case "dobj":
			c.Object = t
		case "advmod", "npadvmod", "tmod":
			if e.time.Contains(strings.Trim(t.Text, ",")) {
				c.Time = t
			}
		case "neg":
			c.Negation = true
		}
	}

	// Catenative substitution. Single hop: the open complement is never
	// itself searched for another catenative.
	if c.Verb != nil && catenatives.Contains(c.Verb.Lemma) {
		if xcomp, ok := s.Child(*c.Verb, "xcomp"); ok {
			c.Verb = &s.Tokens[xcomp.Index]
		}
	}

	// Prepositional-object fallback: "went to school" has no direct
	// object, the destination fills the slot instead.
	if c.Object == nil && c.Verb != nil {
		if prep, ok := s.Child(*c.Verb, "prep"); ok {
			if pobj, ok := s.Child(prep, "pobj"); ok {
				c.Object = &s.Tokens[pobj.Index]
			}
		}
	}

	// Copula/complement substitution.
	if c.Verb != nil && copulas.Contains(c.Verb.Lemma) {
		for _, child := range s.Children(*c.Verb) {
			if isComplementDep(child.Dep) {
				c.Verb = &s.Tokens[child.Index]
				break
			}
		}
	}

	return c
}
