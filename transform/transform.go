// Package transform orders the extracted components of a clause
// according to ISL word-order conventions and renders the gloss body.
package transform

import (
	"strings"

	"github.com/signbridge/islgloss/classify"
	"github.com/signbridge/islgloss/extract"
	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/render"
	"github.com/signbridge/islgloss/sentence"
)

// multiSlotWords are collected for compound wh-questions asking for
// personal details ("What is your name, age ...").
var multiSlotWords = lexicon.New("name", "age", "place", "where")

// Transformer renders gloss bodies. It only reads the wh-word set and is
// safe for concurrent use.
type Transformer struct {
	wh lexicon.Set
}

func New(wh lexicon.Set) *Transformer {
	return &Transformer{wh: wh}
}

// Transform renders the ordered gloss body for one clause. Non-manual
// markers are not attached here. Missing slots drop their position
// silently: slots are joined first and whitespace collapsed afterwards.
func (tr *Transformer) Transform(typ classify.Type, c extract.Components, s sentence.Sentence) string {
	subject := surface(c.Subject)
	object := surface(c.Object)
	timeExp := surface(c.Time)
	verb := tr.verbSlot(c, s)

	// Copula substitution can leave verb and object on the same token
	// ("I have fever"); render it once.
	if object != "" && object == verb {
		object = ""
	}

	please := ""
	if s.Contains("please") {
		please = "PLEASE"
	}

	switch typ {
	case classify.YesNoQuestion:
		return render.Collapse(join(subject, object, verb))

	case classify.WhQuestion:
		return tr.whQuestion(subject, timeExp, verb, s)

	case classify.Imperative:
		target := object
		if target == "" {
			target = subject
		}
		return render.Collapse(join(verb, target, please))
	}

	parts := []string{timeExp, subject, object, verb}
	if c.Negation {
		parts = append(parts, "NOT")
	}
	body := render.Collapse(strings.Join(parts, " "))

	if ctx := tr.context(c, s, subject, object); ctx != "" && body != "" {
		body += ", " + ctx
	}
	return body
}

// verbSlot renders the verb as its uppercased lemma. Proper nouns have no
// sign and are fingerspelled. When extraction substituted a want/need
// open complement, the catenative lemma is restored in front of it.
func (tr *Transformer) verbSlot(c extract.Components, s sentence.Sentence) string {
	if c.Verb == nil {
		return ""
	}

	verb := strings.ToUpper(c.Verb.Lemma)
	if c.Verb.Pos == "PROPN" {
		verb = render.FingerSpell(c.Verb.Text)
	}

	root, ok := s.Root()
	if !ok {
		return verb
	}
	lemma := strings.ToLower(root.Lemma)
	if (lemma == "want" || lemma == "need") && c.Verb.Dep == "xcomp" && c.Verb.Head == root.Index {
		verb = strings.ToUpper(root.Lemma) + " " + verb
	}
	return verb
}

// whQuestion applies the wh-question sub-rules, checked in order:
// compound personal-detail question, WHY fronting, default order.
func (tr *Transformer) whQuestion(subject, timeExp, verb string, s sentence.Sentence) string {
	wh := ""
	for _, t := range s.Tokens {
		if tr.wh.Contains(t.Text) {
			wh = strings.ToUpper(t.Text)
			break
		}
	}

	// The literal word "name" triggers the compound question; this is
	// intentionally narrow and must not be generalized.
	if s.Contains("name") {
		var collected []string
		for _, t := range s.Tokens {
			if multiSlotWords.Contains(t.Text) {
				collected = append(collected, strings.ToUpper(t.Text))
			}
		}
		slots := strings.Join(collected, " ")
		if slots == "" {
			slots = "NAME"
		}
		prefix := ""
		if s.Contains("your") {
			prefix = "YOUR"
		}
		return render.Collapse(join(prefix, slots, wh))
	}

	if wh == "WHY" {
		return render.Collapse(join("WHY", subject, verb))
	}

	return render.Collapse(join(timeExp, subject, wh, verb))
}

// context finds a trailing contextual clause for declaratives: a
// prepositional object that is neither the subject nor the object names a
// location or circumstance ("stranger in the house" -> "HOUSE STRANGER").
// When several qualify, the last one in document order wins.
func (tr *Transformer) context(c extract.Components, s sentence.Sentence, subject, object string) string {
	ctx := ""
	for _, t := range s.Tokens {
		if t.Dep != "pobj" {
			continue
		}
		rendered := strings.ToUpper(t.Text)
		if rendered == subject || rendered == object {
			continue
		}

		parts := []string{rendered}
		if prep, ok := s.Parent(t); ok {
			if head, ok := s.Parent(prep); ok && !isSlotToken(head, c) {
				parts = append(parts, strings.ToUpper(head.Text))
			}
		}
		ctx = strings.Join(parts, " ")
	}
	return ctx
}

func isSlotToken(t sentence.Token, c extract.Components) bool {
	for _, slot := range []*sentence.Token{c.Subject, c.Verb, c.Object} {
		if slot != nil && slot.Index == t.Index {
			return true
		}
	}
	return false
}

func surface(t *sentence.Token) string {
	if t == nil {
		return ""
	}
	return strings.ToUpper(t.Text)
}

func join(parts ...string) string {
	return strings.Join(parts, " ")
}
