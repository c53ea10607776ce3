// Package english translates an ISL gloss back into rough English. It is
// the inverse direction of the pipeline: marker detection instead of
// classification, SOV to SVO re-ordering, and a small built-in
// conjugator instead of dependency annotations.
package english

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/render"
)

// word lists carried over from the gloss side of the system
var (
	adjectives = lexicon.New(
		"happy", "thirsty", "busy", "comfortable", "hot", "cold", "sad",
		"danger", "right", "wrong", "big", "small", "hungry", "tired",
		"sick", "well", "good", "bad", "tall", "short", "old", "young",
	)

	placeNouns = lexicon.New(
		"school", "market", "house", "hospital", "office", "shop",
		"store", "home", "park", "library", "toilet",
	)

	catenatives = lexicon.New("want", "need")

	pluralSubjects = lexicon.New("you", "we", "they")

	irregularPast = map[string]string{
		"go": "went", "come": "came", "eat": "ate", "take": "took",
		"sit": "sat", "stand": "stood", "sleep": "slept", "feel": "felt",
		"see": "saw", "give": "gave", "have": "had",
	}
)

// Translator converts glosses to English sentences. Safe for concurrent
// use.
type Translator struct {
	time  lexicon.Set
	wh    lexicon.Set
	title cases.Caser
}

func New(lex lexicon.Lexicon) *Translator {
	return &Translator{
		time:  lex.Time,
		wh:    lex.Wh,
		title: cases.Title(language.English),
	}
}

// Translate renders the gloss as a rough English sentence. An empty
// gloss yields an empty string.
func (t *Translator) Translate(gloss string) string {
	gloss = render.Collapse(gloss)

	question := false
	wh := false
	switch {
	case strings.HasSuffix(gloss, render.YesNoMarker):
		gloss = strings.TrimSuffix(gloss, render.YesNoMarker)
		question = true
	case strings.HasSuffix(gloss, render.WhMarker):
		gloss = strings.TrimSuffix(gloss, render.WhMarker)
		question, wh = true, true
	case strings.HasSuffix(gloss, "?"):
		gloss = strings.TrimSuffix(gloss, "?")
		question = true
	}

	// Only the main clause is translated; a trailing context clause has
	// no reliable English rendering.
	if i := strings.Index(gloss, ","); i >= 0 {
		gloss = gloss[:i]
	}

	var (
		words    []string
		timeWord string
		whWord   string
		polite   bool
		negation bool
	)
	for _, w := range strings.Fields(strings.ToLower(gloss)) {
		switch {
		case w == "please":
			polite = true
		case w == "not":
			negation = true
		case timeWord == "" && t.time.Contains(w):
			timeWord = w
		case t.wh.Contains(w):
			whWord = w
			wh = true
		default:
			words = append(words, w)
		}
	}

	body := t.compose(words, timeWord, whWord, polite, negation, question, wh)
	if body == "" {
		return ""
	}

	mark := "."
	if question || wh {
		mark = "?"
	}
	return t.sentenceCase(body) + mark
}

func (t *Translator) compose(words []string, timeWord, whWord string, polite, negation, question, wh bool) string {
	switch {
	case polite:
		if len(words) == 0 {
			return ""
		}
		return "please " + strings.Join(words, " ")

	case wh:
		if whWord == "" || len(words) == 0 {
			return strings.Join(append([]string{whWord}, words...), " ")
		}
		return whWord + " is " + strings.Join(words, " ")

	case question:
		if len(words) == 0 {
			return ""
		}
		subject := words[0]
		rest := words[1:]
		if len(rest) == 0 {
			return beForm(subject) + " " + subject
		}
		verb := rest[len(rest)-1]
		middle := rest[:len(rest)-1]
		out := []string{beForm(subject), subject, gerund(verb)}
		out = append(out, middle...)
		return strings.Join(out, " ")
	}

	if len(words) == 0 {
		return timeWord
	}

	// predicate adjective: copula restored, negation between
	if adjectives.Contains(words[len(words)-1]) {
		subject := words[0]
		adj := words[len(words)-1]
		be := beForm(subject)
		if negation {
			be += " not"
		}
		return prepend(timeWord, subject+" "+be+" "+adj)
	}

	subject := words[0]
	if len(words) == 1 {
		return prepend(timeWord, subject)
	}

	// catenative straight after the subject: "I WANT EAT"
	if catenatives.Contains(words[1]) && len(words) >= 3 {
		verb := conjugate(words[1], subject, timeWord)
		return prepend(timeWord, subject+" "+verb+" to "+strings.Join(words[2:], " "))
	}

	// SOV back to SVO
	verb := words[len(words)-1]
	object := strings.Join(words[1:len(words)-1], " ")
	if placeNouns.Contains(object) {
		object = "to " + object
	}

	conjugated := conjugate(verb, subject, timeWord)
	if negation {
		conjugated = doForm(subject) + " not " + verb
	}
	return prepend(timeWord, strings.TrimSpace(subject+" "+conjugated+" "+object))
}

func prepend(timeWord, rest string) string {
	if timeWord == "" {
		return rest
	}
	return timeWord + " " + rest
}

// sentenceCase lowercases were done upstream; here the first word is
// title-cased and the pronoun "i" restored, Unicode-correctly.
func (t *Translator) sentenceCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "i" {
			words[i] = "I"
		}
	}
	if len(words) > 0 && words[0] != "I" {
		words[0] = t.title.String(words[0])
	}
	return strings.Join(words, " ")
}

func beForm(subject string) string {
	switch {
	case subject == "i":
		return "am"
	case pluralSubjects.Contains(subject) || strings.HasSuffix(subject, "s"):
		return "are"
	}
	return "is"
}

func doForm(subject string) string {
	if subject == "i" || pluralSubjects.Contains(subject) {
		return "do"
	}
	return "does"
}

func conjugate(verb, subject, timeWord string) string {
	if timeWord == "yesterday" {
		if past, ok := irregularPast[verb]; ok {
			return past
		}
		if strings.HasSuffix(verb, "e") {
			return verb + "d"
		}
		return verb + "ed"
	}

	if subject == "i" || pluralSubjects.Contains(subject) {
		return verb
	}
	switch {
	case strings.HasSuffix(verb, "o"), strings.HasSuffix(verb, "s"),
		strings.HasSuffix(verb, "x"), strings.HasSuffix(verb, "ch"),
		strings.HasSuffix(verb, "sh"):
		return verb + "es"
	}
	return verb + "s"
}

func gerund(verb string) string {
	if strings.HasSuffix(verb, "e") && verb != "be" {
		return verb[:len(verb)-1] + "ing"
	}
	return verb + "ing"
}
