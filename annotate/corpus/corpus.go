// Package corpus annotates text from a directory of pre-parsed token
// files (one Doc JSON per file, the spaCy/stanza dump format). It serves
// offline use and deterministic tests.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/signbridge/islgloss/annotate"
	"github.com/signbridge/islgloss/sentence"
)

// Annotator looks up annotations by normalized sentence text.
type Annotator struct {
	sentences map[string]sentence.Sentence
}

var _ annotate.Annotator = (*Annotator)(nil)

// New reads every *.json doc under dir and indexes its sentences.
func New(dir string) (*Annotator, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir %s: %w", dir, err)
	}

	var docs []sentence.Doc
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		doc, err := ReadDoc(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return FromDocs(docs...), nil
}

// FromDocs indexes the sentences of the given docs directly.
func FromDocs(docs ...sentence.Doc) *Annotator {
	a := &Annotator{sentences: map[string]sentence.Sentence{}}
	for _, doc := range docs {
		for _, s := range doc.Sentences() {
			a.sentences[normalize(s.Text())] = s
		}
	}
	return a
}

// Len returns the number of indexed sentences.
func (a *Annotator) Len() int {
	return len(a.sentences)
}

// Sentences returns the normalized text of every indexed sentence,
// sorted.
func (a *Annotator) Sentences() []string {
	texts := make([]string, 0, len(a.sentences))
	for t := range a.sentences {
		texts = append(texts, t)
	}
	sort.Strings(texts)
	return texts
}

// Annotate returns the stored annotation whose normalized text matches.
func (a *Annotator) Annotate(text string) (sentence.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return sentence.Sentence{}, annotate.ErrEmptyText
	}

	s, ok := a.sentences[normalize(text)]
	if !ok {
		return sentence.Sentence{}, fmt.Errorf("%w: %q", annotate.ErrUnknownSentence, text)
	}
	return s, nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sentence.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sentence.Doc{}, fmt.Errorf("read doc %s: %w", path, err)
	}

	var doc sentence.Doc
	if err := json.Unmarshal(f, &doc); err != nil {
		return sentence.Doc{}, fmt.Errorf("decode doc %s: %w", path, err)
	}
	doc.Title = filepath.Base(path)

	return doc, nil
}

// normalize lowercases, drops punctuation and collapses whitespace so
// lookups tolerate casing and terminal punctuation differences.
func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
