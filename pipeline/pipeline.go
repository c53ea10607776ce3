// Package pipeline runs the full English-to-ISL conversion: clause
// splitting, annotation, classification, extraction, transformation and
// finalization, in input order.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/signbridge/islgloss/annotate"
	"github.com/signbridge/islgloss/classify"
	"github.com/signbridge/islgloss/extract"
	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/render"
	"github.com/signbridge/islgloss/storage"
	"github.com/signbridge/islgloss/transform"
)

// Pipeline converts raw English input to an ISL gloss. All stages are
// pure functions over the clause plus the two read-only word sets, so a
// Pipeline is safe for concurrent use as long as the annotator is.
type Pipeline struct {
	annotator   annotate.Annotator
	classifier  *classify.Classifier
	extractor   *extract.Extractor
	transformer *transform.Transformer

	history storage.HistoryWriter
}

func New(a annotate.Annotator, lex lexicon.Lexicon) *Pipeline {
	return &Pipeline{
		annotator:   a,
		classifier:  classify.New(lex.Wh),
		extractor:   extract.New(lex.Time),
		transformer: transform.New(lex.Wh),
	}
}

// WithHistory records every successful non-empty translation in w.
func (p *Pipeline) WithHistory(w storage.HistoryWriter) *Pipeline {
	p.history = w
	return p
}

// Gloss splits the input into clauses, glosses each in order and joins
// the results with ", ". Blank or punctuation-only input yields an empty
// result. A clause failure aborts the whole request and names the clause.
func (p *Pipeline) Gloss(raw string) (string, error) {
	clauses := SplitClauses(raw)

	glosses := make([]string, 0, len(clauses))
	for i, clause := range clauses {
		gloss, err := p.glossClause(clause)
		if err != nil {
			return "", fmt.Errorf("clause %d %q: %w", i+1, clause, err)
		}
		glosses = append(glosses, gloss)
	}

	out := strings.Join(glosses, ", ")
	if p.history != nil && out != "" {
		if _, err := p.history.Append(storage.Entry{Text: raw, Gloss: out, CreatedAt: time.Now()}); err != nil {
			return "", fmt.Errorf("record history: %w", err)
		}
	}
	return out, nil
}

func (p *Pipeline) glossClause(clause string) (string, error) {
	s, err := p.annotator.Annotate(clause)
	if err != nil {
		return "", err
	}

	typ, err := p.classifier.Classify(s)
	if err != nil {
		return "", err
	}

	components := p.extractor.Extract(s)
	body := p.transformer.Transform(typ, components, s)
	return render.Finalize(body, typ, components.Negation), nil
}

// SplitClauses normalizes sentence-ending periods to commas, then splits
// on commas into trimmed, non-empty clauses.
func SplitClauses(raw string) []string {
	raw = strings.ReplaceAll(raw, ".", ",")

	var clauses []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		clauses = append(clauses, part)
	}
	return clauses
}
