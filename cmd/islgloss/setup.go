package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/signbridge/islgloss/annotate"
	"github.com/signbridge/islgloss/annotate/corpus"
	"github.com/signbridge/islgloss/annotate/remote"
	"github.com/signbridge/islgloss/lexicon"
	"github.com/signbridge/islgloss/pipeline"
	"github.com/signbridge/islgloss/storage"
	"github.com/signbridge/islgloss/storage/filesystem"
	"github.com/signbridge/islgloss/storage/sqlite/zombiezen"
)

// env holds everything a command needs, wired from the global flags.
type env struct {
	pipeline  *pipeline.Pipeline
	annotator annotate.Annotator
	corpus    *corpus.Annotator // nil when a remote annotator is used
	lexicon   lexicon.Lexicon
	close     func()
}

func setup(c *cli.Context) (*env, error) {
	lex, err := lexicon.FromFiles(c.String("time-words"), c.String("wh-words"))
	if err != nil {
		return nil, err
	}

	var (
		annotator annotate.Annotator
		corp      *corpus.Annotator
	)
	switch {
	case c.String("annotator-url") != "":
		annotator = remote.New(c.String("annotator-url"))
	case c.String("corpus") != "":
		corp, err = corpus.New(c.String("corpus"))
		if err != nil {
			return nil, err
		}
		annotator = corp
	default:
		return nil, errors.New("no annotator configured: set --annotator-url or --corpus")
	}

	p := pipeline.New(annotator, lex)

	closeFn := func() {}
	if path := c.String("history"); path != "" {
		w, cl, err := openHistory(path)
		if err != nil {
			return nil, err
		}
		p.WithHistory(w)
		closeFn = cl
	}

	return &env{pipeline: p, annotator: annotator, corpus: corp, lexicon: lex, close: closeFn}, nil
}

// openHistory picks the history backend by path extension.
func openHistory(path string) (storage.HistoryRepository, func(), error) {
	if filepath.Ext(path) != ".db" {
		return filesystem.New(path), func() {}, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "history.sql"); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("create history schema: %w", err)
	}

	return zombiezen.NewHistoryStore(pool), func() { pool.Close() }, nil
}
