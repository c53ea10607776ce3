package main

import (
	"github.com/urfave/cli/v2"

	"github.com/signbridge/islgloss/english"
	"github.com/signbridge/islgloss/repl"
)

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "interactive gloss prompt",
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		defer e.close()

		var suggestions []string
		if e.corpus != nil {
			suggestions = e.corpus.Sentences()
		}

		h := repl.NewHandler(e.pipeline, suggestions)
		h.Reverser = english.New(e.lexicon)
		return h.Run()
	},
}
