package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/signbridge/islgloss/classify"
	"github.com/signbridge/islgloss/pipeline"
)

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "show the annotation and classification of a sentence",
	ArgsUsage: "<sentence>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return errors.New("no sentence given")
		}
		text := strings.Join(c.Args().Slice(), " ")

		e, err := setup(c)
		if err != nil {
			return err
		}
		defer e.close()

		classifier := classify.New(e.lexicon.Wh)

		for i, clause := range pipeline.SplitClauses(text) {
			s, err := e.annotator.Annotate(clause)
			if err != nil {
				return fmt.Errorf("clause %d %q: %w", i+1, clause, err)
			}

			typ, err := classifier.Classify(s)
			if err != nil {
				return fmt.Errorf("clause %d %q: %w", i+1, clause, err)
			}

			fmt.Printf("✍  %d %s (%s)\n", i+1, clause, typ)
			for _, token := range s.Tokens {
				fmt.Printf("%20q %15q %8s %6d %6d %8s %s\n", token.Text, token.Lemma, token.Pos, token.Index, token.Head, token.Dep, token.Tag)
			}
			fmt.Println()
		}

		return nil
	},
}
