package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/signbridge/islgloss/english"
	"github.com/signbridge/islgloss/lexicon"
)

var englishCommand = &cli.Command{
	Name:      "english",
	Usage:     "render an ISL gloss as rough English",
	ArgsUsage: "<gloss>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return errors.New("no gloss given")
		}
		gloss := strings.Join(c.Args().Slice(), " ")

		lex, err := lexicon.FromFiles(c.String("time-words"), c.String("wh-words"))
		if err != nil {
			return err
		}

		fmt.Println(english.New(lex).Translate(gloss))
		return nil
	},
}
