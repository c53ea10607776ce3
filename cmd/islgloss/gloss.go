package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var glossCommand = &cli.Command{
	Name:      "gloss",
	Usage:     "gloss a single English sentence",
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

		gloss, err := e.pipeline.Gloss(text)
		if err != nil {
			return err
		}

		fmt.Println("English: " + text)
		fmt.Println("ISL Gloss: " + gloss)
		return nil
	},
}
