package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

var historyCommand = &cli.Command{
	Name:  "history",
	Usage: "list past translations, newest first",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "maximum number of entries, 0 for all",
			Value: 20,
		},
	},
	Action: func(c *cli.Context) error {
		path := c.String("history")
		if path == "" {
			return errors.New("no history configured: set --history")
		}

		repo, closeFn, err := openHistory(path)
		if err != nil {
			return err
		}
		defer closeFn()

		entries, err := repo.List(c.Int("limit"))
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Printf("%4d  %s  %q -> %s\n", e.Id, e.CreatedAt.Format("2006-01-02 15:04"), e.Text, e.Gloss)
		}
		return nil
	},
}
