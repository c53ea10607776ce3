package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "islgloss",
		Usage: "convert English sentences to Indian Sign Language glosses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "annotator-url",
				Usage:   "base `URL` of the annotation service",
				EnvVars: []string{"ISLGLOSS_ANNOTATOR_URL"},
			},
			&cli.StringFlag{
				Name:    "corpus",
				Usage:   "`DIR` of pre-annotated doc files, used when no annotator URL is set",
				EnvVars: []string{"ISLGLOSS_CORPUS"},
			},
			&cli.StringFlag{
				Name:    "time-words",
				Usage:   "`FILE` with one time word per line, overrides the built-in list",
				EnvVars: []string{"ISLGLOSS_TIME_WORDS"},
			},
			&cli.StringFlag{
				Name:    "wh-words",
				Usage:   "`FILE` with one wh word per line, overrides the built-in list",
				EnvVars: []string{"ISLGLOSS_WH_WORDS"},
			},
			&cli.StringFlag{
				Name:    "history",
				Usage:   "translation history `PATH`, .db for sqlite, anything else for a jsonl file",
				EnvVars: []string{"ISLGLOSS_HISTORY"},
			},
		},
		Commands: []*cli.Command{
			glossCommand,
			inspectCommand,
			batchCommand,
			replCommand,
			serveCommand,
			historyCommand,
			englishCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "islgloss: %v\n", err)
		os.Exit(1)
	}
}
