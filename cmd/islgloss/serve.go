package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/signbridge/islgloss/english"
	"github.com/signbridge/islgloss/server"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "serve the gloss API over HTTP",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "listen `ADDR`",
			Value:   ":8080",
			EnvVars: []string{"ISLGLOSS_ADDR"},
		},
	},
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		defer e.close()

		h := server.New(e.pipeline, english.New(e.lexicon))
		addr := c.String("addr")
		fmt.Println("listening on " + addr)
		return http.ListenAndServe(addr, h)
	},
}
