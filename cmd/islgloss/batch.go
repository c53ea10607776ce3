package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

var batchCommand = &cli.Command{
	Name:      "batch",
	Usage:     "gloss a file of English sentences, one per line",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return errors.New("expected exactly one input file")
		}

		lines, err := readLines(c.Args().First())
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}

		e, err := setup(c)
		if err != nil {
			return err
		}
		defer e.close()

		type result struct {
			text  string
			gloss string
			err   error
		}
		results := make([]result, 0, len(lines))

		// Start progress indicator
		uiprogress.Start()
		bar := uiprogress.AddBar(len(lines))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			return lines[min(b.Current(), len(lines)-1)]
		})

		for _, text := range lines {
			gloss, err := e.pipeline.Gloss(text)
			results = append(results, result{text: text, gloss: gloss, err: err})
			bar.Incr()
		}
		uiprogress.Stop()

		failed := 0
		for _, r := range results {
			fmt.Println("English: " + r.text)
			if r.err != nil {
				fmt.Printf("Error: %v\n", r.err)
				failed++
			} else {
				fmt.Println("ISL Gloss: " + r.gloss)
			}
			fmt.Println()
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d sentences failed", failed, len(results))
		}
		return nil
	},
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return lines, nil
}
