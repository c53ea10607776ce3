// Package repl provides the interactive gloss prompt.
package repl

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/signbridge/islgloss/storage"
)

// Glosser converts raw English text to an ISL gloss.
type Glosser interface {
	Gloss(raw string) (string, error)
}

// Reverser converts an ISL gloss back to English.
type Reverser interface {
	Translate(gloss string) string
}

type Handler struct {
	Glosser     Glosser
	Reverser    Reverser
	HistoryRepo storage.HistoryReader
	Suggestions []string
}

func NewHandler(g Glosser, suggestions []string) *Handler {
	return &Handler{
		Glosser:     g,
		Suggestions: suggestions,
	}
}

// Run loops the prompt until the user types quit. Every non-empty input
// is glossed and printed; Ctrl+E re-renders the last gloss as English
// when a Reverser is configured.
func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+E: last gloss as English, 🔧 quit")

	// initialize prompt history
	history := []string{}
	lastGloss := ""

	for {

		in := prompt.Input("      🤟 ", h.completer(),
			prompt.OptionTitle("islgloss"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlE,
				Fn: func(buf *prompt.Buffer) {
					if h.Reverser == nil || lastGloss == "" {
						return
					}
					fmt.Println("English: " + h.Reverser.Translate(lastGloss))
				}}),
		)

		if in == "quit" {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		gloss, err := h.Glosser.Gloss(in)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		lastGloss = gloss
		fmt.Println("ISL Gloss: " + gloss)
	}
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if "" == befCursor {
			return s
		}

		lower := strings.ToLower(befCursor)
		for _, text := range h.Suggestions {
			if strings.HasPrefix(text, lower) {
				s = append(s, prompt.Suggest{Text: text, Description: "🤟 corpus"})
			}
		}

		return s
	}
}
