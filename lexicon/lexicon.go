package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// Set is an immutable lowercase word set. Lookups lowercase their input,
// so matching is case-insensitive.
type Set map[string]struct{}

// New builds a set from the given words.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Words returns the members of the set, unsorted.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	return words
}

// Load reads a word list file: one word per line, trimmed and lowercased,
// duplicate lines collapsed. A missing or unreadable file is a startup
// error for the caller.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	defer f.Close()

	s, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	return s, nil
}

func read(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

//go:embed data/time_words.txt data/wh_words.txt
var defaultLists embed.FS

// Lexicon bundles the two word sets the pipeline consults. Both sets are
// read-only after construction and safe for concurrent lookups.
type Lexicon struct {
	Time Set
	Wh   Set
}

// Default returns the lexicon built from the embedded word lists.
func Default() Lexicon {
	return Lexicon{
		Time: mustEmbedded("data/time_words.txt"),
		Wh:   mustEmbedded("data/wh_words.txt"),
	}
}

// FromFiles loads both word lists from disk. An empty path falls back to
// the embedded default for that list.
func FromFiles(timePath, whPath string) (Lexicon, error) {
	lex := Default()

	if timePath != "" {
		s, err := Load(timePath)
		if err != nil {
			return Lexicon{}, err
		}
		lex.Time = s
	}
	if whPath != "" {
		s, err := Load(whPath)
		if err != nil {
			return Lexicon{}, err
		}
		lex.Wh = s
	}
	return lex, nil
}

func mustEmbedded(name string) Set {
	f, err := defaultLists.Open(name)
	if err != nil {
		panic(fmt.Sprintf("embedded word list %s: %v", name, err))
	}
	defer f.Close()

	s, err := read(f)
	if err != nil {
		panic(fmt.Sprintf("embedded word list %s: %v", name, err))
	}
	return s
}
