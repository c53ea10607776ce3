package sentence

import "strings"

// RootDep is the dependency label of the syntactic head of a clause.
const RootDep = "ROOT"

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// Head is the index of the governing token in the sentence.
	// The root token has Head == Index.
	Head int `json:"head"`

	Pos string `json:"pos"`
	Dep string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original text
	// (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsRoot reports whether the token is the syntactic head of its sentence.
func (t Token) IsRoot() bool {
	return t.Dep == RootDep
}

// Lower returns the lowercased surface text.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// Sentence is one annotated clause: an arena of tokens ordered by Index.
// Parent and child relations are expressed through head indices, so the
// token graph carries no references.
type Sentence struct {
	Tokens []Token `json:"tokens"`
}

func (s Sentence) Len() int {
	return len(s.Tokens)
}

// First returns the first token. ok is false for an empty sentence.
func (s Sentence) First() (Token, bool) {
	if len(s.Tokens) == 0 {
		return Token{}, false
	}
	return s.Tokens[0], true
}

// Last returns the final token, terminal punctuation included.
func (s Sentence) Last() (Token, bool) {
	if len(s.Tokens) == 0 {
		return Token{}, false
	}
	return s.Tokens[len(s.Tokens)-1], true
}

// Root returns the sentence's syntactic head.
func (s Sentence) Root() (Token, bool) {
	for _, t := range s.Tokens {
		if t.IsRoot() {
			return t, true
		}
	}
	return Token{}, false
}

// Parent returns the governing token of t, or ok=false if t is the root.
func (s Sentence) Parent(t Token) (Token, bool) {
	if t.IsRoot() || t.Head == t.Index {
		return Token{}, false
	}
	if t.Head < 0 || t.Head >= len(s.Tokens) {
		return Token{}, false
	}
	return s.Tokens[t.Head], true
}

// Children returns the tokens governed by parent, in sentence order.
func (s Sentence) Children(parent Token) []Token {
	var children []Token
	for _, t := range s.Tokens {
		if t.Head == parent.Index && t.Index != parent.Index {
			children = append(children, t)
		}
	}
	return children
}

// Child returns the first child of parent carrying the given dependency
// label.
func (s Sentence) Child(parent Token, dep string) (Token, bool) {
	for _, t := range s.Children(parent) {
		if t.Dep == dep {
			return t, true
		}
	}
	return Token{}, false
}

// Contains reports whether any token's lowercased text equals word.
func (s Sentence) Contains(word string) bool {
	for _, t := range s.Tokens {
		if t.Lower() == word {
			return true
		}
	}
	return false
}

// Text reconstructs the surface form of the sentence, space joined.
func (s Sentence) Text() string {
	words := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		words = append(words, t.Text)
	}
	return strings.Join(words, " ")
}

// Doc is a collection of annotated sentences loaded from one token file.
type Doc struct {
	Id int

	Title string

	Labels []string
	Tokens [][]Token `json:"tokens"`
}

// Sentences wraps the raw token groups of the doc.
func (d Doc) Sentences() []Sentence {
	out := make([]Sentence, 0, len(d.Tokens))
	for _, tokens := range d.Tokens {
		out = append(out, Sentence{Tokens: tokens})
	}
	return out
}
