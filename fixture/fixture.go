// Package fixture provides hand-annotated sentences mirroring spaCy
// en_core_web_sm output. Tests and the corpus annotator consume them, so
// every stage runs against the same deterministic parses.
package fixture

import "github.com/signbridge/islgloss/sentence"

func tok(index, head int, text, lemma, pos, dep string) sentence.Token {
	return sentence.Token{
		Index: index,
		Head:  head,
		Text:  text,
		Lemma: lemma,
		Pos:   pos,
		Dep:   dep,
	}
}

func BoyEatsApple() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "The", "the", "DET", "det"),
		tok(1, 2, "boy", "boy", "NOUN", "nsubj"),
		tok(2, 2, "eats", "eat", "VERB", "ROOT"),
		tok(3, 4, "an", "an", "DET", "det"),
		tok(4, 2, "apple", "apple", "NOUN", "dobj"),
		tok(5, 2, ".", ".", "PUNCT", "punct"),
	}}
}

func AreYouComing() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 2, "Are", "be", "AUX", "aux"),
		tok(1, 2, "you", "you", "PRON", "nsubj"),
		tok(2, 2, "coming", "come", "VERB", "ROOT"),
		tok(3, 2, "?", "?", "PUNCT", "punct"),
	}}
}

func AreYouNotComing() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 3, "Are", "be", "AUX", "aux"),
		tok(1, 3, "you", "you", "PRON", "nsubj"),
		tok(2, 3, "not", "not", "PART", "neg"),
		tok(3, 3, "coming", "come", "VERB", "ROOT"),
		tok(4, 3, "?", "?", "PUNCT", "punct"),
	}}
}

func WhatDidHeEat() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 3, "What", "what", "PRON", "dobj"),
		tok(1, 3, "did", "do", "AUX", "aux"),
		tok(2, 3, "he", "he", "PRON", "nsubj"),
		tok(3, 3, "eat", "eat", "VERB", "ROOT"),
		tok(4, 3, "?", "?", "PUNCT", "punct"),
	}}
}

func SheIsNotHappy() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "She", "she", "PRON", "nsubj"),
		tok(1, 1, "is", "be", "AUX", "ROOT"),
		tok(2, 1, "not", "not", "PART", "neg"),
		tok(3, 1, "happy", "happy", "ADJ", "acomp"),
		tok(4, 1, ".", ".", "PUNCT", "punct"),
	}}
}

func IWantToEat() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "I", "I", "PRON", "nsubj"),
		tok(1, 1, "want", "want", "VERB", "ROOT"),
		tok(2, 3, "to", "to", "PART", "aux"),
		tok(3, 1, "eat", "eat", "VERB", "xcomp"),
		tok(4, 1, ".", ".", "PUNCT", "punct"),
	}}
}

func IWantWater() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "I", "I", "PRON", "nsubj"),
		tok(1, 1, "want", "want", "VERB", "ROOT"),
		tok(2, 1, "water", "water", "NOUN", "dobj"),
		tok(3, 1, ".", ".", "PUNCT", "punct"),
	}}
}

func PleaseHelpMe() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "Please", "please", "INTJ", "intj"),
		tok(1, 1, "help", "help", "VERB", "ROOT"),
		tok(2, 1, "me", "I", "PRON", "dobj"),
	}}
}

func SitDown() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 0, "Sit", "sit", "VERB", "ROOT"),
		tok(1, 0, "down", "down", "ADV", "prt"),
		tok(2, 0, "!", "!", "PUNCT", "punct"),
	}}
}

func NotComfortable() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "I", "I", "PRON", "nsubj"),
		tok(1, 1, "am", "be", "AUX", "ROOT"),
		tok(2, 1, "not", "not", "PART", "neg"),
		tok(3, 1, "comfortable", "comfortable", "ADJ", "acomp"),
		tok(4, 6, "as", "as", "SCONJ", "mark"),
		tok(5, 6, "there", "there", "PRON", "expl"),
		tok(6, 1, "is", "be", "VERB", "advcl"),
		tok(7, 8, "a", "a", "DET", "det"),
		tok(8, 6, "stranger", "stranger", "NOUN", "attr"),
		tok(9, 8, "in", "in", "ADP", "prep"),
		tok(10, 11, "the", "the", "DET", "det"),
		tok(11, 9, "house", "house", "NOUN", "pobj"),
	}}
}

func WhatIsYourName() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "What", "what", "PRON", "attr"),
		tok(1, 1, "is", "be", "AUX", "ROOT"),
		tok(2, 3, "your", "your", "PRON", "poss"),
		tok(3, 1, "name", "name", "NOUN", "nsubj"),
		tok(4, 1, "?", "?", "PUNCT", "punct"),
	}}
}

func YesterdayISchool() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 2, "Yesterday", "yesterday", "NOUN", "npadvmod"),
		tok(1, 2, "I", "I", "PRON", "nsubj"),
		tok(2, 2, "went", "go", "VERB", "ROOT"),
		tok(3, 2, "to", "to", "ADP", "prep"),
		tok(4, 3, "school", "school", "NOUN", "pobj"),
	}}
}

func Yesterday() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 0, "Yesterday", "yesterday", "NOUN", "ROOT"),
	}}
}

func ISchool() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "I", "I", "PRON", "nsubj"),
		tok(1, 1, "went", "go", "VERB", "ROOT"),
		tok(2, 1, "to", "to", "ADP", "prep"),
		tok(3, 2, "school", "school", "NOUN", "pobj"),
	}}
}

func WhyAreYouFeelingSad() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 3, "Why", "why", "ADV", "advmod"),
		tok(1, 3, "are", "be", "AUX", "aux"),
		tok(2, 3, "you", "you", "PRON", "nsubj"),
		tok(3, 3, "feeling", "feel", "VERB", "ROOT"),
		tok(4, 3, "sad", "sad", "ADJ", "acomp"),
		tok(5, 3, "?", "?", "PUNCT", "punct"),
	}}
}

func IAmFaraan() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "I", "I", "PRON", "nsubj"),
		tok(1, 1, "am", "be", "AUX", "ROOT"),
		tok(2, 1, "Faraan", "Faraan", "PROPN", "attr"),
		tok(3, 1, ".", ".", "PUNCT", "punct"),
	}}
}

func IHaveFever() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "I", "I", "PRON", "nsubj"),
		tok(1, 1, "have", "have", "VERB", "ROOT"),
		tok(2, 1, "fever", "fever", "NOUN", "dobj"),
		tok(3, 1, ".", ".", "PUNCT", "punct"),
	}}
}

// HeSaidSheLeft carries two nominal subjects; the extractor keeps the
// last one seen.
func HeSaidSheLeft() sentence.Sentence {
	return sentence.Sentence{Tokens: []sentence.Token{
		tok(0, 1, "He", "he", "PRON", "nsubj"),
		tok(1, 1, "said", "say", "VERB", "ROOT"),
		tok(2, 3, "she", "she", "PRON", "nsubj"),
		tok(3, 1, "left", "leave", "VERB", "ccomp"),
	}}
}

// Doc bundles every fixture sentence as one annotated doc, the shape the
// corpus annotator loads from disk.
func Doc() sentence.Doc {
	all := []sentence.Sentence{
		BoyEatsApple(),
		AreYouComing(),
		AreYouNotComing(),
		WhatDidHeEat(),
		SheIsNotHappy(),
		IWantToEat(),
		IWantWater(),
		PleaseHelpMe(),
		SitDown(),
		NotComfortable(),
		WhatIsYourName(),
		YesterdayISchool(),
		Yesterday(),
		ISchool(),
		WhyAreYouFeelingSad(),
		IAmFaraan(),
		IHaveFever(),
		HeSaidSheLeft(),
	}

	doc := sentence.Doc{Title: "fixtures"}
	for _, s := range all {
		doc.Tokens = append(doc.Tokens, s.Tokens)
	}
	return doc
}
