package tokenize

import (
	"strings"
	"unicode"
)

// Tokenizer extracts normalized word tokens from raw text.
//
// A token is a maximal run of letters from the analysis alphabet
// (Latin a-z, Cyrillic а-я and ё), lower-cased. Tokens found in the
// configured stopword set are dropped. The stopword set is fixed at
// construction time; a Tokenizer is safe for reuse across documents.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
// Stopwords are matched case-insensitively.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized tokens, removing stopwords.
// Tokens come back in document order. A result with no tokens is a
// valid outcome, not an error.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		r = unicode.ToLower(r)
		if isWordRune(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			if word := current.String(); !t.isStopword(word) {
				tokens = append(tokens, word)
			}
			current.Reset()
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := current.String(); !t.isStopword(word) {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// isWordRune reports whether r belongs to the analysis alphabet.
// The rune is already lower-cased by the caller.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'а' && r <= 'я':
		return true
	case r == 'ё':
		return true
	}
	return false
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}
