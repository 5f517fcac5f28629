package tokenize

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer(DefaultRussianStopwords())

	tokens := tok.Tokenize("кот кот собака кот собака и мышь")

	want := []string{"кот", "кот", "собака", "кот", "собака", "мышь"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeStopwordFiltering(t *testing.T) {
	tok := NewTokenizer([]string{"и", "в", "на"})

	tokens := tok.Tokenize("кот и пёс в доме на крыше")

	for _, w := range tokens {
		if w == "и" || w == "в" || w == "на" {
			t.Errorf("stopword %q should be filtered", w)
		}
	}
	if len(tokens) != 4 {
		t.Errorf("expected 4 tokens, got %d: %v", len(tokens), tokens)
	}
}

func TestTokenizeCaseInsensitive(t *testing.T) {
	tok := NewTokenizer([]string{"и"})

	tokens := tok.Tokenize("Кот И СОБАКА")

	want := []string{"кот", "собака"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
	for _, w := range tokens {
		if w != strings.ToLower(w) {
			t.Errorf("token %q should be lower-cased", w)
		}
	}
}

func TestTokenizeMixedAlphabets(t *testing.T) {
	tok := NewTokenizer(nil)

	tokens := tok.Tokenize("word слово ёж word2go")

	// digits split runs: "word2go" yields "word" and "go"
	want := []string{"word", "слово", "ёж", "word", "go"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizePunctuationAndDigits(t *testing.T) {
	tok := NewTokenizer(nil)

	tokens := tok.Tokenize("12345 ... !!! --- 000")
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestTokenizeEmptyResult(t *testing.T) {
	tok := NewTokenizer([]string{"и", "а"})

	// only stopwords and punctuation: valid empty result
	tokens := tok.Tokenize("и, а... И! А?")
	if len(tokens) != 0 {
		t.Errorf("expected empty token sequence, got %v", tokens)
	}
}

func TestTokenizeYo(t *testing.T) {
	tok := NewTokenizer(nil)

	tokens := tok.Tokenize("Ёлка ёж")

	want := []string{"ёлка", "ёж"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tok := NewTokenizer(DefaultRussianStopwords())
	text := "кот собака и мышь кот"

	first := tok.Tokenize(text)
	second := tok.Tokenize(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenizing identical input twice differs: %v vs %v", first, second)
	}
}
