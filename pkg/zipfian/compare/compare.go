// Package compare runs the tokenize → rank → fit pipeline over a batch
// of documents and assembles per-document summaries for reporting.
package compare

import (
	"fmt"

	"github.com/lexstat/zipfian/pkg/zipfian/fit"
	"github.com/lexstat/zipfian/pkg/zipfian/internalerr"
	"github.com/lexstat/zipfian/pkg/zipfian/rank"
	"github.com/lexstat/zipfian/pkg/zipfian/tokenize"
)

// TextSource supplies already-decoded text for a named document.
// Encoding detection and fallback are the source's responsibility.
type TextSource interface {
	Text(name string) (string, error)
}

// Policy controls how a batch reacts when a document's text cannot be
// obtained.
type Policy int

const (
	// FailFast aborts the batch on the first failed document.
	FailFast Policy = iota
	// SkipAndContinue records the failure on the summary and moves on.
	SkipAndContinue
)

// DocumentSummary aggregates one document's analysis results. It is
// created once per document and never mutated afterward.
type DocumentSummary struct {
	Name string

	// TotalTokens counts tokens after stopword filtering.
	TotalTokens int
	// UniqueTokens counts the distinct vocabulary after filtering.
	UniqueTokens int
	// TopN is the cutoff applied to the ranked vocabulary; 0 means no
	// limit was configured.
	TopN int

	Items []rank.RankedItem
	Fit   fit.Fit

	// Err is set only under SkipAndContinue when the text source
	// failed for this document; the statistical fields are zero then.
	Err error
}

// Comparator analyzes documents independently with a shared tokenizer
// and top-N cutoff. Documents are processed strictly sequentially in
// input order; no state is shared between them.
type Comparator struct {
	tokenizer *tokenize.Tokenizer
	topN      int
	policy    Policy
}

// New creates a comparator. topN must be non-negative; 0 disables the
// cutoff.
func New(tokenizer *tokenize.Tokenizer, topN int, policy Policy) (*Comparator, error) {
	if tokenizer == nil {
		return nil, fmt.Errorf("%w: nil tokenizer", internalerr.ErrInvalidInput)
	}
	if topN < 0 {
		return nil, fmt.Errorf("%w: top-n must be non-negative, got %d", internalerr.ErrInvalidInput, topN)
	}
	return &Comparator{tokenizer: tokenizer, topN: topN, policy: policy}, nil
}

// Analyze runs the full pipeline over one document's decoded text.
// A document yielding no tokens produces a valid zero-valued summary.
func (c *Comparator) Analyze(name, text string) DocumentSummary {
	tokens := c.tokenizer.Tokenize(text)
	items := rank.Rank(tokens, c.topN)

	return DocumentSummary{
		Name:         name,
		TotalTokens:  len(tokens),
		UniqueTokens: len(rank.Count(tokens)),
		TopN:         c.topN,
		Items:        items,
		Fit:          fit.LeastSquares(items),
	}
}

// Compare analyzes the named documents in order, pulling text from the
// source. The returned slice preserves input order. Under FailFast the
// first source failure aborts the batch; under SkipAndContinue the
// failed document is included with Err set and analysis continues.
func (c *Comparator) Compare(src TextSource, names []string) ([]DocumentSummary, error) {
	summaries := make([]DocumentSummary, 0, len(names))

	for _, name := range names {
		text, err := src.Text(name)
		if err != nil {
			if c.policy == FailFast {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
			summaries = append(summaries, DocumentSummary{Name: name, TopN: c.topN, Err: err})
			continue
		}
		summaries = append(summaries, c.Analyze(name, text))
	}

	return summaries, nil
}
