// Package tokenizer turns raw corpus lines into normalized index terms.
//
// Two modes are supported (spec §4.1): Simple, a fast byte-level ASCII
// splitter, and Linguistic, a stopword-filtered, Porter-stemmed pipeline.
// The mode is fixed for the lifetime of a Tokenizer so that a lexicon
// built under one mode is always queried under the same mode.
package tokenizer

import "fmt"

// Mode selects the tokenization pipeline.
type Mode string

const (
	Simple     Mode = "simple"
	Linguistic Mode = "linguistic"
)

// Tokenizer is a pure function of (mode, input) -> terms.
type Tokenizer struct {
	mode     Mode
	stemmer  *stemmer
	stopword map[string]bool
}

// New constructs a Tokenizer for the given mode.
func New(mode Mode) (*Tokenizer, error) {
	switch mode {
	case Simple:
		return &Tokenizer{mode: Simple}, nil
	case Linguistic:
		return &Tokenizer{
			mode:     Linguistic,
			stemmer:  newStemmer(),
			stopword: englishStopWords(),
		}, nil
	default:
		return nil, fmt.Errorf("tokenizer: unknown mode %q", mode)
	}
}

// Mode reports which pipeline this Tokenizer runs.
func (t *Tokenizer) Mode() Mode {
	return t.mode
}

// TokenizeLine turns a line of raw text into a sequence of normalized terms.
func (t *Tokenizer) TokenizeLine(line string) []string {
	switch t.mode {
	case Simple:
		return tokenizeSimpleLine(line)
	case Linguistic:
		return t.tokenizeLinguisticLine(line)
	default:
		return nil
	}
}

// TokenizeToken normalizes a single user-supplied token for query-time
// lookup. It is defined as the first element of TokenizeLine applied to
// the same input, so indexed and queried terms always match exactly.
func (t *Tokenizer) TokenizeToken(token string) (string, bool) {
	terms := t.TokenizeLine(token)
	if len(terms) == 0 {
		return "", false
	}
	return terms[0], true
}
