package tokenizer

import (
	"reflect"
	"testing"
)

func TestSimpleMode(t *testing.T) {
	tok, err := New(Simple)
	if err != nil {
		t.Fatalf("New(Simple): %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "basic words",
			input:    "cats and dogs",
			expected: []string{"cats", "and", "dogs"},
		},
		{
			name:     "punctuation split class",
			input:    "one-two/three,four.five(six)",
			expected: []string{"one", "two", "three", "four", "five", "six"},
		},
		{
			name:     "mixed case and punctuation stripped",
			input:    "Hello, World!",
			expected: []string{"hello", "world"},
		},
		{
			name:     "non-ascii dropped byte-wise",
			input:    "café latte",
			expected: []string{"caf", "latte"},
		},
		{
			name:     "empty fragments discarded",
			input:    "  --  ,, ..  ",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.TokenizeLine(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("TokenizeLine(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLinguisticMode(t *testing.T) {
	tok, err := New(Linguistic)
	if err != nil {
		t.Fatalf("New(Linguistic): %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "stopwords dropped and stemmed",
			input:    "The quick brown fox jumps",
			expected: []string{"quick", "brown", "fox", "jump"},
		},
		{
			name:     "punctuation tokens filtered by word pattern",
			input:    "Hello, world!",
			expected: []string{"hello", "world"},
		},
		{
			name:     "contraction splits, stopword half dropped",
			input:    "don't stop",
			expected: []string{"n't", "stop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.TokenizeLine(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("TokenizeLine(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeTokenMatchesFirstLineResult(t *testing.T) {
	for _, mode := range []Mode{Simple, Linguistic} {
		tok, err := New(mode)
		if err != nil {
			t.Fatalf("New(%v): %v", mode, err)
		}

		for _, input := range []string{"Dogs", "running", "", "..."} {
			line := tok.TokenizeLine(input)
			term, ok := tok.TokenizeToken(input)

			if len(line) == 0 {
				if ok {
					t.Errorf("mode %v: TokenizeToken(%q) returned ok=true but TokenizeLine produced no terms", mode, input)
				}
				continue
			}

			if !ok || term != line[0] {
				t.Errorf("mode %v: TokenizeToken(%q) = (%q, %v), want (%q, true)", mode, input, term, ok, line[0])
			}
		}
	}
}

func TestUnknownMode(t *testing.T) {
	if _, err := New("bogus"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
