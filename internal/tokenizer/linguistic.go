package tokenizer

import (
	"regexp"
	"strings"
)

// contractionSuffixes splits common English contractions into separate
// tokens the way a Penn-Treebank-style tokenizer does (e.g. "don't" ->
// "do", "n't"), approximating original_source/index/processor.py's use
// of nltk's word_tokenize ahead of stemming.
var contractionSuffixes = strings.NewReplacer(
	"n't", " n't",
	"'re", " 're",
	"'ve", " 've",
	"'ll", " 'll",
	"'d", " 'd",
	"'s", " 's",
	"'m", " 'm",
)

var wordOrPunct = regexp.MustCompile(`[A-Za-z0-9]+(?:'[A-Za-z]+)?|[^\sA-Za-z0-9]`)

// nonWordPrefix matches spec §4.1's `\W?\w+` filter: at least one word
// character, optionally preceded by a single non-word character.
var nonWordPrefix = regexp.MustCompile(`^\W?\w+`)

func wordTokenize(line string) []string {
	expanded := contractionSuffixes.Replace(line)
	return wordOrPunct.FindAllString(expanded, -1)
}

func (t *Tokenizer) tokenizeLinguisticLine(line string) []string {
	tokens := wordTokenize(line)

	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if t.stopword[strings.ToLower(tok)] {
			continue
		}

		stemmed := t.stemmer.stem(tok)

		if !nonWordPrefix.MatchString(stemmed) {
			continue
		}

		terms = append(terms, stemmed)
	}
	return terms
}
