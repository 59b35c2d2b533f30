package tokenizer

// englishStopWords returns the fixed English stopword list used by
// linguistic mode, grounded on pkg/text/analyzer.go's defaultStopWords.
func englishStopWords() map[string]bool {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "but", "by",
		"for", "if", "in", "into", "is", "it", "no", "not", "of",
		"on", "or", "such", "that", "the", "their", "then", "there",
		"these", "they", "this", "to", "was", "will", "with",
		"i", "you", "he", "she", "we", "me", "him", "her",
		"us", "them", "what", "which", "who", "when", "where", "why",
		"how", "all", "each", "every", "both", "few", "more", "most",
		"other", "some", "can", "could", "may", "might", "must",
		"shall", "should", "would", "am", "been", "being", "have",
		"has", "had", "do", "does", "did", "doing",
	}

	stopWords := make(map[string]bool, len(words))
	for _, w := range words {
		stopWords[w] = true
	}
	return stopWords
}
