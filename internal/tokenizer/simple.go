package tokenizer

import "strings"

// splitClass is the set of characters simple mode splits lines on,
// in addition to whitespace, grounded on
// original_source/index/processor.py's `re.split("\s|-|/|,|\.|\(|\)", ...)`.
const splitClass = "-/,.()"

// simplePunctuation is stripped from each fragment after splitting,
// matching the Python original's `str.maketrans('', '', string.punctuation)`.
const simplePunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func tokenizeSimpleLine(line string) []string {
	trimmed := strings.TrimSpace(line)

	// Drop all non-ASCII bytes (byte-level filter, not codepoint-aware).
	ascii := make([]byte, 0, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < 0x80 {
			ascii = append(ascii, trimmed[i])
		}
	}

	fragments := strings.FieldsFunc(string(ascii), func(r rune) bool {
		if r <= 0x7f && (r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f') {
			return true
		}
		return strings.ContainsRune(splitClass, r)
	})

	terms := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		term := simpleProcessToken(frag)
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// simpleProcessToken strips ASCII punctuation and lowercases a fragment,
// discarding it if the result is empty or whitespace-only.
func simpleProcessToken(token string) string {
	stripped := strings.TrimSpace(token)
	stripped = strings.Map(func(r rune) rune {
		if strings.ContainsRune(simplePunctuation, r) {
			return -1
		}
		return r
	}, stripped)
	stripped = strings.ToLower(stripped)
	if stripped == "" || strings.TrimSpace(stripped) == "" {
		return ""
	}
	return stripped
}
