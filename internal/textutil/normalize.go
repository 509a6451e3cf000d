package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes characters and drops combining marks, so
// accented letters fold to their ASCII base before comparison.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a word to its comparable token form: diacritics folded,
// lowercased, with every non-alphanumeric rune removed. The result may be
// empty; callers filter empty tokens. Normalize is idempotent.
func Normalize(word string) string {
	if word == "" {
		return ""
	}
	if folded, _, err := transform.String(diacriticStripper, word); err == nil {
		word = folded
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Tokenize splits text on whitespace and normalizes each word, dropping
// tokens shorter than minLength. A minLength of zero keeps every non-empty
// token.
func Tokenize(text string, minLength int) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := Normalize(field)
		if token == "" || len(token) < minLength {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
