package classifier

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it into word tokens: maximal runs of
// letters, numbers and underscores. Everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// NGrams returns the word n-grams of tokens for n in [1, maxN],
// unigrams first. Grams are joined with a single space.
func NGrams(tokens []string, maxN int) []string {
	if maxN < 1 {
		maxN = 1
	}
	grams := make([]string, 0, len(tokens)*maxN)
	grams = append(grams, tokens...)
	for n := 2; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}
