package ethiopic

import "strings"

// asciiPunctuation lists the removable ASCII marks. Backslash is not a member.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[]^_`{|}~"

// ethiopicPunctuation lists the removable Ethiopic marks:
// ። full stop, ፣ comma, ፤ semicolon, ፥ colon, ፦ preface colon,
// ፧ question mark, ፨ paragraph separator.
// The wordspace ፡ (U+1361) is kept.
const ethiopicPunctuation = "።፣፤፥፦፧፨"

var punctuation = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(asciiPunctuation)+7)
	for _, r := range asciiPunctuation + ethiopicPunctuation {
		set[r] = struct{}{}
	}
	return set
}()

// numerals maps the Ge'ez numerals one through ten to Arabic digits.
var numerals = map[rune]string{
	'፩': "1",
	'፪': "2",
	'፫': "3",
	'፬': "4",
	'፭': "5",
	'፮': "6",
	'፯': "7",
	'፰': "8",
	'፱': "9",
	'፲': "10",
}

// numeralReplacer is built once; strings.Replacer is safe for concurrent use.
var numeralReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(numerals))
	for glyph, digits := range numerals {
		pairs = append(pairs, string(glyph), digits)
	}
	return strings.NewReplacer(pairs...)
}()

// IsPunctuation reports whether r is removed by the punctuation stage.
func IsPunctuation(r rune) bool {
	_, ok := punctuation[r]
	return ok
}
