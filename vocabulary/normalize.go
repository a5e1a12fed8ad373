package vocabulary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops combining marks, so "città"
// indexes as "citta".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize maps a raw wordlist line to the indexed form: trimmed,
// diacritics stripped, lowercased. Returns false if the result is empty or
// contains anything outside a-z (such lines are skipped, not errors).
func Normalize(line string) (string, bool) {
	word := strings.TrimSpace(line)
	if word == "" {
		return "", false
	}
	if stripped, _, err := transform.String(stripMarks, word); err == nil {
		word = stripped
	}
	word = strings.ToLower(word)
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return "", false
		}
	}
	return word, true
}
