package bag

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isAlpha reports whether r has the Unicode Alphabetic property.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

func notAlpha(r rune) bool {
	return !isAlpha(r)
}

// isUpper reports whether r has the Unicode Uppercase property or is a
// titlecase letter. Circled letters and Roman numerals are uppercase
// through Other_Uppercase only.
func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsTitle(r) || unicode.Is(unicode.Other_Uppercase, r)
}

func isCased(r rune) bool {
	return isUpper(r) || unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// lowerWord lowercases a valid word. A capital sigma ending a word after a
// cased letter becomes the final form ς, so "ΟΔΟΣ" is stored as "οδος".
func lowerWord(word string) string {
	lower := strings.ToLower(word)
	if !strings.HasSuffix(word, "Σ") {
		return lower
	}
	prev, size := utf8.DecodeLastRuneInString(strings.TrimSuffix(word, "Σ"))
	if size == 0 || !isCased(prev) {
		return lower
	}
	return strings.TrimSuffix(lower, "σ") + "ς"
}

// IsWord reports whether s is a normalized word: non-empty, alphabetic only
// and without uppercase runes. These are the only keys a Bag ever stores.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isAlpha(r) || isUpper(r) {
			return false
		}
	}
	return true
}

// normalize cleans a single whitespace-delimited token. Leading and trailing
// non-alphabetic runes are trimmed; anything non-alphabetic left inside the
// token rejects it.
func normalize(token string) (string, bool) {
	word := strings.TrimFunc(token, notAlpha)
	if word == "" {
		return "", false
	}
	upper := false
	for _, r := range word {
		if !isAlpha(r) {
			return "", false
		}
		if isUpper(r) {
			upper = true
		}
	}
	if upper {
		// Only allocate when there is something to lower.
		word = lowerWord(word)
	}
	return word, true
}

// Words yields the valid normalized words of text in input order.
// Invalid tokens are skipped.
func Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range strings.FieldsSeq(text) {
			word, ok := normalize(token)
			if !ok {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}
