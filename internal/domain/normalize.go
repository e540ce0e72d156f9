package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxWordLength is the longest accepted word, in characters.
const MaxWordLength = 70

var wordCharsRe = regexp.MustCompile(`^[A-Za-z-]{2,}$`)

// Canonicalize prepares a word for storage and comparison: it trims
// surrounding whitespace and lower-cases the rest. Canonicalize is idempotent.
func Canonicalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ValidateWord checks raw user input and returns its canonical form.
// Rules are applied in order and the first failing one wins:
//
//	empty after trimming            -> RejectEmpty
//	longer than MaxWordLength       -> RejectTooLong
//	not ASCII letters and hyphens,
//	  shorter than 2, or all hyphens -> RejectNotAlphabetic
//	a hyphen segment shorter than 2 -> RejectInvalidHyphenation
//
// The canonical word is empty unless the reason is RejectNone.
func ValidateWord(raw string) (string, RejectReason) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", RejectEmpty
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return "", RejectTooLong
	}
	if !wordCharsRe.MatchString(word) || strings.Trim(word, "-") == "" {
		return "", RejectNotAlphabetic
	}
	if strings.Contains(word, "-") {
		for _, part := range strings.Split(word, "-") {
			if len(part) < 2 {
				return "", RejectInvalidHyphenation
			}
		}
	}
	return Canonicalize(word), RejectNone
}
