package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeWord prepares a single token for rule matching and lexicon lookup:
// lowercase, keeping only letters, digits, underscore, and apostrophes.
// Surface text shown to the caller is never normalized.
func NormalizeWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// punctuationSet is the fixed set of punctuation characters recognized by
// the tokenizer and rule context.
const punctuationSet = ".,!?;:'-"

// IsPunctuationRun reports whether s consists entirely of characters from
// the fixed punctuation set. Empty strings are not punctuation runs.
func IsPunctuationRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(punctuationSet, r) {
			return false
		}
	}
	return true
}

// IsPunctuationChar reports whether r is in the fixed punctuation set.
func IsPunctuationChar(r rune) bool {
	return strings.ContainsRune(punctuationSet, r)
}
