package transform

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

var (
	finalVowel = regexp.MustCompile(`[` + linkingVowels + `]ː?$`)
	// Words whose final r is written but treated as non-linking.
	linkingExceptions = map[string]struct{}{
		"more": {}, "sure": {}, "pure": {},
	}
)

// LinkingR inserts the linking r of non-rhotic speech: a word spelled with
// an r, transcribed with a final vowel, surfaces its r when the next word
// begins with a vowel. Runs on the parallel word and transcription lists
// before joining, since it needs both spellings and sounds.
type LinkingR struct{}

// Apply rewrites transcriptions in place. words and transcriptions are the
// same length and index-aligned with the token sequence.
func (LinkingR) Apply(words []string, transcriptions []string) {
	for i := 0; i < len(words)-1; i++ {
		next := words[i+1]
		if domain.IsPunctuationRun(next) {
			continue
		}

		word := domain.NormalizeWord(words[i])
		if !strings.Contains(word, "r") {
			continue
		}
		if _, skip := linkingExceptions[word]; skip {
			continue
		}

		cur := transcriptions[i]
		if cur == "" || strings.HasSuffix(cur, "r") {
			continue
		}
		if !finalVowel.MatchString(cur) {
			continue
		}

		nextIPA := transcriptions[i+1]
		if nextIPA == "" || !strings.ContainsRune(linkingVowels, firstRune(nextIPA)) {
			continue
		}

		transcriptions[i] = cur + "r"
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
