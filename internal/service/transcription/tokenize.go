package transcription

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

// tokenRe matches either a word run with an optional single internal
// apostrophe group ("don't", "o'clock") or one punctuation character.
// Everything else (whitespace included) is dropped.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+(?:'[\p{L}\p{N}_]+)?|[.,!?;:'-]`)

// Tokenize splits input into word and punctuation tokens, order preserved.
func Tokenize(input string) []domain.Token {
	matches := tokenRe.FindAllString(input, -1)
	tokens := make([]domain.Token, 0, len(matches))
	for i, m := range matches {
		kind := domain.TokenWord
		if domain.IsPunctuationRun(m) {
			kind = domain.TokenPunctuation
		}
		tokens = append(tokens, domain.Token{Text: m, Index: i, Kind: kind})
	}
	return tokens
}

var spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:'-])`)

// Join glues per-token output back into a line: tokens are space-separated
// and punctuation re-attaches to the preceding token.
func Join(parts []string) string {
	return spaceBeforePunct.ReplaceAllString(strings.Join(parts, " "), "$1")
}
