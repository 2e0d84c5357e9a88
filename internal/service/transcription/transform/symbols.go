package transform

import (
	"regexp"
	"strings"
)

var (
	innerStop = regexp.MustCompile(`\s*\.\s*`)
	finalStop = regexp.MustCompile(`\.$`)
)

// SymbolTransform rewrites sentence punctuation into the pause notation of
// British transcription practice: minor breaks become /, major breaks //,
// and terminal marks are parenthesized.
type SymbolTransform struct{}

func (SymbolTransform) Name() string { return "symbols" }

func (SymbolTransform) Apply(text string) string {
	text = strings.ReplaceAll(text, "!", "(!)")
	text = strings.ReplaceAll(text, "?", "(?)")
	text = strings.ReplaceAll(text, ",", " /")
	text = innerStop.ReplaceAllString(text, " // ")
	text = finalStop.ReplaceAllString(text, " //")
	return strings.TrimSpace(text)
}
