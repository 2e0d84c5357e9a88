package transform

import "strings"

var stressRepl = strings.NewReplacer("ˈ", "", "ˌ", "")

// StressRemover strips primary and secondary stress marks. Always the last
// stage when enabled; idempotent.
type StressRemover struct{}

func (StressRemover) Name() string { return "stress-remover" }

func (StressRemover) Apply(text string) string {
	return stressRepl.Replace(text)
}
