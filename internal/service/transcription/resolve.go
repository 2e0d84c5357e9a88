package transcription

import (
	"strings"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
	"github.com/heartmarshall/ipa-transcriber/internal/service/transcription/rules"
)

// alwaysStrong lists words that keep their citation form in every position,
// checked before the rule chain runs.
var alwaysStrong = map[string]struct{}{
	"i": {}, "my": {}, "may": {}, "might": {},
	"ought": {}, "by": {}, "so": {}, "while": {},
}

// chooseForm picks the final per-word transcription from a stored form.
// Single forms pass through untouched. For dual forms the always-strong
// pre-filter runs first; only then is the rule chain consulted, and a
// governing rule may supply its own weak realization.
func (s *Service) chooseForm(word string, form domain.ParsedForm, ctx rules.Context, useWeakForms bool) string {
	if !form.Dual {
		return form.Single
	}
	if !useWeakForms {
		return form.Strong
	}

	if _, ok := alwaysStrong[word]; ok {
		return form.Strong
	}
	if strings.Contains(word, "'") {
		return form.Strong
	}

	d := s.chain.Resolve(word, ctx)
	if !d.UseWeak {
		return form.Strong
	}
	if d.CustomWeak != "" {
		return d.CustomWeak
	}
	return form.Weak
}
