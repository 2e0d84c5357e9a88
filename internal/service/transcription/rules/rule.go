// Package rules implements the ordered weak-form rule chain. A rule decides,
// for one word in its sentence context, whether the reduced (weak) or the
// citation (strong) member of a strong/weak pair should be used. Rules are
// evaluated in a fixed priority order and the first applicable rule wins;
// the order is significant and must not be changed.
package rules

import (
	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

// Context is the read-only view a rule receives: the surface text of the
// word under resolution, its index, and the full token sequence for
// lookahead/lookbehind. Rules never mutate the context.
type Context struct {
	Word   string
	Index  int
	Tokens []domain.Token
}

// wordAt returns the normalized word text at index i.
// Returns "", false when i is out of range.
func (c Context) wordAt(i int) (string, bool) {
	if i < 0 || i >= len(c.Tokens) {
		return "", false
	}
	return domain.NormalizeWord(c.Tokens[i].Text), true
}

// rawAt returns the lowercased surface text at index i.
func (c Context) rawAt(i int) (string, bool) {
	if i < 0 || i >= len(c.Tokens) {
		return "", false
	}
	return domain.NormalizeText(c.Tokens[i].Text), true
}

// isPunct reports whether the token at index i is a punctuation run.
func (c Context) isPunct(i int) bool {
	if i < 0 || i >= len(c.Tokens) {
		return false
	}
	return domain.IsPunctuationRun(c.Tokens[i].Text)
}

// isLast reports whether the word under resolution is the last token.
func (c Context) isLast() bool { return c.Index == len(c.Tokens)-1 }

// Rule is one member of the chain. AppliesTo receives the normalized word
// text; when it returns true the rule governs this word and UseWeak decides
// the outcome. No further rules are consulted.
type Rule interface {
	Name() string
	AppliesTo(word string, ctx Context) bool
	UseWeak(word string, ctx Context) bool
}

// WeakFormer is the optional capability of a rule to synthesize a custom
// weak form from the phonetic environment instead of using the pair's
// stored weak member. Queried uniformly by the chain for the governing
// rule whenever its decision is weak.
type WeakFormer interface {
	WeakForm(word string, ctx Context) string
}

// Decision is the outcome of resolving a word against the chain.
type Decision struct {
	// Rule names the rule that governed the word ("" when none matched
	// and the default applied).
	Rule string
	// UseWeak reports whether the weak pair member should be used.
	UseWeak bool
	// CustomWeak, when non-empty, replaces the stored weak member.
	CustomWeak string
}
