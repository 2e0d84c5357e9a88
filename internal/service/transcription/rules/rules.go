package rules

import (
	"strings"
)

// contractionRule: contracted forms ("don't", "'s") already encode their own
// reduction, so pair selection is skipped entirely (the strong member is
// kept as-is).
type contractionRule struct{}

func (contractionRule) Name() string { return "contraction" }

func (contractionRule) AppliesTo(word string, _ Context) bool {
	return strings.Contains(word, "'")
}

func (contractionRule) UseWeak(string, Context) bool { return false }

// theRule: "the" is not resolved through pair selection; its allophonic
// variation (ðə vs ði) is handled by a dedicated transform on the joined
// text, where lookahead crosses word boundaries.
type theRule struct{}

func (theRule) Name() string { return "the-variation" }

func (theRule) AppliesTo(word string, _ Context) bool { return word == "the" }

func (theRule) UseWeak(string, Context) bool { return false }

// thereRule: existential "there" (followed by a be-verb) is weak, the
// locative/demonstrative reading is strong.
type thereRule struct{}

var beVerbs = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {},
	"will": {}, "would": {}, "'s": {}, "'re": {}, "'ll": {},
}

func (thereRule) Name() string { return "there" }

func (thereRule) AppliesTo(word string, _ Context) bool { return word == "there" }

func (thereRule) UseWeak(_ string, ctx Context) bool {
	if next, ok := ctx.wordAt(ctx.Index + 1); ok {
		if _, isBe := beVerbs[next]; isBe {
			return true
		}
	}
	return false
}

// thatRule: conjunction/complementizer "that" is weak, the demonstrative
// reading is strong. Detected by a preceding cognition/report verb or by
// a following subject pronoun opening a clause.
type thatRule struct{}

var reportVerbs = map[string]struct{}{
	"know": {}, "think": {}, "believe": {}, "feel": {}, "say": {}, "said": {},
	"tell": {}, "told": {}, "see": {}, "saw": {}, "hear": {}, "heard": {},
	"understand": {}, "realize": {}, "realized": {}, "assume": {}, "suppose": {},
	"hope": {}, "wish": {}, "remember": {}, "forget": {}, "noticed": {},
	"mean": {}, "means": {}, "meant": {}, "show": {}, "shows": {}, "showed": {},
	"prove": {}, "proves": {},
}

var subjectPronouns = map[string]struct{}{
	"he": {}, "she": {}, "it": {}, "they": {}, "we": {}, "you": {}, "i": {},
}

func (thatRule) Name() string { return "that" }

func (thatRule) AppliesTo(word string, _ Context) bool { return word == "that" }

func (thatRule) UseWeak(_ string, ctx Context) bool {
	if prev, ok := ctx.wordAt(ctx.Index - 1); ok {
		if _, isReport := reportVerbs[prev]; isReport {
			return true
		}
	}

	// "that he/she/it ...": a clause follows, so the conjunction reading.
	// Requires at least one token beyond the pronoun.
	if ctx.Index < len(ctx.Tokens)-2 {
		if next, ok := ctx.wordAt(ctx.Index + 1); ok {
			if _, isPronoun := subjectPronouns[next]; isPronoun {
				return true
			}
		}
	}

	return false
}

// haveRule: main-verb "have" (possession, obligation "have to") is strong;
// auxiliary "have" (perfect tenses, fronted questions) is weak. The weak
// form keeps its H after a pause and drops it elsewhere.
type haveRule struct{}

var pastParticiples = map[string]struct{}{
	"been": {}, "done": {}, "gone": {}, "seen": {}, "said": {}, "made": {},
	"come": {}, "taken": {}, "given": {}, "found": {}, "thought": {},
	"worked": {}, "called": {}, "asked": {}, "looked": {}, "used": {},
	"tried": {}, "left": {}, "felt": {}, "kept": {}, "heard": {},
	"brought": {}, "written": {}, "shown": {}, "moved": {}, "played": {},
	"turned": {}, "started": {}, "opened": {}, "closed": {}, "happened": {},
	"become": {}, "known": {}, "put": {}, "told": {}, "helped": {},
	"changed": {}, "wanted": {}, "learned": {}, "lived": {},
}

var possessionObjects = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "my": {}, "your": {}, "his": {}, "her": {},
	"our": {}, "their": {}, "some": {}, "money": {}, "time": {}, "car": {},
	"house": {}, "food": {}, "water": {}, "coffee": {}, "tea": {},
	"breakfast": {}, "lunch": {}, "dinner": {}, "problem": {},
	"question": {}, "idea": {}, "plan": {},
}

var questionSubjects = map[string]struct{}{
	"you": {}, "we": {}, "they": {}, "i": {},
}

func (haveRule) Name() string { return "have" }

func (haveRule) AppliesTo(word string, _ Context) bool { return word == "have" }

func (haveRule) UseWeak(_ string, ctx Context) bool {
	next, hasNext := ctx.wordAt(ctx.Index + 1)

	if hasNext {
		// "have to do": obligation, main verb.
		if next == "to" {
			return false
		}
		// "have a car", "have breakfast": possession/consumption.
		if _, isObject := possessionObjects[next]; isObject {
			return false
		}
		// "have seen": perfect-tense auxiliary.
		if _, isParticiple := pastParticiples[next]; isParticiple {
			return true
		}
	}

	// "Have you done ...?": fronted auxiliary question.
	if ctx.Index == 0 && len(ctx.Tokens) > 2 {
		if second, ok := ctx.wordAt(1); ok {
			if _, isSubject := questionSubjects[second]; isSubject {
				return true
			}
		}
	}

	// Default: main verb, strong.
	return false
}

// WeakForm applies the H-dropping rule: the H is retained sentence-initially
// and after a pause (punctuation within the previous two tokens), dropped
// otherwise.
func (haveRule) WeakForm(_ string, ctx Context) string {
	const (
		hRetained = "həv"
		hDropped  = "əv"
	)

	if ctx.Index == 0 {
		return hRetained
	}

	for i := ctx.Index - 2; i < ctx.Index; i++ {
		if ctx.isPunct(i) {
			return hRetained
		}
	}

	return hDropped
}

// mustRule: "must" is strong under obligation emphasis ("must have done",
// preceded by an emphasis adverb), weak otherwise. The weak form keeps its
// final t before vowels and /j/ and drops it before consonants.
type mustRule struct{}

var emphasisAdverbs = map[string]struct{}{
	"always": {}, "never": {}, "really": {}, "definitely": {},
	"absolutely": {}, "certainly": {},
}

var commonParticiples = map[string]struct{}{
	"done": {}, "been": {}, "gone": {}, "seen": {}, "said": {},
}

func (mustRule) Name() string { return "must" }

func (mustRule) AppliesTo(word string, _ Context) bool { return word == "must" }

func (mustRule) UseWeak(_ string, ctx Context) bool {
	// "must have done": epistemic inference, strong.
	if next, ok := ctx.wordAt(ctx.Index + 1); ok && next == "have" {
		if participle, ok := ctx.wordAt(ctx.Index + 2); ok {
			if _, isParticiple := commonParticiples[participle]; isParticiple {
				return false
			}
		}
	}

	// Preceded by an emphasis adverb: strong.
	if prev, ok := ctx.rawAt(ctx.Index - 1); ok {
		if _, isEmphasis := emphasisAdverbs[prev]; isEmphasis {
			return false
		}
	}

	return true
}

// WeakForm applies t-dropping before consonants. The next word's first
// letter stands in for its initial sound: a vowel letter or "y"
// (approximating /j/) keeps the t. This is a deliberate orthographic
// approximation, not a phonetic lookup.
func (mustRule) WeakForm(_ string, ctx Context) string {
	const (
		withT    = "məst"
		withoutT = "məs"
	)

	next, ok := ctx.wordAt(ctx.Index + 1)
	if !ok || next == "" {
		return withT
	}

	if strings.ContainsRune("aeiouy", rune(next[0])) {
		return withT
	}
	return withoutT
}

// positionalRule is the unconditional fallback: prominent positions
// (sentence start, before a pause, sentence end) are strong, everything
// else defaults to weak.
type positionalRule struct{}

var weakAtStart = map[string]struct{}{
	"the": {}, "a": {}, "an": {},
}

func (positionalRule) Name() string { return "positional" }

func (positionalRule) AppliesTo(string, Context) bool { return true }

func (positionalRule) UseWeak(word string, ctx Context) bool {
	if ctx.Index == 0 {
		if _, ok := weakAtStart[word]; !ok {
			return false
		}
	}

	if ctx.isPunct(ctx.Index + 1) {
		return false
	}

	if ctx.isLast() {
		return false
	}

	return true
}
