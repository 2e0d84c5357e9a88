package transform

import "regexp"

// ðə followed by a vowel-initial transcription becomes ði. Anchored to a
// word boundary by hand: RE2's \b is ASCII-only and never fires before ð.
var theBeforeVowel = regexp.MustCompile(`(^|\s)ðə ([` + theVowels + `])`)

// TheVariation applies the allophonic schwa/iː alternation of "the" on the
// joined line, where the following word's first sound is visible.
type TheVariation struct{}

func (TheVariation) Name() string { return "the-variation" }

func (TheVariation) Apply(text string) string {
	return theBeforeVowel.ReplaceAllString(text, "${1}ði ${2}")
}
