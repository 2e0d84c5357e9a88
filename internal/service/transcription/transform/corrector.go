package transform

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

var (
	envelopeRe   = regexp.MustCompile(`^/([^/]+)/$`)
	longAFinal   = regexp.MustCompile(`ɑː(\s|$)`)
	sharedRepl   = strings.NewReplacer("ɹ", "r", "ɛ", "e", "ɐ", "ə")
	americanRepl = strings.NewReplacer(
		"ɒ", "ɑ",
		"əʊ", "oʊ",
		"ɪə", "ɪr",
		"eə", "er",
		"ʊə", "ʊr",
		"ɜː", "ɜr",
	)
)

// Corrector normalizes a single stored transcription into the symbol set
// used in output: slashes and syllable dots are stripped, variant symbols
// are folded, and American output additionally rhotacizes centring
// diphthongs and long vowels.
type Corrector struct {
	dialect domain.Dialect
}

func NewCorrector(d domain.Dialect) *Corrector {
	return &Corrector{dialect: d}
}

func (c *Corrector) Correct(ipa string) string {
	if m := envelopeRe.FindStringSubmatch(ipa); m != nil {
		ipa = m[1]
	}
	ipa = strings.ReplaceAll(ipa, "/", "")
	ipa = strings.ReplaceAll(ipa, ".", "")
	ipa = sharedRepl.Replace(ipa)

	if c.dialect == domain.DialectAmerican {
		ipa = americanRepl.Replace(ipa)
		ipa = longAFinal.ReplaceAllString(ipa, "ɑr$1")
	}

	return ipa
}
