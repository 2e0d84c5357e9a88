// Package weakforms holds the fixed table of RP strong/weak dual forms for
// English function words, stored in the "/ strong, weak /" envelope. The
// seeder writes these into the gb column after the CMU pass so that the
// dual form wins over any single CMU-derived form.
package weakforms

import "github.com/heartmarshall/ipa-transcriber/internal/domain"

// forms maps a function word to its RP dual form.
var forms = map[string]string{
	// articles
	"a":  "/ eɪ, ə /",
	"an": "/ æn, ən /",

	// auxiliaries: be
	"am":   "/ æm, əm /",
	"is":   "/ ɪz, s /",
	"are":  "/ ɑː, ə /",
	"was":  "/ wɒz, wəz /",
	"were": "/ wɜː, wə /",

	// auxiliaries: have
	"have": "/ hæv, əv /",
	"has":  "/ hæz, əz /",
	"had":  "/ hæd, əd /",

	// auxiliaries: do
	"do": "/ duː, də /",

	// prepositions
	"of":   "/ ɒv, əv /",
	"to":   "/ tuː, tə /",
	"for":  "/ fɔː, fə /",
	"from": "/ frɒm, frəm /",
	"at":   "/ æt, ət /",

	// conjunctions
	"and": "/ ænd, ən /",

	// pronouns
	"you":  "/ juː, jə /",
	"he":   "/ hiː, hi /",
	"she":  "/ ʃiː, ʃi /",
	"we":   "/ wiː, wi /",
	"me":   "/ miː, mi /",
	"him":  "/ hɪm, ɪm /",
	"her":  "/ hɜː, hə /",
	"us":   "/ ʌs, əs /",
	"them": "/ ðem, ðəm /",

	// common function words
	"that":  "/ ðæt, ðət /",
	"there": "/ ðeə, ðə /",

	// modals
	"will":  "/ wɪl, əl /",
	"would": "/ wʊd, əd /",
	"can":   "/ kæn, kən /",
	"must":  "/ mʌst, məst /",
}

// Entries returns the dual forms as lexicon entries carrying the RP form.
func Entries() []domain.LexiconEntry {
	entries := make([]domain.LexiconEntry, 0, len(forms))
	for word, form := range forms {
		gb := form
		entries = append(entries, domain.LexiconEntry{Word: word, RP: &gb})
	}
	return entries
}
