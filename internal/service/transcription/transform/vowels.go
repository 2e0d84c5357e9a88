package transform

// Vowel inventories used by the transforms. The two sets differ because
// they approximate different environments: allophonic "the" variation keys
// on the following vowel quality, linking r on syllable-final vowels.
const (
	theVowels     = "æɑɒɔʊuiɪeəʌɜaɛ"
	linkingVowels = "æɑɒɔʊuɪieoəʌɜaɛœ"
)
