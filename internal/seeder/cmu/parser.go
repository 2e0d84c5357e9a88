// Package cmu parses CMU Pronouncing Dictionary files into IPA lexicon
// entries. Pure function: file path in, domain structs out. No database
// dependencies. CMU is American English, so parsed forms populate the US
// column only.
package cmu

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// arpabetMap maps ARPAbet phonemes (without stress markers) to IPA symbols.
var arpabetMap = map[string]string{
	"AA": "ɑ",  // ɑ
	"AE": "æ",  // æ
	"AH": "ʌ",  // ʌ
	"AO": "ɔ",  // ɔ
	"AW": "aʊ", // aʊ
	"AY": "aɪ", // aɪ
	"B":  "b",
	"CH": "tʃ", // tʃ
	"D":  "d",
	"DH": "ð", // ð
	"EH": "ɛ", // ɛ
	"ER": "ɝ", // ɝ
	"EY": "eɪ", // eɪ
	"F":  "f",
	"G":  "ɡ", // ɡ
	"HH": "h",
	"IH": "ɪ", // ɪ
	"IY": "i",
	"JH": "dʒ", // dʒ
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "ŋ", // ŋ
	"OW": "oʊ", // oʊ
	"OY": "ɔɪ", // ɔɪ
	"P":  "p",
	"R":  "ɹ", // ɹ
	"S":  "s",
	"SH": "ʃ", // ʃ
	"T":  "t",
	"TH": "θ", // θ
	"UH": "ʊ", // ʊ
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "ʒ", // ʒ
}

// IPATranscription holds a single IPA transcription with its variant index.
type IPATranscription struct {
	IPA          string // e.g., "/haʊs/"
	VariantIndex int    // 0 for primary, 1 for (2), 2 for (3), etc.
}

// ParseResult holds the parsed CMU dictionary data.
type ParseResult struct {
	Pronunciations map[string][]IPATranscription // normalizedWord → pronunciations
	Stats          Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// Parse reads a CMU dict file and returns parsed pronunciations.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	result := ParseResult{
		Pronunciations: make(map[string][]IPATranscription),
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := scanner.Text()

		word, ipa, err := parseLine(line)
		if err == errSkipLine {
			if strings.HasPrefix(line, ";;;") {
				result.Stats.CommentLines++
			}
			continue
		}
		if err != nil {
			continue
		}

		result.Stats.ParsedLines++
		result.Pronunciations[word] = append(result.Pronunciations[word], ipa)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.UniqueWords = len(result.Pronunciations)
	return result, nil
}

// ToLexiconEntries converts parsed CMU data into lexicon entries carrying
// the US form. Only the primary pronunciation of each word is kept; the
// (2), (3) variants are alternates the lexicon does not store.
func (r ParseResult) ToLexiconEntries() []domain.LexiconEntry {
	entries := make([]domain.LexiconEntry, 0, len(r.Pronunciations))

	for word, ipas := range r.Pronunciations {
		var primary *IPATranscription
		for i := range ipas {
			if ipas[i].VariantIndex == 0 {
				primary = &ipas[i]
				break
			}
		}
		if primary == nil {
			continue
		}

		us := primary.IPA
		entries = append(entries, domain.LexiconEntry{Word: word, American: &us})
	}

	return entries
}

// arpabetToIPA converts an ARPAbet phoneme (without stress) to its IPA equivalent.
func arpabetToIPA(phoneme string) (string, bool) {
	ipa, ok := arpabetMap[phoneme]
	return ipa, ok
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}

// phonemesToIPA converts a slice of ARPAbet phonemes to an IPA transcription string.
// Stress markers are stripped before lookup. Result is wrapped in slashes.
func phonemesToIPA(phonemes []string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, p := range phonemes {
		stripped := stripStress(p)
		ipa, ok := arpabetToIPA(stripped)
		if ok {
			b.WriteString(ipa)
		}
	}
	b.WriteByte('/')
	return b.String()
}

// parseLine parses a single line from a CMU dict file.
// Returns the normalized word, an IPATranscription, or errSkipLine for comments/empty lines.
func parseLine(line string) (string, IPATranscription, error) {
	// Skip empty lines.
	if line == "" {
		return "", IPATranscription{}, errSkipLine
	}

	// Skip comment lines.
	if strings.HasPrefix(line, ";;;") {
		return "", IPATranscription{}, errSkipLine
	}

	// CMU format: WORD  PHONEME1 PHONEME2 ... (two spaces between word and phonemes).
	parts := strings.SplitN(line, "  ", 2)
	if len(parts) != 2 {
		return "", IPATranscription{}, errSkipLine
	}

	rawWord := strings.TrimSpace(parts[0])
	phonemesStr := strings.TrimSpace(parts[1])

	if rawWord == "" || phonemesStr == "" {
		return "", IPATranscription{}, errSkipLine
	}

	word, variantIdx := parseWordAndVariant(rawWord)
	phonemes := strings.Fields(phonemesStr)
	ipa := phonemesToIPA(phonemes)

	return word, IPATranscription{
		IPA:          ipa,
		VariantIndex: variantIdx,
	}, nil
}

// parseWordAndVariant splits a raw CMU word like "HOUSE(2)" into
// the normalized word and variant index.
// Primary pronunciation has variant index 0, "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return domain.NormalizeWord(raw), 0
	}

	word := raw[:idx]
	// Extract number between parentheses.
	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return domain.NormalizeWord(raw), 0
	}

	numStr := raw[idx+1 : idx+end]
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return domain.NormalizeWord(raw), 0
	}

	// (2) → variant index 1, (3) → variant index 2, etc.
	return domain.NormalizeWord(word), n - 1
}
