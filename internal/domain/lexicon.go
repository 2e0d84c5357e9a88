package domain

import "time"

// LexiconEntry is one word's raw phonetic data as stored in the lexicon.
// Either dialect form may be absent; a word with both absent is not stored.
type LexiconEntry struct {
	Word      string
	American  *string
	RP        *string
	UpdatedAt time.Time
}

// Form returns the raw form for the requested dialect, falling back to the
// other dialect when the requested one is absent. Returns "" when neither
// form is present.
func (e LexiconEntry) Form(d Dialect) string {
	primary, secondary := e.American, e.RP
	if d == DialectRP {
		primary, secondary = e.RP, e.American
	}
	if primary != nil && *primary != "" {
		return *primary
	}
	if secondary != nil && *secondary != "" {
		return *secondary
	}
	return ""
}

// HasAnyForm reports whether at least one dialect form is present.
func (e LexiconEntry) HasAnyForm() bool {
	return (e.American != nil && *e.American != "") || (e.RP != nil && *e.RP != "")
}
