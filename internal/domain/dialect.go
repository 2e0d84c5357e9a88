package domain

import "strings"

// Dialect represents the phonological variety of English used for a transcription.
// American is the rhotic (primary) variety, RP the non-rhotic (secondary) one.
type Dialect string

const (
	DialectAmerican Dialect = "american"
	DialectRP       Dialect = "rp"
)

func (d Dialect) String() string { return string(d) }

func (d Dialect) IsValid() bool {
	switch d {
	case DialectAmerican, DialectRP:
		return true
	}
	return false
}

// ParseDialect converts a user-supplied dialect string into a Dialect.
// Matching is case-insensitive; anything starting with "a" maps to American,
// "rp" maps to RP. Unknown values return false.
func ParseDialect(s string) (Dialect, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "american", "us", "a":
		return DialectAmerican, true
	case "rp", "british", "uk":
		return DialectRP, true
	}
	return "", false
}
