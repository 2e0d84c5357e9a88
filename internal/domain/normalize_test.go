package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase kept", "have", "have"},
		{"uppercase folded", "Have", "have"},
		{"apostrophe kept", "don't", "don't"},
		{"trailing punctuation stripped", "there,", "there"},
		{"hyphen stripped", "well-known", "wellknown"},
		{"empty", "", ""},
		{"pure punctuation", "...", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, NormalizeWord(tc.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", NormalizeText("  Hello   World "))
	assert.Equal(t, "", NormalizeText("   "))
	assert.Equal(t, "don't", NormalizeText("Don't"))
}

func TestIsPunctuationRun(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPunctuationRun(","))
	assert.True(t, IsPunctuationRun("?!"))
	assert.True(t, IsPunctuationRun("'"))
	assert.False(t, IsPunctuationRun("a,"))
	assert.False(t, IsPunctuationRun(""))
	assert.False(t, IsPunctuationRun("word"))
}

func TestLexiconEntry_Form(t *testing.T) {
	t.Parallel()

	us := "kɑr"
	gb := "kɑː"

	both := LexiconEntry{Word: "car", American: &us, RP: &gb}
	assert.Equal(t, "kɑr", both.Form(DialectAmerican))
	assert.Equal(t, "kɑː", both.Form(DialectRP))

	usOnly := LexiconEntry{Word: "car", American: &us}
	assert.Equal(t, "kɑr", usOnly.Form(DialectRP), "falls back to the other dialect")

	empty := LexiconEntry{Word: "car"}
	assert.Equal(t, "", empty.Form(DialectAmerican))
	assert.False(t, empty.HasAnyForm())
	assert.True(t, both.HasAnyForm())
}

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Dialect
		ok       bool
	}{
		{"american", DialectAmerican, true},
		{"American", DialectAmerican, true},
		{"us", DialectAmerican, true},
		{"rp", DialectRP, true},
		{"UK", DialectRP, true},
		{"british", DialectRP, true},
		{"klingon", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		d, ok := ParseDialect(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.expected, d, "input %q", tc.input)
	}
}
