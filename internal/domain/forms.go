package domain

import "strings"

// ParsedForm is the result of interpreting a raw dialect form string.
// A form is either a single transcription or a strong/weak pair stored
// in the dual-form envelope "/ strong, weak /".
type ParsedForm struct {
	// Single holds the transcription when the raw text is not a dual form.
	Single string
	// Strong and Weak hold the pair members when Dual is true.
	Strong string
	Weak   string
	// Dual reports whether the raw text carried the strong/weak envelope.
	Dual bool
}

const (
	formPrefix    = "/ "
	formSeparator = ", "
	formSuffix    = " /"
)

// ParseForm interprets a raw phonetic string from the lexicon.
// The dual-form envelope is exactly: starts with "/ ", ends with " /",
// and the stripped content contains the separator ", ". Anything else
// is a single form, returned verbatim. This is a purely syntactic
// decision; no phonological inference happens here.
func ParseForm(raw string) ParsedForm {
	if !strings.HasPrefix(raw, formPrefix) || !strings.HasSuffix(raw, formSuffix) || len(raw) < len(formPrefix)+len(formSuffix) {
		return ParsedForm{Single: raw}
	}

	content := raw[len(formPrefix) : len(raw)-len(formSuffix)]

	strong, weak, found := strings.Cut(content, formSeparator)
	if !found {
		return ParsedForm{Single: strings.TrimSpace(content)}
	}

	return ParsedForm{
		Strong: strings.TrimSpace(strong),
		Weak:   strings.TrimSpace(weak),
		Dual:   true,
	}
}

// Envelope re-joins a dual form into its wire representation.
// For single forms it returns the text unchanged.
func (f ParsedForm) Envelope() string {
	if !f.Dual {
		return f.Single
	}
	return formPrefix + f.Strong + formSeparator + f.Weak + formSuffix
}
