package domain

// TranscriptionOptions controls how a transcription request is processed.
type TranscriptionOptions struct {
	Dialect      Dialect
	UseWeakForms bool
	IgnoreStress bool
}

// TranscriptionResult is the outcome of transcribing a text.
// NotFound lists the original word tokens that had no lexicon entry,
// in first-occurrence order, without duplicates. Such words pass through
// to the output as their literal input text.
type TranscriptionResult struct {
	IPA      string
	NotFound []string
}
