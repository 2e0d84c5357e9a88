package domain

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenPunctuation
)

// Token is one unit of tokenized input text: a word (possibly with an
// internal apostrophe) or a single punctuation character. Index is the
// token's position in its sequence.
type Token struct {
	Text  string
	Index int
	Kind  TokenKind
}

// IsPunctuation reports whether the token is a punctuation token.
func (t Token) IsPunctuation() bool {
	return t.Kind == TokenPunctuation
}
