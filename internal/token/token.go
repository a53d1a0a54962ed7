package token

import (
	"github.com/redindelible/adze/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Loc  source.Location
	// LeadingSpace is set when whitespace or a newline immediately precedes
	// the token. The parser relies on it to join '-' '>' into an arrow.
	LeadingSpace bool
}

// New builds a token.
func New(kind Kind, text string, loc source.Location, leadingSpace bool) Token {
	return Token{Kind: kind, Text: text, Loc: loc, LeadingSpace: leadingSpace}
}

// EOFToken returns the synthetic end-of-file token for f.
func EOFToken(f *source.File) Token {
	return Token{Kind: EOF, Loc: source.EOFLocation(f)}
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind.IsKeyword()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool {
	return t.Kind == Identifier
}
