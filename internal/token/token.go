package token

import (
	"sns/internal/source"
)

// Token represents a single token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == IntLit || t.Kind == StringLit
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// NewlineBefore reports whether a line break separates this token from the previous one.
func (t Token) NewlineBefore() bool {
	for _, tv := range t.Leading {
		if tv.BreaksLine() {
			return true
		}
	}
	return false
}
