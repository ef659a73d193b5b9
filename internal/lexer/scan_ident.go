package lexer

import (
	"sns/internal/token"
)

// scanIdent сканирует идентификатор. Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.cursor.PeekRune()
	if sz == 0 || !isIdentStartRune(r) {
		return lx.scanPunct()
	}
	lx.cursor.BumpRune()
	for {
		r2, sz2 := lx.cursor.PeekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.cursor.BumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Span: sp, Text: lx.text(sp)}
}
