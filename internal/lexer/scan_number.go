package lexer

import (
	"sns/internal/diag"
	"sns/internal/token"
)

// Только десятичные целые: [0-9]+. Ведущие нули допустимы ("062"), это обычный вид
// литералов после записи форматтером. Знак '-': отдельный токен, его склеивает парсер.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// "12px", "1.5": не число этого языка
	if b := lx.cursor.Peek(); b == '.' || isIdentStartByte(b) {
		for b := lx.cursor.Peek(); b == '.' || isIdentContinueByte(b); b = lx.cursor.Peek() {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "Invalid number")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
}
