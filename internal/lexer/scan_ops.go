package lexer

import (
	"sns/internal/diag"
	"sns/internal/token"
)

var punct = map[byte]token.Kind{
	'=': token.Assign,
	';': token.Semicolon,
	',': token.Comma,
	'-': token.Minus,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
}

// scanPunct: все операторы языка однобайтовые.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	if k, ok := punct[b]; ok {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	// неизвестный символ: съедаем целую руну, чтобы не резать UTF-8
	if _, sz := lx.cursor.PeekRune(); sz > 1 {
		lx.cursor.BumpRune()
	} else {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "Unexpected character '"+lx.text(sp)+"'")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
