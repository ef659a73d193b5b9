package lexer

import "unicode"

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || ('a' <= b|0x20 && b|0x20 <= 'z')
}

func isIdentContinueByte(b byte) bool { return isIdentStartByte(b) || isDec(b) }

func isIdentStartRune(r rune) bool { return r == '_' || r == '$' || unicode.IsLetter(r) }

func isIdentContinueRune(r rune) bool { return isIdentStartRune(r) || unicode.IsDigit(r) }

func isDec(b byte) bool   { return '0' <= b && b <= '9' }
func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }
