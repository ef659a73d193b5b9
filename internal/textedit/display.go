package textedit

import (
	"regexp"
	"unicode/utf8"
)

// трёхзначное число между двумя символами, не являющимися hex-цифрами;
// hex-цвета вида "#062045" так не трогаются
var paddedNumber = regexp.MustCompile(`(?i)[^\da-f]\d{3}[^\da-f]`)

// StripZeroPadding is the display transform: a 3-digit run bounded by
// non-hex characters loses its cosmetic leading zeros ("062" → "62",
// "005" → "5", "000" → "0"). Matches do not overlap. Spans computed against
// the original text are not valid against the result.
func StripZeroPadding(text string) string {
	return paddedNumber.ReplaceAllStringFunc(text, func(m string) string {
		_, n := utf8.DecodeRuneInString(m)
		lead, digits, tail := m[:n], m[n:n+3], m[n+3:]
		switch {
		case digits[0] == '0' && digits[1] == '0':
			return lead + digits[2:] + tail
		case digits[0] == '0':
			return lead + digits[1:] + tail
		default:
			return m
		}
	})
}
