package token

import (
	"strings"

	"sns/internal/source"
)

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// BreaksLine reports whether the trivia contains a line terminator.
// Блочный комментарий с переводом строки тоже считается разрывом.
func (tv Trivia) BreaksLine() bool {
	switch tv.Kind {
	case TriviaNewline:
		return true
	case TriviaBlockComment:
		return strings.Contains(tv.Text, "\n")
	default:
		return false
	}
}
