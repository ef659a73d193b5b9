package token_test

import (
	"testing"

	"sns/internal/source"
	"sns/internal/token"
)

func TestNewlineBefore(t *testing.T) {
	tests := []struct {
		name    string
		leading []token.Trivia
		want    bool
	}{
		{"no trivia", nil, false},
		{"spaces only", []token.Trivia{{Kind: token.TriviaSpace, Text: "  "}}, false},
		{"newline", []token.Trivia{{Kind: token.TriviaSpace, Text: " "}, {Kind: token.TriviaNewline, Text: "\n"}}, true},
		{"line comment keeps line", []token.Trivia{{Kind: token.TriviaLineComment, Text: "// x"}}, false},
		{"block comment on one line", []token.Trivia{{Kind: token.TriviaBlockComment, Text: "/* x */"}}, false},
		{"block comment spanning lines", []token.Trivia{{Kind: token.TriviaBlockComment, Text: "/* x\n y */"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := token.Token{Kind: token.Ident, Span: source.Span{Start: 0, End: 1}, Text: "a", Leading: tt.leading}
			if got := tok.NewlineBefore(); got != tt.want {
				t.Fatalf("NewlineBefore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if token.LBracket.String() != "'['" || token.IntLit.String() != "IntLit" {
		t.Fatalf("unexpected kind names: %s %s", token.LBracket, token.IntLit)
	}
}
