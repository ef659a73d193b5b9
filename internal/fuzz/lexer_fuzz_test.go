package fuzztests

import (
	"testing"

	"sns/internal/diag"
	"sns/internal/lexer"
	"sns/internal/source"
	"sns/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.NewFile("fuzz.sns", clampInput(input), source.FileVirtual)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
		var prevEnd uint32
		// каждый токен потребляет хотя бы байт, так что цикл конечен
		for range len(file.Content) + 2 {
			tok := lx.Next()
			if tok.Span.Start < prevEnd || tok.Span.End > file.Len() {
				t.Fatalf("token %v span %v out of order (prev end %d, len %d)", tok.Kind, tok.Span, prevEnd, file.Len())
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF on %d bytes", len(file.Content))
	})
}
