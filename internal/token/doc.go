// Package token defines lexical token kinds and trivia for the shape language.
// Invariants:
//   - Token.Text is a slice of the original program text.
//   - Token.Span matches Text exactly (Start..End).
//   - Shape kinds (line, rect, ellipse) are identifiers, not keywords.
//     They are recognized by the shape extractor, not the lexer.
//   - Whitespace, newlines and comments are leading Trivia of the next token.
package token
