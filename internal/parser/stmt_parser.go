package parser

import (
	"sns/internal/ast"
	"sns/internal/diag"
	"sns/internal/token"
)

// parseStmt разбирает `expr [= expr]` и терминатор.
// Терминатор: ';', перевод строки перед следующим токеном или EOF.
// Пустой оператор `;` возвращается с Value == nil.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	start := p.lx.Peek().Span
	if p.at(token.Semicolon) {
		p.advance()
		return ast.Stmt{Span: start}, true
	}

	lhs, ok := p.parseExpr()
	if !ok {
		return ast.Stmt{}, false
	}

	stmt := ast.Stmt{Value: lhs}
	if p.at(token.Assign) {
		eq := p.advance()
		if !lhs.IsIdent() {
			p.report(diag.SynBadAssignTarget, diag.SevError, lhs.Span.Cover(eq.Span), "Assigning to rvalue")
			return ast.Stmt{}, false
		}
		rhs, ok := p.parseExpr()
		if !ok {
			return ast.Stmt{}, false
		}
		stmt.Target, stmt.Value = lhs, rhs
	}

	if !p.parseTerminator() {
		return ast.Stmt{}, false
	}
	stmt.Span = start.Cover(p.lastSpan)
	return stmt, true
}

func (p *Parser) parseTerminator() bool {
	next := p.lx.Peek()
	switch {
	case next.Kind == token.Semicolon:
		p.advance()
		return true
	case next.Kind == token.EOF, next.NewlineBefore():
		return true
	}
	p.unexpected(diag.SynExpectSemicolon, "Unexpected token")
	return false
}
