package parser

import (
	"strconv"

	"sns/internal/ast"
	"sns/internal/diag"
	"sns/internal/token"
)

// parseExpr разбирает первичное выражение с постфиксными вызовами:
//
//	primary := Ident | '-'? Int | String | '[' list ']' | '(' expr ')'
//	expr    := primary ( '(' list ')' )*
func (p *Parser) parseExpr() (*ast.Expr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for p.at(token.LParen) {
		p.advance()
		args, closeTok, ok := p.parseList(token.RParen, diag.SynUnclosedParen)
		if !ok {
			return nil, false
		}
		expr = &ast.Expr{
			Kind:   ast.ExprCall,
			Span:   expr.Span.Cover(closeTok.Span),
			Callee: expr,
			Items:  args,
		}
	}
	return expr, true
}

func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.Expr{Kind: ast.ExprIdent, Span: tok.Span, Name: tok.Text}, true

	case token.IntLit:
		p.advance()
		return p.intLit(tok, tok.Text)

	case token.Minus:
		minus := p.advance()
		num, ok := p.expect(token.IntLit, diag.SynExpectExpression, "Unexpected token")
		if !ok {
			return nil, false
		}
		lit, ok := p.intLit(num, "-"+num.Text)
		if ok {
			lit.Span = minus.Span.Cover(num.Span)
		}
		return lit, ok

	case token.StringLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprString, Span: tok.Span, Str: unquote(tok.Text)}, true

	case token.LBracket:
		open := p.advance()
		items, closeTok, ok := p.parseList(token.RBracket, diag.SynUnclosedBracket)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprArray, Span: open.Span.Cover(closeTok.Span), Items: items}, true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "Unexpected token")
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprGroup, Span: open.Span.Cover(closeTok.Span), Items: []*ast.Expr{inner}}, true
	}

	p.unexpected(diag.SynExpectExpression, "Unexpected token")
	return nil, false
}

// parseList разбирает `elem, elem, ...` до закрывающего токена (сама открывающая уже съедена).
// Допускается завершающая запятая.
func (p *Parser) parseList(closeKind token.Kind, unclosed diag.Code) ([]*ast.Expr, token.Token, bool) {
	var items []*ast.Expr
	for !p.at(closeKind) {
		if p.at(token.EOF) {
			p.err(unclosed, "Unexpected token")
			return nil, token.Token{}, false
		}
		item, ok := p.parseExpr()
		if !ok {
			return nil, token.Token{}, false
		}
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(closeKind, unclosed, "Unexpected token")
	if !ok {
		return nil, token.Token{}, false
	}
	return items, closeTok, true
}

func (p *Parser) intLit(tok token.Token, text string) (*ast.Expr, bool) {
	v, err := strconv.Atoi(text)
	if err != nil {
		p.report(diag.LexBadNumber, diag.SevError, tok.Span, "Number out of range")
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprInt, Span: tok.Span, Int: v}, true
}

// unquote снимает кавычки и раскрывает простые escape-последовательности.
func unquote(text string) string {
	if len(text) < 2 {
		return ""
	}
	body := text[1 : len(text)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			out = append(out, c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		default:
			out = append(out, body[i])
		}
	}
	return string(out)
}
