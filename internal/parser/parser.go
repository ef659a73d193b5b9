package parser

import (
	"slices"

	"sns/internal/ast"
	"sns/internal/diag"
	"sns/internal/lexer"
	"sns/internal/source"
	"sns/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File   *ast.File
	Bag    *diag.Bag
	Failed bool // хотя бы один оператор не разобран (даже если Reporter не задан)
}

// Parser: состояние парсера на одну программу
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	file     *ast.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	failed   bool
}

// ParseFile: входная точка для разбора одной программы.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		file:     &ast.File{},
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseStmts()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File:   p.file,
		Bag:    bag,
		Failed: p.failed,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseStmts: основной цикл верхнего уровня: пока не EOF: parseStmt.
func (p *Parser) parseStmts() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.failed = true
			p.resyncStmt()
			continue
		}
		if stmt.Value != nil {
			p.file.Stmts = append(p.file.Stmts, stmt)
		}
	}
	p.file.Span = startSpan.Cover(p.lx.Peek().Span)
}

// resyncStmt: восстановление после ошибки: прокручиваем до ';' (съедаем её),
// до токена на новой строке или до EOF. Хотя бы один токен съедается всегда.
func (p *Parser) resyncStmt() {
	for !p.at(token.EOF) {
		tok := p.advance()
		if tok.Kind == token.Semicolon || p.lx.Peek().NewlineBefore() {
			return
		}
	}
}
