package parser

import (
	"sns/internal/ast"
	"sns/internal/diag"
	"sns/internal/lexer"
	"sns/internal/source"
)

// Diagnose parses file and keeps every diagnostic, sorted by position.
// The tree is nil as soon as any error was reported.
func Diagnose(file *source.File, maxDiagnostics int) (*ast.File, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := ParseFile(lx, Options{Reporter: rep})

	if res.Failed && !bag.HasErrors() {
		bag.Add(diag.NewError(diag.SynUnexpectedToken, file.EOFSpan(), "Unexpected token"))
	}
	bag.Sort()
	if bag.HasErrors() {
		return nil, bag
	}
	return res.File, bag
}

// Parse разбирает программу целиком. Разбор всегда тотальный: при любой ошибке
// возвращается *SyntaxError с самой ранней диагностикой и nil вместо дерева.
func Parse(file *source.File) (*ast.File, error) {
	f, bag := Diagnose(file, 0)
	if d, ok := bag.FirstError(); ok {
		return nil, newSyntaxError(file, d)
	}
	return f, nil
}

// ParseString is Parse over in-memory program text.
func ParseString(text string) (*ast.File, error) {
	return Parse(source.Virtual(text))
}
