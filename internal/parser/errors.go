package parser

import (
	"errors"
	"fmt"

	"sns/internal/diag"
	"sns/internal/source"
)

// ErrSyntax: признак неудачного цикла разбора; проверять через errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError: первая (по позиции в тексте) ошибка разбора программы.
type SyntaxError struct {
	Code diag.Code
	Msg  string
	Span source.Span
	Pos  source.LineCol
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Msg, e.Pos.Line, e.Pos.Col)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func newSyntaxError(file *source.File, d diag.Diagnostic) *SyntaxError {
	pos, _ := file.Resolve(d.Primary)
	return &SyntaxError{Code: d.Code, Msg: d.Message, Span: d.Primary, Pos: pos}
}
