package ast

import (
	"sns/internal/source"
)

// Stmt: один оператор программы: `Target = Value;` или просто `Value;`.
// Span покрывает оператор целиком, включая завершающую ';' если она есть.
type Stmt struct {
	Target *Expr // nil для оператора-выражения
	Value  *Expr // nil для пустого оператора ';'
	Span   source.Span
}

// IsAssign reports whether the statement assigns to a name.
func (s *Stmt) IsAssign() bool {
	return s.Target.IsIdent() && s.Value != nil
}
