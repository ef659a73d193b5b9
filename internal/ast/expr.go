package ast

import (
	"sns/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprInt
	ExprString
	ExprArray
	ExprCall
	ExprGroup
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "ident"
	case ExprInt:
		return "int"
	case ExprString:
		return "string"
	case ExprArray:
		return "array"
	case ExprCall:
		return "call"
	case ExprGroup:
		return "group"
	default:
		return "invalid"
	}
}

// Expr: узел выражения. Какие поля заполнены, зависит от Kind:
//
//	ExprIdent  → Name
//	ExprInt    → Int (Span покрывает и знак '-')
//	ExprString → Str (без кавычек; Span: с кавычками)
//	ExprArray  → Items
//	ExprCall   → Callee, Items (аргументы)
//	ExprGroup  → Items[0]
type Expr struct {
	Kind   ExprKind
	Span   source.Span
	Name   string
	Int    int
	Str    string
	Callee *Expr
	Items  []*Expr
}

// IsIdent reports whether e is a bare identifier.
func (e *Expr) IsIdent() bool { return e != nil && e.Kind == ExprIdent }

// CalleeName returns the identifier being called, or "" when e is not a plain call.
func (e *Expr) CalleeName() string {
	if e == nil || e.Kind != ExprCall || !e.Callee.IsIdent() {
		return ""
	}
	return e.Callee.Name
}

// Unparen strips grouping parentheses.
func (e *Expr) Unparen() *Expr {
	for e != nil && e.Kind == ExprGroup && len(e.Items) == 1 {
		e = e.Items[0]
	}
	return e
}
