package ast

import (
	"sns/internal/source"
)

// File is the parsed statement sequence of one program text.
type File struct {
	Stmts []Stmt
	Span  source.Span
}

// Len returns the number of statements.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Stmts)
}
