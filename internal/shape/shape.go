package shape

import (
	"fmt"

	"sns/internal/source"
)

// Point: координата на логическом холсте.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// PointLit: литерал `[x, y]` и его span (со скобками).
type PointLit struct {
	Value Point
	Span  source.Span
}

// IntLit: целочисленный литерал (ширина, высота, радиус).
type IntLit struct {
	Value int
	Span  source.Span
}

// ColorLit: строка цвета; Span включает кавычки.
type ColorLit struct {
	Value string
	Span  source.Span
}

// Header: общая часть всех записей.
type Header struct {
	Name     string
	NameSpan source.Span
	Stmt     source.Span
	Source   string // текст оператора ровно в пределах Stmt
	Color    ColorLit
}

// Slice returns the statement text covered by sp, or "" if sp is outside the statement.
func (h *Header) Slice(sp source.Span) string {
	if !h.Stmt.Contains(sp) {
		return ""
	}
	return sp.Rel(h.Stmt).In(h.Source)
}

// Shape is one of *Line, *Rect, *Ellipse.
type Shape interface {
	Kind() Kind
	Head() *Header
}

type Line struct {
	Header
	P1, P2 PointLit
}

type Rect struct {
	Header
	Origin        PointLit
	Width, Height IntLit
}

// Box returns the point…height range rewritten by corner drags.
func (r *Rect) Box() source.Span { return r.Origin.Span.Cover(r.Height.Span) }

type Ellipse struct {
	Header
	Center PointLit
	Rx, Ry IntLit
}

// Radii returns the rx…ry range rewritten by extremum drags.
func (e *Ellipse) Radii() source.Span { return e.Rx.Span.Cover(e.Ry.Span) }

func (*Line) Kind() Kind    { return KindLine }
func (*Rect) Kind() Kind    { return KindRect }
func (*Ellipse) Kind() Kind { return KindEllipse }

func (l *Line) Head() *Header    { return &l.Header }
func (r *Rect) Head() *Header    { return &r.Header }
func (e *Ellipse) Head() *Header { return &e.Header }
