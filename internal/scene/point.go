package scene

import (
	"sns/internal/shape"
	"sns/internal/source"
)

// ControlPoint is a draggable coordinate derived from one shape.
// Span is the single range its role rewrites; OldText is the text that range
// held when the scene was built.
type ControlPoint interface {
	Role() Role
	Pos() shape.Point
	Owner() shape.Shape
	Span() source.Span
	OldText() string
}

// LineEnd: один из двух концов линии (роль 0).
type LineEnd struct {
	Line   *shape.Line
	Second bool // false → P1, true → P2
}

func (p *LineEnd) lit() *shape.PointLit {
	if p.Second {
		return &p.Line.P2
	}
	return &p.Line.P1
}

func (*LineEnd) Role() Role           { return RoleEndpoint }
func (p *LineEnd) Pos() shape.Point   { return p.lit().Value }
func (p *LineEnd) Owner() shape.Shape { return p.Line }
func (p *LineEnd) Span() source.Span  { return p.lit().Span }
func (p *LineEnd) OldText() string    { return p.Line.Slice(p.Span()) }

// EllipseCenter: центр эллипса (роль 0), переписывает только литерал центра.
type EllipseCenter struct {
	Ellipse *shape.Ellipse
}

func (*EllipseCenter) Role() Role           { return RoleEndpoint }
func (p *EllipseCenter) Pos() shape.Point   { return p.Ellipse.Center.Value }
func (p *EllipseCenter) Owner() shape.Shape { return p.Ellipse }
func (p *EllipseCenter) Span() source.Span  { return p.Ellipse.Center.Span }
func (p *EllipseCenter) OldText() string    { return p.Ellipse.Slice(p.Span()) }

// RectCorner: угол прямоугольника (роли 1..4); переписывает диапазон `[x, y], w, h`.
type RectCorner struct {
	Rect   *shape.Rect
	Corner Role
}

func (p *RectCorner) Role() Role         { return p.Corner }
func (p *RectCorner) Owner() shape.Shape { return p.Rect }
func (p *RectCorner) Span() source.Span  { return p.Rect.Box() }
func (p *RectCorner) OldText() string    { return p.Rect.Slice(p.Span()) }
func (p *RectCorner) Pos() shape.Point   { return cornerOf(p.Rect, p.Corner) }

// Anchor returns the diagonally opposite corner, which a drag keeps fixed.
func (p *RectCorner) Anchor() shape.Point {
	return cornerOf(p.Rect, RoleBottomRight+RoleTopLeft-p.Corner)
}

func cornerOf(r *shape.Rect, c Role) shape.Point {
	pt := r.Origin.Value
	if c == RoleTopRight || c == RoleBottomRight {
		pt.X += r.Width.Value
	}
	if c == RoleBottomLeft || c == RoleBottomRight {
		pt.Y += r.Height.Value
	}
	return pt
}

// EllipseExtremum: крайняя точка эллипса (роли 5..8); переписывает диапазон `rx, ry`.
type EllipseExtremum struct {
	Ellipse *shape.Ellipse
	Side    Role
}

func (p *EllipseExtremum) Role() Role         { return p.Side }
func (p *EllipseExtremum) Owner() shape.Shape { return p.Ellipse }
func (p *EllipseExtremum) Span() source.Span  { return p.Ellipse.Radii() }
func (p *EllipseExtremum) OldText() string    { return p.Ellipse.Slice(p.Span()) }

// Horizontal reports whether the point moves rx (left/right) rather than ry.
func (p *EllipseExtremum) Horizontal() bool {
	return p.Side == RoleRight || p.Side == RoleLeft
}

func (p *EllipseExtremum) Pos() shape.Point {
	c := p.Ellipse.Center.Value
	rx, ry := p.Ellipse.Rx.Value, p.Ellipse.Ry.Value
	switch p.Side {
	case RoleRight:
		c.X += rx
	case RoleBottom:
		c.Y += ry
	case RoleLeft:
		c.X -= rx
	case RoleTop:
		c.Y -= ry
	}
	return c
}
