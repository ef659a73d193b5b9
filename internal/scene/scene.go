package scene

import (
	"sns/internal/shape"
)

// CanvasSize is the side of the square logical canvas.
const CanvasSize = 600

type Options struct {
	Widgets bool // подписи и ручки контрольных точек
}

// Scene: упорядоченные примитивы плюс контрольные точки одной сборки.
type Scene struct {
	Shapes     []shape.Shape
	Primitives []Primitive
	Points     []ControlPoint
	Widgets    bool
}

// Build derives primitives and control points from shapes, in shape order.
// Points of different shapes are never merged, even when they coincide.
func Build(shapes []shape.Shape, opts Options) *Scene {
	s := &Scene{
		Shapes:     shapes,
		Primitives: make([]Primitive, 0, len(shapes)*4),
		Points:     make([]ControlPoint, 0, len(shapes)*5),
		Widgets:    opts.Widgets,
	}
	for _, sh := range shapes {
		first := len(s.Points)
		switch v := sh.(type) {
		case *shape.Line:
			s.addLine(v)
		case *shape.Rect:
			s.addRect(v)
		case *shape.Ellipse:
			s.addEllipse(v)
		default:
			continue
		}
		if opts.Widgets {
			for _, cp := range s.Points[first:] {
				s.Primitives = append(s.Primitives, handle(sh.Head().Name, cp.Pos()))
			}
		}
	}
	return s
}

func (s *Scene) addLine(l *shape.Line) {
	s.Primitives = append(s.Primitives, Primitive{
		Kind:        PrimLine,
		Name:        l.Name,
		A:           l.P1.Value,
		B:           l.P2.Value,
		Stroke:      l.Color.Value,
		StrokeWidth: ShapeStrokeWidth,
		RoundCap:    true,
	})
	if s.Widgets {
		left := l.P2.Value
		if l.P1.Value.X < l.P2.Value.X {
			left = l.P1.Value
		}
		s.Primitives = append(s.Primitives, label(l.Name, left))
	}
	s.Points = append(s.Points, &LineEnd{Line: l}, &LineEnd{Line: l, Second: true})
}

func (s *Scene) addRect(r *shape.Rect) {
	s.Primitives = append(s.Primitives, Primitive{
		Kind:        PrimRect,
		Name:        r.Name,
		A:           r.Origin.Value,
		B:           shape.Point{X: r.Width.Value, Y: r.Height.Value},
		Stroke:      r.Color.Value,
		Fill:        r.Color.Value,
		StrokeWidth: ShapeStrokeWidth,
		RoundCap:    true,
	})
	if s.Widgets {
		s.Primitives = append(s.Primitives, label(r.Name, r.Origin.Value))
	}
	for c := RoleTopLeft; c <= RoleBottomRight; c++ {
		s.Points = append(s.Points, &RectCorner{Rect: r, Corner: c})
	}
}

func (s *Scene) addEllipse(e *shape.Ellipse) {
	c := e.Center.Value
	s.Primitives = append(s.Primitives, Primitive{
		Kind:        PrimEllipse,
		Name:        e.Name,
		A:           c,
		B:           shape.Point{X: e.Rx.Value, Y: e.Ry.Value},
		Stroke:      e.Color.Value,
		Fill:        e.Color.Value,
		StrokeWidth: ShapeStrokeWidth,
		RoundCap:    true,
	})
	if s.Widgets {
		s.Primitives = append(s.Primitives, label(e.Name, shape.Point{X: c.X - e.Rx.Value, Y: c.Y - e.Ry.Value}))
	}
	for side := RoleRight; side <= RoleTop; side++ {
		s.Points = append(s.Points, &EllipseExtremum{Ellipse: e, Side: side})
	}
	s.Points = append(s.Points, &EllipseCenter{Ellipse: e})
}
