package reverse

import (
	"fmt"
	"strings"

	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/textedit"
)

// GroupEdit appends a copy of every snapshot shape, scaled by extent/600 per
// axis and placed at the origin of the from→to rectangle. Names continue from
// counter; n is the number of statements emitted.
func GroupEdit(prog string, snapshot []shape.Shape, from, to shape.Point, counter int) (e textedit.Edit, n int) {
	g := grouper{
		origin: shape.Point{X: min(from.X, to.X), Y: min(from.Y, to.Y)},
		w:      abs(from.X - to.X),
		h:      abs(from.Y - to.Y),
	}

	var b strings.Builder
	sep := lineSep(prog)
	for _, sh := range snapshot {
		stmt, ok := g.statement(sh, counter+n)
		if !ok {
			continue
		}
		b.WriteString(sep)
		b.WriteString(stmt)
		sep = "\n"
		n++
	}
	return textedit.Append(prog, b.String()), n
}

// GroupScale applies GroupEdit to prog and returns how many statements it added.
func GroupScale(prog string, snapshot []shape.Shape, from, to shape.Point, counter int) (string, int, error) {
	e, n := GroupEdit(prog, snapshot, from, to, counter)
	if n == 0 {
		return prog, 0, nil
	}
	out, err := textedit.Apply(prog, e)
	if err != nil {
		return prog, 0, fmt.Errorf("group: %w", err)
	}
	return out, n, nil
}

type grouper struct {
	origin shape.Point
	w, h   int
}

func (g grouper) x(v int) int  { return g.origin.X + floorDiv(v*g.w, scene.CanvasSize) }
func (g grouper) y(v int) int  { return g.origin.Y + floorDiv(v*g.h, scene.CanvasSize) }
func (g grouper) dx(v int) int { return floorDiv(v*g.w, scene.CanvasSize) }
func (g grouper) dy(v int) int { return floorDiv(v*g.h, scene.CanvasSize) }

func (g grouper) point(p shape.Point) shape.Point {
	return shape.Point{X: g.x(p.X), Y: g.y(p.Y)}
}

func (g grouper) statement(sh shape.Shape, counter int) (string, bool) {
	name := Name(sh.Kind(), counter)
	color := sh.Head().Color.Value
	switch v := sh.(type) {
	case *shape.Line:
		return LineStatement(name, g.point(v.P1.Value), g.point(v.P2.Value), color), true
	case *shape.Rect:
		return Statement(shape.KindRect, name, g.point(v.Origin.Value), g.dx(v.Width.Value), g.dy(v.Height.Value), color), true
	case *shape.Ellipse:
		return Statement(shape.KindEllipse, name, g.point(v.Center.Value), g.dx(v.Rx.Value), g.dy(v.Ry.Value), color), true
	}
	return "", false
}
