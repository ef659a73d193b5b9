package reverse

import (
	"fmt"

	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/textedit"
)

// MoveEdit rewrites the literals controlled by cp so that it lands on to.
//
//	роль 0      → литерал точки
//	роли 1..4   → `[x, y], w, h`, противоположный угол неподвижен
//	роли 5..8   → `rx, ry`, центр неподвижен, меняется одна ось
func MoveEdit(cp scene.ControlPoint, to shape.Point) textedit.Edit {
	e := textedit.Edit{Span: cp.Span(), OldText: cp.OldText()}
	switch p := cp.(type) {
	case *scene.RectCorner:
		a := p.Anchor()
		origin := shape.Point{X: min(a.X, to.X), Y: min(a.Y, to.Y)}
		e.NewText = textedit.FormatPoint(origin.X, origin.Y) + ", " +
			textedit.Pad3(abs(a.X-to.X)) + ", " + textedit.Pad3(abs(a.Y-to.Y))
	case *scene.EllipseExtremum:
		c := p.Ellipse.Center.Value
		rx, ry := p.Ellipse.Rx.Value, p.Ellipse.Ry.Value
		if p.Horizontal() {
			rx = abs(c.X - to.X)
		} else {
			ry = abs(c.Y - to.Y)
		}
		e.NewText = textedit.Pad3(rx) + ", " + textedit.Pad3(ry)
	default:
		e.NewText = textedit.FormatPoint(to.X, to.Y)
	}
	return e
}

// Move applies MoveEdit to prog.
func Move(prog string, cp scene.ControlPoint, to shape.Point) (string, error) {
	out, err := textedit.Apply(prog, MoveEdit(cp, to))
	if err != nil {
		return prog, fmt.Errorf("move %s: %w", cp.Owner().Head().Name, err)
	}
	return out, nil
}
