package session

import (
	"testing"

	"sns/internal/shape"
)

const defaultProgram = `lineTop = line([062, 045], [549, 176], "#c13030");
rectLeft = rect([050, 236], 158, 328, "#187fc4");
ellipseRight = ellipse([428, 359], 144, 153, "#fabe00");`

func pt(x, y int) shape.Point { return shape.Point{X: x, Y: y} }

// click нажимает и отпускает в одной точке.
func click(t *testing.T, e *Editor, p shape.Point) {
	t.Helper()
	e.Press(p)
	if err := e.Release(p); err != nil {
		t.Fatalf("release at %v: %v", p, err)
	}
}

func drag(t *testing.T, e *Editor, from shape.Point, to ...shape.Point) {
	t.Helper()
	e.Press(from)
	for _, p := range to {
		if err := e.Move(p); err != nil {
			t.Fatalf("move to %v: %v", p, err)
		}
	}
	if err := e.Release(to[len(to)-1]); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func mustScene(t *testing.T, e *Editor) {
	t.Helper()
	if e.Scene() == nil {
		t.Fatalf("expected a scene, got error %v", e.Err())
	}
}
