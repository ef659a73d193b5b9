package reverse

import (
	"errors"
	"testing"

	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/textedit"
)

func TestMove_LineEndpoint(t *testing.T) {
	prog := `l = line([062, 045], [549, 176], "#c13030");`
	s := build(t, prog)
	got, err := Move(prog, s.Points[0], shape.Point{X: 100, Y: 5})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if want := `l = line([100, 005], [549, 176], "#c13030");`; got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestMove_EllipseCenter(t *testing.T) {
	prog := `e = ellipse([428, 359], 144, 153, "#fabe00");`
	s := build(t, prog)
	cp := s.Points[len(s.Points)-1]
	if _, ok := cp.(*scene.EllipseCenter); !ok {
		t.Fatalf("last ellipse point is %T", cp)
	}
	got, err := Move(prog, cp, shape.Point{X: 300, Y: 20})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if want := `e = ellipse([300, 020], 144, 153, "#fabe00");`; got != want {
		t.Fatalf("got %q", got)
	}
}

func TestMove_RectCornerKeepsOppositeCorner(t *testing.T) {
	prog := `r = rect([100, 100], 200, 100, "#187fc4");`
	opposite := map[scene.Role]scene.Role{
		scene.RoleTopLeft:     scene.RoleBottomRight,
		scene.RoleTopRight:    scene.RoleBottomLeft,
		scene.RoleBottomLeft:  scene.RoleTopRight,
		scene.RoleBottomRight: scene.RoleTopLeft,
	}
	drags := map[scene.Role]shape.Point{
		scene.RoleTopLeft:     {X: 50, Y: 20},
		scene.RoleTopRight:    {X: 420, Y: 60},
		scene.RoleBottomLeft:  {X: 70, Y: 260},
		scene.RoleBottomRight: {X: 350, Y: 260},
	}
	for role, to := range drags {
		t.Run(role.String(), func(t *testing.T) {
			before := build(t, prog)
			cp := pointWithRole(t, before, "r", role)
			fixed := pointWithRole(t, before, "r", opposite[role]).Pos()

			got, err := Move(prog, cp, to)
			if err != nil {
				t.Fatalf("Move: %v", err)
			}
			after := build(t, got)
			if p := pointWithRole(t, after, "r", opposite[role]).Pos(); p != fixed {
				t.Fatalf("opposite corner moved: %v → %v (%q)", fixed, p, got)
			}
			if p := pointWithRole(t, after, "r", role).Pos(); p != to {
				t.Fatalf("dragged corner at %v, want %v (%q)", p, to, got)
			}
		})
	}
}

func TestMove_RectCornerPastAnchorFlips(t *testing.T) {
	prog := `r = rect([100, 100], 200, 100, "#187fc4");`
	s := build(t, prog)
	got, err := Move(prog, pointWithRole(t, s, "r", scene.RoleBottomRight), shape.Point{X: 50, Y: 40})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if want := `r = rect([050, 040], 050, 060, "#187fc4");`; got != want {
		t.Fatalf("got %q", got)
	}
	after := build(t, got)
	if p := pointWithRole(t, after, "r", scene.RoleBottomRight).Pos(); p != (shape.Point{X: 100, Y: 100}) {
		t.Fatalf("anchor should become the bottom-right corner, got %v", p)
	}
}

func TestMove_EllipseExtremum(t *testing.T) {
	prog := `e = ellipse([428, 359], 144, 153, "#fabe00");`
	tests := []struct {
		role scene.Role
		to   shape.Point
		want string
	}{
		{scene.RoleRight, shape.Point{X: 500, Y: 300}, `e = ellipse([428, 359], 072, 153, "#fabe00");`},
		{scene.RoleLeft, shape.Point{X: 400, Y: 10}, `e = ellipse([428, 359], 028, 153, "#fabe00");`},
		{scene.RoleBottom, shape.Point{X: 1, Y: 589}, `e = ellipse([428, 359], 144, 230, "#fabe00");`},
		{scene.RoleTop, shape.Point{X: 400, Y: 100}, `e = ellipse([428, 359], 144, 259, "#fabe00");`},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			s := build(t, prog)
			got, err := Move(prog, pointWithRole(t, s, "e", tt.role), tt.to)
			if err != nil {
				t.Fatalf("Move: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestMove_StaleSceneIsRejected(t *testing.T) {
	prog := `l = line([062, 045], [549, 176], "#c13030");`
	s := build(t, prog)
	edited := "x = 1;\n" + prog

	got, err := Move(edited, s.Points[0], shape.Point{X: 1, Y: 1})
	if !errors.Is(err, textedit.ErrStaleEdit) {
		t.Fatalf("expected ErrStaleEdit, got %v", err)
	}
	if got != edited {
		t.Fatalf("program must be left untouched on error")
	}
}

func TestMove_RepeatedDragsAfterRebuild(t *testing.T) {
	prog := `l = line([062, 045], [549, 176], "#c13030");`
	for _, to := range []shape.Point{{X: 70, Y: 50}, {X: 80, Y: 55}, {X: 90, Y: 65}} {
		s := build(t, prog)
		cp, ok := s.Nearest(to)
		if !ok {
			t.Fatalf("no point near %v", to)
		}
		var err error
		if prog, err = Move(prog, cp, to); err != nil {
			t.Fatalf("Move: %v", err)
		}
	}
	if want := `l = line([090, 065], [549, 176], "#c13030");`; prog != want {
		t.Fatalf("got %q", prog)
	}
}
