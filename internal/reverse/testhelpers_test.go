package reverse

import (
	"testing"

	"sns/internal/scene"
	"sns/internal/shape"
)

func build(t *testing.T, prog string) *scene.Scene {
	t.Helper()
	shapes, err := shape.Parse(prog)
	if err != nil {
		t.Fatalf("parse %q: %v", prog, err)
	}
	return scene.Build(shapes, scene.Options{})
}

func pointWithRole(t *testing.T, s *scene.Scene, owner string, role scene.Role) scene.ControlPoint {
	t.Helper()
	for _, cp := range s.Points {
		if cp.Owner().Head().Name == owner && cp.Role() == role {
			return cp
		}
	}
	t.Fatalf("no %s point on %s", role, owner)
	return nil
}

func names(t *testing.T, prog string) []string {
	t.Helper()
	s := build(t, prog)
	out := make([]string, 0, len(s.Shapes))
	for _, sh := range s.Shapes {
		out = append(out, sh.Head().Name)
	}
	return out
}
