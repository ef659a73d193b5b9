package scene

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"sns/internal/shape"
)

func TestBuild_Roles(t *testing.T) {
	s := buildText(t, sampleProgram, false)
	want := []Role{
		RoleEndpoint, RoleEndpoint,
		RoleTopLeft, RoleTopRight, RoleBottomLeft, RoleBottomRight,
		RoleRight, RoleBottom, RoleLeft, RoleTop, RoleEndpoint,
	}
	if len(s.Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(s.Points))
	}
	for i, r := range want {
		if s.Points[i].Role() != r {
			t.Errorf("point %d: role %s, want %s", i, s.Points[i].Role(), r)
		}
	}
	if len(s.Primitives) != 3 {
		t.Fatalf("without widgets expected 3 primitives, got %d", len(s.Primitives))
	}
}

func TestBuild_Widgets(t *testing.T) {
	s := buildText(t, sampleProgram, true)
	// 3 фигуры + 3 подписи + 11 ручек
	if len(s.Primitives) != 17 {
		t.Fatalf("expected 17 primitives, got %d", len(s.Primitives))
	}
	if p := s.Primitives[1]; p.Kind != PrimLabel || p.Text != "lineTop" || p.A != (shape.Point{X: 42, Y: 25}) {
		t.Fatalf("line label = %+v", p)
	}
	if p := s.Primitives[2]; p.Kind != PrimHandle || p.A != (shape.Point{X: 62, Y: 45}) || p.B.X != HandleRadius {
		t.Fatalf("first handle = %+v", p)
	}
	var ellipseLabel Primitive
	for _, p := range s.Primitives {
		if p.Kind == PrimLabel && p.Name == "ellipseRight" {
			ellipseLabel = p
		}
	}
	if ellipseLabel.A != (shape.Point{X: 428 - 144 - 20, Y: 359 - 153 - 20}) {
		t.Fatalf("ellipse label at %v", ellipseLabel.A)
	}
}

func TestBuild_LineLabelUsesLeftmostEndpoint(t *testing.T) {
	s := buildText(t, `l = line([300, 100], [100, 200], "#000000");`, true)
	if got := s.Primitives[1].A; got != (shape.Point{X: 80, Y: 180}) {
		t.Fatalf("label at %v", got)
	}
}

// Координата каждой контрольной точки совпадает с литералами под её span.
func TestBuild_PointsReadBackLiterals(t *testing.T) {
	s := buildText(t, sampleProgram, false)
	for i, cp := range s.Points {
		text := cp.Span().In(sampleProgram)
		if text != cp.OldText() {
			t.Fatalf("point %d: OldText %q differs from program text %q", i, cp.OldText(), text)
		}
		nums := literalInts(t, text)
		pos := cp.Pos()
		switch v := cp.(type) {
		case *LineEnd, *EllipseCenter:
			if !reflect.DeepEqual(nums, []int{pos.X, pos.Y}) {
				t.Errorf("point %d: literals %v, pos %v", i, nums, pos)
			}
		case *RectCorner:
			// [x, y], w, h
			got := cornerOf(&shape.Rect{
				Origin: shape.PointLit{Value: shape.Point{X: nums[0], Y: nums[1]}},
				Width:  shape.IntLit{Value: nums[2]},
				Height: shape.IntLit{Value: nums[3]},
			}, v.Corner)
			if got != pos {
				t.Errorf("corner %s: literals give %v, pos %v", v.Corner, got, pos)
			}
		case *EllipseExtremum:
			c := v.Ellipse.Center.Value
			want := map[Role]shape.Point{
				RoleRight:  {X: c.X + nums[0], Y: c.Y},
				RoleBottom: {X: c.X, Y: c.Y + nums[1]},
				RoleLeft:   {X: c.X - nums[0], Y: c.Y},
				RoleTop:    {X: c.X, Y: c.Y - nums[1]},
			}[v.Side]
			if want != pos {
				t.Errorf("extremum %s: literals give %v, pos %v", v.Side, want, pos)
			}
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	a := buildText(t, sampleProgram, true)
	b := buildText(t, sampleProgram, true)
	if !reflect.DeepEqual(a.Primitives, b.Primitives) {
		t.Fatalf("primitives differ between rebuilds")
	}
	if len(a.Points) != len(b.Points) {
		t.Fatalf("point counts differ")
	}
	for i := range a.Points {
		pa, pb := a.Points[i], b.Points[i]
		if pa.Role() != pb.Role() || pa.Pos() != pb.Pos() || pa.Span() != pb.Span() {
			t.Fatalf("point %d differs: %s %v %v vs %s %v %v", i, pa.Role(), pa.Pos(), pa.Span(), pb.Role(), pb.Pos(), pb.Span())
		}
	}
}

func TestRectCorner_Anchor(t *testing.T) {
	s := buildText(t, `r = rect([100, 100], 200, 100, "#187fc4");`, false)
	want := map[Role]shape.Point{
		RoleTopLeft:     {X: 300, Y: 200},
		RoleTopRight:    {X: 100, Y: 200},
		RoleBottomLeft:  {X: 300, Y: 100},
		RoleBottomRight: {X: 100, Y: 100},
	}
	for _, cp := range s.Points {
		rc := cp.(*RectCorner)
		if got := rc.Anchor(); got != want[rc.Corner] {
			t.Errorf("%s anchor = %v, want %v", rc.Corner, got, want[rc.Corner])
		}
	}
}

func TestPreview(t *testing.T) {
	p := Preview(shape.Point{X: 300, Y: 50}, shape.Point{X: 100, Y: 250})
	if p.Kind != PrimRect || !p.Dashed || p.Fill != "" {
		t.Fatalf("preview = %+v", p)
	}
	if p.A != (shape.Point{X: 100, Y: 50}) || p.B != (shape.Point{X: 200, Y: 200}) {
		t.Fatalf("preview box = %v %v", p.A, p.B)
	}
}

func literalInts(t *testing.T, text string) []int {
	t.Helper()
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '[' || r == ']' || r == ',' || r == ' '
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			t.Fatalf("bad literal %q in %q", f, text)
		}
		out = append(out, n)
	}
	return out
}
