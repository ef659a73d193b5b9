package testkit

import (
	"testing"

	"sns/internal/ast"
	"sns/internal/parser"
	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/source"
)

const program = `lineTop = line([062, 045], [549, 176], "#c13030");
// comment
rectLeft = rect([050, 236], 158, 328, "#187fc4");
x = 1;
ellipseRight = ellipse([428, 359], 144, 153, "#fabe00");`

func TestInvariantsHoldForParsedProgram(t *testing.T) {
	file := source.Virtual(program)
	tree, err := parser.Parse(file)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := CheckSpanInvariants(tree, file); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
	s := scene.Build(shape.Extract(file, tree), scene.Options{Widgets: true})
	if err := CheckSceneInvariants(program, s); err != nil {
		t.Fatalf("scene invariants: %v", err)
	}
}

func TestCheckSpanInvariantsRejectsOverlap(t *testing.T) {
	file := source.Virtual("a = 1; b = 2;")
	tree, err := parser.Parse(file)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	broken := &ast.File{Span: tree.Span, Stmts: append([]ast.Stmt(nil), tree.Stmts...)}
	broken.Stmts[1].Span.Start = broken.Stmts[0].Span.Start
	if err := CheckSpanInvariants(broken, file); err == nil {
		t.Fatalf("expected overlap to be reported")
	}
}

func TestCheckSceneInvariantsRejectsStaleText(t *testing.T) {
	s := scene.Build(mustShapes(t, program), scene.Options{})
	if err := CheckSceneInvariants("lineTop = line([999, 045]", s); err == nil {
		t.Fatalf("expected mismatch against different text")
	}
}

func mustShapes(t *testing.T, text string) []shape.Shape {
	t.Helper()
	shapes, err := shape.Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return shapes
}
