package shape

import (
	"sns/internal/ast"
	"sns/internal/parser"
	"sns/internal/source"
)

// MaxCoord bounds the magnitude of every coordinate and size literal a shape
// may carry. Larger literals make the statement unrecognised, so products such
// as coordinate*canvas or squared distances always fit in an int64.
const MaxCoord = 1 << 24

// число аргументов вызова, включая цвет
var arity = [...]int{KindLine: 3, KindRect: 4, KindEllipse: 4}

// Extract converts every recognised shape statement into a record.
// Statements that are not `name = kind(...)` with a matching argument list are skipped.
func Extract(src *source.File, f *ast.File) []Shape {
	if f == nil {
		return nil
	}
	out := make([]Shape, 0, len(f.Stmts))
	for i := range f.Stmts {
		if sh := extractStmt(src, &f.Stmts[i]); sh != nil {
			out = append(out, sh)
		}
	}
	return out
}

// Parse разбирает текст программы и извлекает записи фигур.
// Ошибка: всегда *parser.SyntaxError.
func Parse(text string) ([]Shape, error) {
	src := source.Virtual(text)
	f, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return Extract(src, f), nil
}

func extractStmt(src *source.File, st *ast.Stmt) Shape {
	if !st.IsAssign() {
		return nil
	}
	call := st.Value.Unparen()
	kind, ok := ParseKind(call.CalleeName())
	if !ok || len(call.Items) != arity[kind] {
		return nil
	}
	args := call.Items

	color, ok := colorLit(args[len(args)-1])
	if !ok {
		return nil
	}
	head := Header{
		Name:     st.Target.Name,
		NameSpan: st.Target.Span,
		Stmt:     st.Span,
		Source:   src.Text(st.Span),
		Color:    color,
	}

	p0, ok := pointLit(args[0])
	if !ok {
		return nil
	}

	if kind == KindLine {
		p1, ok := pointLit(args[1])
		if !ok {
			return nil
		}
		return &Line{Header: head, P1: p0, P2: p1}
	}

	a, okA := intLit(args[1])
	b, okB := intLit(args[2])
	if !okA || !okB {
		return nil
	}
	if kind == KindRect {
		return &Rect{Header: head, Origin: p0, Width: a, Height: b}
	}
	return &Ellipse{Header: head, Center: p0, Rx: a, Ry: b}
}

func pointLit(e *ast.Expr) (PointLit, bool) {
	if e.Kind != ast.ExprArray || len(e.Items) != 2 {
		return PointLit{}, false
	}
	x, y := e.Items[0], e.Items[1]
	if x.Kind != ast.ExprInt || y.Kind != ast.ExprInt || !inRange(x.Int) || !inRange(y.Int) {
		return PointLit{}, false
	}
	return PointLit{Value: Point{X: x.Int, Y: y.Int}, Span: e.Span}, true
}

func intLit(e *ast.Expr) (IntLit, bool) {
	if e.Kind != ast.ExprInt || !inRange(e.Int) {
		return IntLit{}, false
	}
	return IntLit{Value: e.Int, Span: e.Span}, true
}

func inRange(v int) bool { return -MaxCoord <= v && v <= MaxCoord }

func colorLit(e *ast.Expr) (ColorLit, bool) {
	if e.Kind != ast.ExprString {
		return ColorLit{}, false
	}
	return ColorLit{Value: e.Str, Span: e.Span}, true
}
