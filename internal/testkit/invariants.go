// Package testkit holds structural checks shared by parser, scene and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sns/internal/ast"
	"sns/internal/scene"
	"sns/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span lies within the content
// 2) statements are ordered, disjoint and inside file.Span
// 3) every expression span is non-empty and inside its statement
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.Start > f.Span.End || f.Span.End > lenContent {
		return fmt.Errorf("file span %v outside content of %d bytes", f.Span, lenContent)
	}

	var prevEnd uint32
	for i := range f.Stmts {
		st := &f.Stmts[i]
		if st.Span.Empty() {
			return fmt.Errorf("stmt %d: empty span", i)
		}
		if !f.Span.Contains(st.Span) {
			return fmt.Errorf("stmt %d: span %v outside file span %v", i, st.Span, f.Span)
		}
		if st.Span.Start < prevEnd {
			return fmt.Errorf("stmt %d: span %v overlaps previous statement ending at %d", i, st.Span, prevEnd)
		}
		prevEnd = st.Span.End

		var bad error
		check := func(e *ast.Expr) bool {
			if bad != nil {
				return false
			}
			switch {
			case e.Span.Empty():
				bad = fmt.Errorf("stmt %d: empty expression span at %d", i, e.Span.Start)
			case !st.Span.Contains(e.Span):
				bad = fmt.Errorf("stmt %d: expression span %v escapes statement %v", i, e.Span, st.Span)
			}
			return bad == nil
		}
		ast.Inspect(st.Target, check)
		ast.Inspect(st.Value, check)
		if bad != nil {
			return bad
		}
	}
	return nil
}

// CheckSceneInvariants verifies that s could have been built from text:
// every shape header quotes its statement and every control point's
// OldText is exactly the program slice its span covers.
func CheckSceneInvariants(text string, s *scene.Scene) error {
	if s == nil {
		return nil
	}
	for i, sh := range s.Shapes {
		h := sh.Head()
		if got := h.Stmt.In(text); got != h.Source {
			return fmt.Errorf("shape %d (%s): statement slice %q != header source %q", i, h.Name, got, h.Source)
		}
		if h.NameSpan.In(text) != h.Name {
			return fmt.Errorf("shape %d: name span %v does not cover %q", i, h.NameSpan, h.Name)
		}
	}
	for i, cp := range s.Points {
		h := cp.Owner().Head()
		if !h.Stmt.Contains(cp.Span()) {
			return fmt.Errorf("point %d: span %v outside statement %v", i, cp.Span(), h.Stmt)
		}
		if got := cp.Span().In(text); got != cp.OldText() {
			return fmt.Errorf("point %d: slice %q != old text %q", i, got, cp.OldText())
		}
	}
	return nil
}
