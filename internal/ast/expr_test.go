package ast

import "testing"

func TestUnparenAndCallee(t *testing.T) {
	callee := &Expr{Kind: ExprIdent, Name: "rect"}
	call := &Expr{Kind: ExprCall, Callee: callee}
	wrapped := &Expr{Kind: ExprGroup, Items: []*Expr{{Kind: ExprGroup, Items: []*Expr{call}}}}

	if got := wrapped.Unparen(); got != call {
		t.Fatalf("Unparen did not strip both groups")
	}
	if got := call.CalleeName(); got != "rect" {
		t.Fatalf("CalleeName = %q", got)
	}
	if got := callee.CalleeName(); got != "" {
		t.Fatalf("ident has no callee, got %q", got)
	}
}

func TestInspectVisitsAllNodes(t *testing.T) {
	pt := &Expr{Kind: ExprArray, Items: []*Expr{{Kind: ExprInt, Int: 1}, {Kind: ExprInt, Int: 2}}}
	call := &Expr{Kind: ExprCall, Callee: &Expr{Kind: ExprIdent, Name: "line"}, Items: []*Expr{pt, {Kind: ExprString}}}

	counts := map[ExprKind]int{}
	Inspect(call, func(e *Expr) bool {
		counts[e.Kind]++
		return true
	})
	want := map[ExprKind]int{ExprCall: 1, ExprIdent: 1, ExprArray: 1, ExprInt: 2, ExprString: 1}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s: got %d, want %d", k, counts[k], n)
		}
	}

	skipped := 0
	Inspect(call, func(e *Expr) bool {
		skipped++
		return e.Kind != ExprArray
	})
	if skipped != 4 {
		t.Fatalf("pruned walk visited %d nodes, want 4", skipped)
	}
}
