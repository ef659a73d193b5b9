package parser

import (
	"fmt"
	"strings"
	"testing"

	"sns/internal/ast"
	"sns/internal/diag"
	"sns/internal/lexer"
	"sns/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.File, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(source.Virtual(input), lexer.Options{Reporter: rep})
	res := ParseFile(lx, Options{Reporter: rep, MaxErrors: 100})
	return res.File, bag
}

func mustParse(t *testing.T, input string) *ast.File {
	t.Helper()
	f, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return f
}
