package observ

import (
	"strings"
	"testing"
)

func TestTimer_ReportGroupsByName(t *testing.T) {
	tm := NewTimer()
	for range 3 {
		tm.End(tm.Begin("parse"), "")
		tm.End(tm.Begin("build"), "")
	}
	tm.End(tm.Begin("splice"), "move")

	r := tm.Report()
	if len(r.Phases) != 3 {
		t.Fatalf("expected 3 grouped phases, got %+v", r.Phases)
	}
	if r.Phases[0].Name != "parse" || r.Phases[0].Count != 3 {
		t.Fatalf("parse group = %+v", r.Phases[0])
	}
	if r.Phases[2].Note != "move" {
		t.Fatalf("note lost: %+v", r.Phases[2])
	}
	if !strings.Contains(tm.Summary(), "total") {
		t.Fatalf("summary misses total line")
	}
}

func TestTimer_NilIsNoop(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("parse"), "")
	if tm.Len() != 0 || len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer must record nothing")
	}
}
