package ui

import (
	"errors"
	"strings"
	"testing"

	"sns/internal/batch"
)

func TestProgressModel_AppliesEvents(t *testing.T) {
	events := make(chan batch.Event)
	m := NewProgressModel("render", []string{"a.sns", "b.sns"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.sns", Stage: batch.StageRender, Status: batch.StatusWorking})
	m.Update(eventMsg{File: "b.sns", Stage: batch.StageParse, Status: batch.StatusError, Err: errors.New("Unexpected token (1:20)")})
	m.Update(eventMsg{File: "zzz.sns", Status: batch.StatusDone})
	m.Update(eventMsg{File: "a.sns"})

	if m.rows[0].label() != "rendering" || m.rows[1].label() != "error" {
		t.Fatalf("rows = %+v", m.rows)
	}
	if got := m.percent(); got != 0.75 {
		t.Fatalf("percent = %v, want 0.75", got)
	}
	view := m.View()
	for _, want := range []string{"rendering", "b.sns", "Unexpected token (1:20)", "0/2 rendered, 1 failed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view misses %q:\n%s", want, view)
		}
	}

	m.Update(doneMsg{})
	if !m.done || !strings.Contains(m.View(), "done: render") {
		t.Fatalf("done state not rendered")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("internal/programs/very-long-name.sns", 12); got != "internal/..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 12); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
