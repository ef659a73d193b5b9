package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"sns/internal/parser"
	"sns/internal/trace"
)

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordSink) OnEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func writeProg(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		file, dir, want string
	}{
		{"a/b/prog.sns", "", filepath.Join("a", "b", "prog.png")},
		{"a/b/prog.sns", "out", filepath.Join("out", "prog.png")},
		{"noext", "", "noext.png"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.file, tt.dir); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.file, tt.dir, got, tt.want)
		}
	}
}

func TestRender_MixedFiles(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	good := writeProg(t, dir, "good.sns", `r = rect([050, 050], 100, 100, "#187fc4");`)
	other := writeProg(t, dir, "other.sns", `l = line([1, 1], [500, 500], "#c13030");`)
	bad := writeProg(t, dir, "bad.sns", `r = rect([050, 050]`)

	sink := &recordSink{}
	results, err := Render(context.Background(), &Request{
		Files:    []string{good, bad, other},
		OutDir:   out,
		Widgets:  true,
		Jobs:     2,
		Progress: sink,
	})
	if !errors.Is(err, parser.ErrSyntax) {
		t.Fatalf("Render error = %v, want syntax error from bad.sns", err)
	}
	if len(results) != 3 || results[1].Err == nil || results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	for _, r := range []Result{results[0], results[2]} {
		if _, err := os.Stat(r.Out); err != nil {
			t.Errorf("missing output %s: %v", r.Out, err)
		}
	}
	if _, err := os.Stat(results[1].Out); !os.IsNotExist(err) {
		t.Errorf("bad file must not produce a PNG")
	}

	var done, failed int
	for _, ev := range sink.events {
		switch ev.Status {
		case StatusDone:
			done++
		case StatusError:
			failed++
		}
	}
	if done != 2 || failed != 1 {
		t.Fatalf("done=%d failed=%d events=%+v", done, failed, sink.events)
	}
}

func TestRender_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeProg(t, dir, "p.sns", `l = line([1, 1], [2, 2], "#000");`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, &Request{Files: []string{path}, OutDir: dir}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Render error = %v, want context.Canceled", err)
	}
}

func TestRender_Empty(t *testing.T) {
	res, err := Render(context.Background(), &Request{})
	if err != nil || len(res) != 0 {
		t.Fatalf("empty batch = %v, %v", res, err)
	}
	if _, err := Render(context.Background(), nil); err == nil {
		t.Fatalf("nil request must fail")
	}
}

func TestRender_SpanNestsUnderContextParent(t *testing.T) {
	dir := t.TempDir()
	prog := writeProg(t, dir, "p.sns", `r = rect([050, 050], 100, 100, "#187fc4");`)
	ring := trace.NewRing(64, trace.LevelPhase)
	root := trace.Begin(ring, trace.ScopeCommand, "cmd render", 0)
	ctx := trace.WithParent(context.Background(), root)

	if _, err := Render(ctx, &Request{Files: []string{prog}, OutDir: t.TempDir(), Tracer: ring}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, ev := range ring.Snapshot() {
		if ev.Name == "render" && ev.Kind == trace.KindSpanBegin {
			if ev.ParentID != root.ID() {
				t.Fatalf("render span parent = %d, want %d", ev.ParentID, root.ID())
			}
			return
		}
	}
	t.Fatalf("no render span in %+v", ring.Snapshot())
}
