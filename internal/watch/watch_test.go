package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sns/internal/textedit"
)

func waitFor(t *testing.T, w *Watcher, want string) []string {
	t.Helper()
	var seen []string
	deadline := time.After(5 * time.Second)
	for {
		select {
		case text, ok := <-w.Changes():
			if !ok {
				t.Fatalf("changes closed, seen %q", seen)
			}
			seen = append(seen, text)
			if text == want {
				return seen
			}
		case err := <-w.Errors():
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("timed out waiting for %q, seen %q", want, seen)
		}
	}
}

func TestWatcher_ReportsExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.sns")
	if err := os.WriteFile(path, []byte("a = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, "a = 1;")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	const next = `l = line([1, 2], [3, 4], "#000");`
	if err := os.WriteFile(path, []byte(next), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, w, next)
}

func TestWatcher_SkipsKnownContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sns")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, "x")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	w.Known("saved")
	if err := os.WriteFile(path, []byte("saved"), 0o644); err != nil {
		t.Fatal(err)
	}
	// соседний файл в том же каталоге не должен давать событий
	if err := os.WriteFile(filepath.Join(dir, "other.sns"), []byte("zzz"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("external"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, s := range waitFor(t, w, "external") {
		if s == "saved" || s == "zzz" {
			t.Fatalf("unexpected change %q", s)
		}
	}
}

func TestWatcher_CloseClosesChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.sns")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Changes(); ok {
		t.Fatalf("changes must be closed")
	}
}

func TestWatcher_RapidSelfSavesStaySilent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sns")
	line := `l = line([062, 045], [549, 176], "#c13030");` + "\n"
	base := strings.Repeat(line, 2000)
	if err := os.WriteFile(path, []byte(base), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	saved := make(map[string]bool)
	for i := range 200 {
		text := base + fmt.Sprintf("n = line([%03d, 001], [002, 003], \"#000\");", i)
		saved[text] = true
		w.Known(text)
		if err := textedit.WriteFile(path, text); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	const external = `x = rect([001, 001], 010, 010, "#fff");`
	if err := textedit.WriteFile(path, external); err != nil {
		t.Fatal(err)
	}
	for _, s := range waitFor(t, w, external) {
		if s == "" || saved[s] {
			t.Fatalf("self-save reported as external change (len=%d)", len(s))
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(entries))
	}
}

func TestWatcher_KnownIsBounded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.sns")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, "a")
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	for i := range 3 * knownDepth {
		w.Known(fmt.Sprint(i))
	}
	w.Known("5") // повтор не дублируется
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.known) != knownDepth {
		t.Fatalf("known holds %d texts, want %d", len(w.known), knownDepth)
	}
	if w.known[len(w.known)-1] != "5" {
		t.Fatalf("newest known = %q", w.known[len(w.known)-1])
	}
}
