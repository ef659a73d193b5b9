package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sns/internal/session"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_OverridesOnlyDefinedKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[editor]
color = "#187fc4"
mode = "move"

[canvas]
offset_x = 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.Color != "#187fc4" || cfg.Editor.Mode != "move" {
		t.Fatalf("editor = %+v", cfg.Editor)
	}
	if cfg.Editor.Draw != "line" || !cfg.Editor.Widgets {
		t.Fatalf("defaults lost: %+v", cfg.Editor)
	}
	if off := cfg.Offset(); off.X != 10 || off.Y != 5 {
		t.Fatalf("offset = %v", off)
	}
	opts := cfg.SessionOptions()
	if opts.Mode != session.ModeMove || opts.Draw != session.DrawLine || opts.Color != "#187fc4" {
		t.Fatalf("session options = %+v", opts)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad color", "[editor]\ncolor = \"red\"\n", ErrBadColor},
		{"bad mode", "[editor]\nmode = \"paint\"\n", ErrBadMode},
		{"bad draw", "[editor]\ndraw = \"star\"\n", ErrBadMode},
		{"bad scale", "[render]\nscale = 0.0\n", ErrBadScale},
		{"bad background", "[render]\nbackground = \"#12\"\n", ErrBadColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Fatalf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_UnknownKeyAndBadLevel(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(writeConfig(t, dir, "[editor]\ncolour = \"#fff\"\n")); err == nil {
		t.Fatalf("unknown key must be rejected")
	}
	if _, err := Load(writeConfig(t, dir, "[trace]\nlevel = \"loud\"\n")); err == nil {
		t.Fatalf("unknown trace level must be rejected")
	}
}

func TestResolve_SearchesUpwards(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[editor]\nwidgets = false\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Editor.Widgets {
		t.Fatalf("config from parent directory not applied")
	}
	if filepath.Dir(cfg.Path) != root {
		t.Fatalf("Path = %q", cfg.Path)
	}
}

func TestResolve_NoFileGivesDefaults(t *testing.T) {
	cfg, err := Resolve("", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Path != "" && filepath.Base(cfg.Path) == FileName {
		// sns.toml выше по дереву (например, в $TMPDIR): не наш случай
		t.Skipf("found unrelated %s", cfg.Path)
	}
	if cfg.Canvas.OffsetX != 605 || cfg.Canvas.OffsetY != 5 || cfg.Render.Scale != 1 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestValidColor(t *testing.T) {
	for s, want := range map[string]bool{
		"#fff": true, "#C13030": true, "#c1303": false, "c13030": false, "": false, "#ggg": false,
	} {
		if got := ValidColor(s); got != want {
			t.Errorf("ValidColor(%q) = %v, want %v", s, got, want)
		}
	}
}
