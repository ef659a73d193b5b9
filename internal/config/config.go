// Package config loads sns.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"sns/internal/session"
	"sns/internal/shape"
	"sns/internal/trace"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "sns.toml"

var (
	ErrBadColor = errors.New("invalid color")
	ErrBadMode  = errors.New("invalid mode")
	ErrBadScale = errors.New("invalid scale")
)

// Config is the resolved configuration; zero sections are filled with defaults.
type Config struct {
	Path   string `toml:"-"`
	Editor Editor `toml:"editor"`
	Canvas Canvas `toml:"canvas"`
	Render Render `toml:"render"`
	Trace  Trace  `toml:"trace"`
}

type Editor struct {
	Color   string `toml:"color"`
	Widgets bool   `toml:"widgets"`
	Mode    string `toml:"mode"`
	Draw    string `toml:"draw"`
}

type Canvas struct {
	OffsetX int `toml:"offset_x"`
	OffsetY int `toml:"offset_y"`
}

type Render struct {
	Scale      float64 `toml:"scale"`
	Background string  `toml:"background"`
}

type Trace struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			Color:   "#c13030",
			Widgets: true,
			Mode:    session.ModeDraw.String(),
			Draw:    session.DrawLine.String(),
		},
		Canvas: Canvas{OffsetX: session.DefaultOffset.X, OffsetY: session.DefaultOffset.Y},
		Render: Render{Scale: 1, Background: "#ffffff"},
		Trace:  Trace{Level: "off", Output: "-"},
	}
}

// Find walks up from startDir to locate sns.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads explicit when set, otherwise the nearest sns.toml above startDir.
// No file at all yields Default().
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes path over the defaults and validates the result.
// Keys that are absent keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.Path = path
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("trace", "output") && strings.TrimSpace(cfg.Trace.Output) == "" {
		cfg.Trace.Output = "-"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerations and colors.
func (c Config) Validate() error {
	if !ValidColor(c.Editor.Color) {
		return fmt.Errorf("[editor].color %q: %w", c.Editor.Color, ErrBadColor)
	}
	if _, ok := session.ParseMode(c.Editor.Mode); !ok {
		return fmt.Errorf("[editor].mode %q: %w", c.Editor.Mode, ErrBadMode)
	}
	if _, ok := session.ParseDrawMode(c.Editor.Draw); !ok {
		return fmt.Errorf("[editor].draw %q: %w", c.Editor.Draw, ErrBadMode)
	}
	if c.Render.Scale <= 0 || c.Render.Scale > 16 {
		return fmt.Errorf("[render].scale %v: %w", c.Render.Scale, ErrBadScale)
	}
	if !ValidColor(c.Render.Background) {
		return fmt.Errorf("[render].background %q: %w", c.Render.Background, ErrBadColor)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	return nil
}

// Offset returns the device → canvas translation.
func (c Config) Offset() shape.Point {
	return shape.Point{X: c.Canvas.OffsetX, Y: c.Canvas.OffsetY}
}

// SessionOptions maps the [editor] table onto session options.
func (c Config) SessionOptions() session.Options {
	mode, _ := session.ParseMode(c.Editor.Mode)
	draw, _ := session.ParseDrawMode(c.Editor.Draw)
	return session.Options{
		Widgets: c.Editor.Widgets,
		Color:   c.Editor.Color,
		Mode:    mode,
		Draw:    draw,
	}
}

// ValidColor accepts #rgb and #rrggbb hex colors.
func ValidColor(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
