package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives trace events. Emit must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
}

// Nop discards everything; it is what FromContext returns by default.
var Nop Tracer = off{}

type off struct{}

func (off) Emit(*Event)  {}
func (off) Flush() error { return nil }
func (off) Close() error { return nil }
func (off) Level() Level { return LevelOff }

// Config describes where a tracer writes.
type Config struct {
	Level      Level
	Format     Format    // FormatAuto: ndjson for *.ndjson and *.jsonl, text otherwise
	Output     io.Writer // wins over OutputPath
	OutputPath string    // "" or "-" means stderr
	RingSize   int       // >0: the last RingSize events are also kept for Recorder.Tail
}

// New builds a tracer from cfg. Any level but LevelOff yields a *Recorder.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") || strings.HasSuffix(cfg.OutputPath, ".jsonl") {
			format = FormatNDJSON
		}
	}

	var w io.Writer
	switch {
	case cfg.Output != nil:
		w = cfg.Output
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		w = struct{ io.Writer }{os.Stderr} // без Close: stderr не закрываем
	default:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace output: %w", err)
		}
		w = f
	}

	rec := NewStream(w, cfg.Level, format)
	if cfg.RingSize > 0 {
		rec.ring = make([]Event, cfg.RingSize)
	}
	return rec, nil
}

func enabled(t Tracer) bool { return t != nil && t.Level() > LevelOff }
