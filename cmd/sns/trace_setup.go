package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sns/internal/trace"
)

// ringSize is the in-memory trace buffer shown by the tui trace pane.
const ringSize = 256

// setupTracing resolves the tracer from flags (falling back to the [trace]
// table) and attaches it to the command context.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	if levelStr == "" {
		levelStr = cfg.Trace.Level
	}
	output, err := flags.GetString("trace-output")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-output flag: %w", err)
	}
	if output == "" {
		output = cfg.Trace.Output
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tc := trace.Config{
		Level:      level,
		Format:     trace.FormatAuto,
		OutputPath: output,
	}
	// интерактивный редактор держит хвост событий в памяти для панели трассировки
	if cmd.Name() == tuiCmd.Name() {
		tc.RingSize = ringSize
	}
	tracer, err := trace.New(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)

	return func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
