package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sns/internal/session"
	"sns/internal/shape"
	"sns/internal/source"
	"sns/internal/trace"
)

// parsePoint reads "X,Y" (spaces and brackets allowed).
func parsePoint(value string) (shape.Point, error) {
	trimmed := strings.Trim(strings.TrimSpace(value), "[]()")
	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return shape.Point{}, fmt.Errorf("invalid point %q (expected X,Y)", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return shape.Point{}, fmt.Errorf("invalid point %q: %w", value, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return shape.Point{}, fmt.Errorf("invalid point %q: %w", value, err)
	}
	return shape.Point{X: x, Y: y}, nil
}

// sessionOptions merges the [editor] table with the tracer and timer of this run.
func sessionOptions(cmd *cobra.Command) session.Options {
	opts := cfg.SessionOptions()
	opts.Tracer = trace.FromContext(cmd.Context())
	opts.Timer = timer
	return opts
}

// openSession loads path and builds an editor over its content.
func openSession(cmd *cobra.Command, path string) (*source.File, *session.Editor, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return file, session.New(string(file.Content), sessionOptions(cmd)), nil
}
