package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sns/internal/diagfmt"
	"sns/internal/parser"
	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/source"
)

var errHasDiagnostics = errors.New("program has syntax errors")

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.sns>",
	Short: "Parse a program and list its shapes and control points",
	Long:  `Parse checks the syntax of a program and prints the recognised shapes together with the control points the canvas would offer`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|dump)")
	parseCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to report")
	parseCmd.Flags().Int("context", 1, "source lines of context around each diagnostic")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	contextLines, err := cmd.Flags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}

	file, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	idx := timer.Begin("parse")
	tree, bag := parser.Diagnose(file, maxDiagnostics)
	timer.End(idx, "")

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		if err := diagfmt.JSON(out, bag, file, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, Max: maxDiagnostics}); err != nil {
			return err
		}
		if bag.HasErrors() {
			return errHasDiagnostics
		}
		return nil
	case "pretty", "dump":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		opts := diagfmt.PrettyOpts{
			Color:     !color.NoColor && isTerminal(os.Stderr),
			Context:   int8(min(max(contextLines, 0), 8)),
			ShowNotes: true,
		}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), bag, file, opts); err != nil {
			return err
		}
		return errHasDiagnostics
	}

	idx = timer.Begin("extract")
	shapes := shape.Extract(file, tree)
	timer.End(idx, fmt.Sprintf("%d shapes", len(shapes)))
	s := scene.Build(shapes, scene.Options{})

	if format == "dump" {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		dumper.Fdump(out, shapes)
		return nil
	}
	return printShapes(out, s)
}

func printShapes(w io.Writer, s *scene.Scene) error {
	kind := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	next := 0
	for _, sh := range s.Shapes {
		h := sh.Head()
		if _, err := fmt.Fprintf(w, "%s %s %s\n", kind.Sprintf("%-7s", sh.Kind()), name.Sprint(h.Name), dim.Sprint(h.Color.Value)); err != nil {
			return err
		}
		for ; next < len(s.Points) && s.Points[next].Owner() == sh; next++ {
			cp := s.Points[next]
			if _, err := fmt.Fprintf(w, "  %-12s %-12s %s\n", cp.Role(), cp.Pos(), dim.Sprintf("%q @ %s", cp.OldText(), cp.Span())); err != nil {
				return err
			}
		}
	}
	return nil
}
