package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sns/internal/trace"
	"sns/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [flags] <file.sns>",
	Short: "Edit a program interactively in the terminal",
	Long: `Tui opens the program next to a live canvas. Mouse gestures on the canvas
rewrite the text; the file is reloaded when it changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("no-watch", false, "do not reload the file on external changes")
}

func runTUI(cmd *cobra.Command, args []string) error {
	noWatch, err := cmd.Flags().GetBool("no-watch")
	if err != nil {
		return fmt.Errorf("failed to get no-watch flag: %w", err)
	}
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("tui requires a terminal")
	}

	tracer := trace.FromContext(cmd.Context())
	opts := ui.EditorOptions{
		Session:    sessionOptions(cmd),
		Background: cfg.Render.Background,
		Watch:      !noWatch,
	}
	if rec, ok := tracer.(*trace.Recorder); ok && rec.Keeps() {
		opts.Ring = rec
	}

	span := trace.Begin(tracer, trace.ScopeCommand, "tui", 0)
	err = ui.RunEditor(cmd.Context(), args[0], opts)
	span.End(args[0])
	return err
}
