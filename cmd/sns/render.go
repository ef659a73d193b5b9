package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sns/internal/batch"
	"sns/internal/raster"
	"sns/internal/trace"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <file.sns>...",
	Short: "Render programs to PNG",
	Long:  `Render rasterizes each program onto the square canvas and writes <name>.png next to it, or into --out`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "output directory (default: next to each source)")
	renderCmd.Flags().Bool("no-widgets", false, "omit labels and control-point handles")
	renderCmd.Flags().Float64("scale", 0, "pixels per canvas unit (default: [render].scale)")
	renderCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	renderCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runRender(cmd *cobra.Command, args []string) error {
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	noWidgets, err := cmd.Flags().GetBool("no-widgets")
	if err != nil {
		return fmt.Errorf("failed to get no-widgets flag: %w", err)
	}
	scale, err := cmd.Flags().GetFloat64("scale")
	if err != nil {
		return fmt.Errorf("failed to get scale flag: %w", err)
	}
	if scale <= 0 {
		scale = cfg.Render.Scale
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseTristate("ui", uiFlag)
	if err != nil {
		return err
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	req := &batch.Request{
		Files:   args,
		OutDir:  outDir,
		Widgets: !noWidgets && cfg.Editor.Widgets,
		Raster:  raster.Options{Scale: scale, Background: cfg.Render.Background},
		Jobs:    jobs,
		Tracer:  trace.FromContext(cmd.Context()),
	}

	span := trace.Begin(req.Tracer, trace.ScopeCommand, "cmd render", 0)
	ctx := trace.WithParent(cmd.Context(), span)
	idx := timer.Begin("render")
	var results []batch.Result
	if mode.enabled(os.Stdout) {
		results, err = runRenderWithUI(ctx, "sns render", req)
	} else {
		results, err = batch.Render(ctx, req)
		printResults(cmd.OutOrStdout(), results)
	}
	timer.End(idx, fmt.Sprintf("%d files", len(args)))
	span.End(fmt.Sprintf("%d files", len(args)))
	return err
}

func printResults(w io.Writer, results []batch.Result) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", color.RedString("fail"), r.Path, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s (%.1f ms)\n", color.GreenString("ok  "), r.Path, r.Out, float64(r.Elapsed.Microseconds())/1000)
	}
}
