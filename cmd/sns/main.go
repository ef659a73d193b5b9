package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sns/internal/config"
	"sns/internal/observ"
	"sns/internal/prof"
	"sns/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sns",
	Short: "Bidirectional editor for shape programs",
	Long: `sns edits programs of line/rect/ellipse statements either as text or by
direct manipulation of their control points; every canvas gesture is written
back into the program text.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

// состояние одного запуска, заполняется в setupCommand
var (
	cfg          = config.Default()
	timer        *observ.Timer
	traceCleanup = func() {}
	profiling    *prof.Session
)

func init() {
	rootCmd.Version = version.Get().Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sceneCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to sns.toml (default: search upwards)")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug); overrides [trace].level")
	rootCmd.PersistentFlags().String("trace-output", "", "trace destination (- for stderr, *.ndjson for NDJSON)")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

func main() {
	err := rootCmd.Execute()
	// PersistentPostRun не вызывается после ошибки RunE, поэтому закрываем здесь
	finish(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}

func setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	colorMode, err := parseTristate("color", colorFlag)
	if err != nil {
		return err
	}
	color.NoColor = !colorMode.enabled(os.Stdout)

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if cfg, err = config.Resolve(configPath, "."); err != nil {
		return err
	}

	timer = nil
	if on, _ := flags.GetBool("timings"); on {
		timer = observ.NewTimer()
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup

	return startProfiling(flags)
}

// finish flushes tracing, stops profiles and prints timings; safe to call twice.
func finish(w io.Writer) {
	traceCleanup()
	traceCleanup = func() {}
	if err := profiling.Stop(); err != nil {
		fmt.Fprintf(w, "profile: %v\n", err)
	}
	profiling = nil
	if timer != nil && timer.Len() > 0 {
		fmt.Fprint(w, timer.Summary())
	}
	timer = nil
}

func startProfiling(flags *pflag.FlagSet) error {
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	profiling, err = prof.Start(opts)
	return err
}
