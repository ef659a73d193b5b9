package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sns/internal/version"
)

type versionPayload struct {
	Tool string `json:"tool"`
	version.Info
}

var (
	versionFormat string
	versionFull   bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "include commit hash and build date")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sns build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "pretty":
			return renderVersionPretty(cmd.OutOrStdout(), version.Get(), versionFull)
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), version.Get())
		default:
			return fmt.Errorf("unknown format: %s", versionFormat)
		}
	},
}

func renderVersionPretty(w io.Writer, info version.Info, full bool) error {
	if _, err := fmt.Fprintf(w, "sns %s\n", version.Colored()); err != nil {
		return err
	}
	if !full {
		return nil
	}
	label := color.New(color.Faint)
	if info.GitCommit != "" {
		if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprint("commit:"), info.GitCommit); err != nil {
			return err
		}
	}
	if info.BuildDate != "" {
		if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprint("built: "), info.BuildDate); err != nil {
			return err
		}
	}
	return nil
}

func renderVersionJSON(w io.Writer, info version.Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(versionPayload{Tool: "sns", Info: info})
}
