package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sns/internal/scenecodec"
)

var sceneCmd = &cobra.Command{
	Use:   "scene [flags] <file.sns>",
	Short: "Export the derived scene (primitives and control points)",
	Long:  `Scene builds the display list of a program and writes it as JSON or MessagePack for external renderers`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScene,
}

func init() {
	sceneCmd.Flags().String("format", "json", "output format (json|msgpack)")
	sceneCmd.Flags().Bool("no-widgets", false, "omit labels and control-point handles")
}

func runScene(cmd *cobra.Command, args []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := scenecodec.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	noWidgets, err := cmd.Flags().GetBool("no-widgets")
	if err != nil {
		return fmt.Errorf("failed to get no-widgets flag: %w", err)
	}

	_, ed, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	if noWidgets {
		ed.SetWidgets(false)
	}

	idx := timer.Begin("encode")
	doc := scenecodec.FromScene(ed.Scene(), nil, ed.Err())
	err = scenecodec.Encode(cmd.OutOrStdout(), &doc, format)
	timer.End(idx, formatFlag)
	return err
}
