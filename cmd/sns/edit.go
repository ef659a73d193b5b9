package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sns/internal/session"
	"sns/internal/shape"
	"sns/internal/textedit"
	"sns/internal/trace"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Apply one canvas gesture to a program file",
	Long: `Edit replays a single canvas gesture (move, delete, recolor, rename, create, group)
against a program and writes the rewritten text back. Coordinates are canvas
coordinates unless --device is set.`,
}

func init() {
	editCmd.PersistentFlags().Bool("stdout", false, "print the result instead of rewriting the file")
	editCmd.PersistentFlags().Bool("device", false, "treat coordinates as device coordinates ([canvas] offset applies)")

	moveCmd := gestureCmd("move <file.sns>", "Drag the control point nearest to --at onto --to", runMove)
	moveCmd.Flags().String("at", "", "press position X,Y")
	moveCmd.Flags().String("to", "", "release position X,Y")
	markRequired(moveCmd, "at", "to")

	deleteCmd := gestureCmd("delete <file.sns>", "Delete the shape owning the control point nearest to --at", runAttr(session.ModeDelete))
	deleteCmd.Flags().String("at", "", "click position X,Y")
	markRequired(deleteCmd, "at")

	recolorCmd := gestureCmd("recolor <file.sns>", "Replace the color of the nearest shape", runAttr(session.ModeRecolor))
	recolorCmd.Flags().String("at", "", "click position X,Y")
	recolorCmd.Flags().String("color", "", "new color (default: [editor].color)")
	markRequired(recolorCmd, "at")

	renameCmd := gestureCmd("rename <file.sns>", "Rename the nearest shape", runAttr(session.ModeRename))
	renameCmd.Flags().String("at", "", "click position X,Y")
	renameCmd.Flags().String("name", "", "new name; whitespace is removed")
	markRequired(renameCmd, "at", "name")

	createCmd := gestureCmd("create <file.sns>", "Append a new line, rect or ellipse spanning --from to --to", runCreate)
	createCmd.Flags().String("kind", "", "shape kind (line|rect|ellipse)")
	createCmd.Flags().String("from", "", "press position X,Y")
	createCmd.Flags().String("to", "", "release position X,Y")
	createCmd.Flags().String("color", "", "shape color (default: [editor].color)")
	createCmd.Flags().Int("counter", 1, "numeric suffix of the generated name")
	markRequired(createCmd, "kind", "from", "to")

	groupCmd := gestureCmd("group <file.sns>", "Append a scaled copy of every shape into the --from/--to box", runGroup)
	groupCmd.Flags().String("from", "", "press position X,Y")
	groupCmd.Flags().String("to", "", "release position X,Y")
	groupCmd.Flags().Int("counter", 1, "numeric suffix of the first generated name")
	markRequired(groupCmd, "from", "to")

	editCmd.AddCommand(moveCmd, deleteCmd, recolorCmd, renameCmd, createCmd, groupCmd)
}

type gestureFunc func(cmd *cobra.Command, ed *session.Editor) error

func gestureCmd(use, short string, run gestureFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGesture(cmd, args[0], run)
		},
	}
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func runGesture(cmd *cobra.Command, path string, run gestureFunc) error {
	_, ed, err := openSession(cmd, path)
	if err != nil {
		return err
	}
	if ed.Err() != nil {
		return fmt.Errorf("%s: %w", path, ed.Err())
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "edit "+cmd.Name(), 0)
	before := ed.Text()
	err = run(cmd, ed)
	span.End(outcome(before, ed.Text(), err))
	if err != nil {
		return err
	}
	if ed.Text() == before {
		fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("no change:"), "no shape matched the gesture")
	}

	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("failed to get stdout flag: %w", err)
	}
	if toStdout {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ed.Text())
		return err
	}
	if ed.Text() == before {
		return nil
	}
	return textedit.WriteFile(path, ed.Text())
}

func outcome(before, after string, err error) string {
	switch {
	case err != nil:
		return "error"
	case before == after:
		return "unchanged"
	}
	return "rewritten"
}

// pointFlag reads an X,Y flag, translating device coordinates when --device is set.
func pointFlag(cmd *cobra.Command, name string) (shape.Point, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return shape.Point{}, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	p, err := parsePoint(raw)
	if err != nil {
		return shape.Point{}, fmt.Errorf("--%s: %w", name, err)
	}
	device, err := cmd.Flags().GetBool("device")
	if err != nil {
		return shape.Point{}, fmt.Errorf("failed to get device flag: %w", err)
	}
	if device {
		p = session.DeviceToCanvas(p, cfg.Offset())
	}
	return p, nil
}

func runMove(cmd *cobra.Command, ed *session.Editor) error {
	at, err := pointFlag(cmd, "at")
	if err != nil {
		return err
	}
	to, err := pointFlag(cmd, "to")
	if err != nil {
		return err
	}
	ed.SetMode(session.ModeMove)
	ed.Press(at)
	if err := ed.Move(to); err != nil {
		return err
	}
	return ed.Release(to)
}

func runAttr(mode session.Mode) gestureFunc {
	return func(cmd *cobra.Command, ed *session.Editor) error {
		at, err := pointFlag(cmd, "at")
		if err != nil {
			return err
		}
		switch mode {
		case session.ModeRecolor:
			c, err := cmd.Flags().GetString("color")
			if err != nil {
				return fmt.Errorf("failed to get color flag: %w", err)
			}
			if c != "" {
				ed.SetColor(c)
			}
		case session.ModeRename:
			name, err := cmd.Flags().GetString("name")
			if err != nil {
				return fmt.Errorf("failed to get name flag: %w", err)
			}
			ed.SetRenameText(name)
		}
		ed.SetMode(mode)
		ed.Press(at)
		return ed.Release(at)
	}
}

func runCreate(cmd *cobra.Command, ed *session.Editor) error {
	kindFlag, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	draw, ok := session.ParseDrawMode(kindFlag)
	if !ok || draw == session.DrawGroup {
		return fmt.Errorf("invalid --kind %q (expected line|rect|ellipse)", kindFlag)
	}
	c, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if c != "" {
		ed.SetColor(strings.TrimSpace(c))
	}
	ed.SetMode(session.ModeDraw)
	ed.SetDrawMode(draw)
	return drag(cmd, ed)
}

func runGroup(cmd *cobra.Command, ed *session.Editor) error {
	ed.SetMode(session.ModeDraw)
	ed.SetDrawMode(session.DrawGroup)
	return drag(cmd, ed)
}

// drag performs a press at --from and a release at --to with the --counter suffix.
func drag(cmd *cobra.Command, ed *session.Editor) error {
	counter, err := cmd.Flags().GetInt("counter")
	if err != nil {
		return fmt.Errorf("failed to get counter flag: %w", err)
	}
	if counter < 1 {
		return fmt.Errorf("--counter must be at least 1, got %d", counter)
	}
	ed.SetCounter(counter)
	from, err := pointFlag(cmd, "from")
	if err != nil {
		return err
	}
	to, err := pointFlag(cmd, "to")
	if err != nil {
		return err
	}
	ed.Press(from)
	return ed.Release(to)
}
