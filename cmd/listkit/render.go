package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/listkit/internal/tui"
	"github.com/alexisbeaulieu97/listkit/pkg/diff"
)

type renderOptions struct {
	Items  int
	Grid   int
	Width  int
	Height int
	Plain  bool
	Expect string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of a list with its dividers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Items, "items", 20, "Number of generated items")
	cmd.Flags().IntVar(&opts.Grid, "grid", 0, "Render a grid with this many spans")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Frame width; defaults to the terminal width")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Frame height; defaults to the terminal height")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print the frame without colors")
	cmd.Flags().StringVar(&opts.Expect, "expect", "", "Compare the plain frame with this golden file and print the differences")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	if opts.Items < 0 {
		return fmt.Errorf("item count must not be negative, got %d", opts.Items)
	}

	app, err := newAppContext(root, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	width, height := terminalSize(cmd.OutOrStdout())
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}

	items := make([]string, 0, opts.Items)
	for i := 0; i < opts.Items; i++ {
		items = append(items, fmt.Sprintf("Item %d", i))
	}

	frame, err := tui.RenderFrame(app.Config, items, opts.Grid, width, height, app.Logger)
	if err != nil {
		return err
	}
	app.Logger.Debugf("frame rendered", map[string]any{"items": opts.Items, "width": width, "height": height})

	if opts.Expect != "" {
		return compareFrame(cmd, opts.Expect, ansi.Strip(frame))
	}
	if opts.Plain {
		frame = ansi.Strip(frame)
	}
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

func compareFrame(cmd *cobra.Command, goldenPath, frame string) error {
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		return fmt.Errorf("read golden frame: %w", err)
	}
	out := diff.Frames(string(golden), frame, goldenPath, "rendered")
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "frame matches %s\n", goldenPath)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return fmt.Errorf("frame differs from %s in %d lines", goldenPath, diff.Changed(string(golden), frame))
}
