package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
)

type inspectOptions struct {
	Items int
	Grid  int
}

// offsetRow is the divider geometry of one item.
type offsetRow struct {
	Position   int
	Group      int
	SpanIndex  int
	Offsets    divider.Insets
	LastRow    bool
	LastColumn bool
	Hidden     bool
}

func newInspectCmd(root *rootFlags) *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the divider offsets reserved for each item",
		Long: `Inspect lays out the configured list or grid and prints, per item, the row it
belongs to, the insets reserved for its dividers and whether it ends a row or
column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Items, "items", 7, "Number of items")
	cmd.Flags().IntVar(&opts.Grid, "grid", 0, "Inspect a grid with this many spans")

	return cmd
}

func runInspect(cmd *cobra.Command, root *rootFlags, opts inspectOptions) error {
	if opts.Items < 0 {
		return fmt.Errorf("item count must not be negative, got %d", opts.Items)
	}

	app, err := newAppContext(root, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	deco, err := app.Config.Decoration(app.Logger)
	if err != nil {
		return err
	}

	manager := app.Config.Manager()
	if opts.Grid > 0 {
		manager = layout.Grid{SpanCount: opts.Grid, ItemExtent: app.Config.Layout.ItemExtent}
	}
	ctx := manager.Context(app.Config.Viewport(defaultWidth, defaultHeight), opts.Items)
	deco.OnDataSetChanged(ctx)

	rows, err := offsetRows(deco, ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), offsetTable(rows).Render())
	fmt.Fprintf(cmd.OutOrStdout(), "last row full: %s\n", yesNo(deco.GridFull(ctx)))
	return nil
}

func offsetRows(deco *divider.Decoration, ctx divider.LayoutContext) ([]offsetRow, error) {
	rows := make([]offsetRow, 0, ctx.ItemCount)
	for pos := 0; pos < ctx.ItemCount; pos++ {
		offsets, err := deco.ItemOffsets(pos, ctx)
		if err != nil {
			return nil, err
		}
		row := offsetRow{
			Position:   pos,
			Group:      ctx.GroupIndex(pos),
			Offsets:    offsets,
			LastRow:    deco.IsLastRow(pos, ctx),
			LastColumn: deco.IsLastColumn(pos, ctx),
			Hidden:     deco.Policy().Hidden(ctx.GroupIndex(pos), ctx),
		}
		if ctx.IsGrid() {
			row.SpanIndex = ctx.Spans.SpanIndex(pos, ctx.SpanCount)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func offsetTable(rows []offsetRow) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"POS", "GROUP", "SPAN", "LEFT", "TOP", "RIGHT", "BOTTOM", "LAST ROW", "LAST COL", "HIDDEN"})
	for _, r := range rows {
		tw.AppendRow(table.Row{
			r.Position,
			r.Group,
			r.SpanIndex,
			r.Offsets.Left,
			r.Offsets.Top,
			r.Offsets.Right,
			r.Offsets.Bottom,
			yesNo(r.LastRow),
			yesNo(r.LastColumn),
			yesNo(r.Hidden),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 8, Align: text.AlignCenter},
		{Number: 9, Align: text.AlignCenter},
		{Number: 10, Align: text.AlignCenter},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
