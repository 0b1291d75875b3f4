package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/listkit/internal/config"
	"github.com/alexisbeaulieu97/listkit/internal/tui"
)

type demoOptions struct {
	GitPath string
	Grid    int
	Watch   bool
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive list demo",
		Long: `Launch a scrolling list fed page by page. Scrolling near the end loads the
next page; r refreshes from the first page and g switches between list and grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.GitPath, "git", "", "Page through the commits of this git repository")
	cmd.Flags().IntVar(&opts.Grid, "grid", 0, "Start in a grid with this many spans")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the configuration file when it changes")

	return cmd
}

func applyDemoOptions(cfg *config.Config, opts demoOptions) error {
	if opts.GitPath != "" {
		cfg.Feed.Source = "git"
		cfg.Feed.GitPath = opts.GitPath
	}
	if opts.Grid < 0 {
		return fmt.Errorf("grid span count must be positive, got %d", opts.Grid)
	}
	if opts.Grid > 0 {
		cfg.Layout.Kind = config.KindGrid
		cfg.Layout.SpanCount = opts.Grid
		cfg.Layout.Spans = nil
	}
	return nil
}

func runDemo(cmd *cobra.Command, root *rootFlags, opts demoOptions) error {
	app, err := newAppContext(root, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := applyDemoOptions(app.Config, opts); err != nil {
		return err
	}

	m, err := tui.NewModel(tui.Options{
		Config:   app.Config,
		GridSpan: opts.Grid,
		Logger:   app.Logger,
		Context:  cmd.Context(),
	})
	if err != nil {
		return err
	}

	app.Logger.Info("launching demo")
	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.Watch {
		if root.configPath == "" {
			return fmt.Errorf("--watch requires --config")
		}
		watcher, err := config.Watch(root.configPath)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer watcher.Close()
		go forwardReloads(p, watcher.Updates(), opts)
	}

	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}
	app.Logger.Info("demo closed")
	return nil
}

// forwardReloads sends every reloaded configuration to the program until
// the watcher stops.
func forwardReloads(p *tea.Program, updates <-chan config.Reload, opts demoOptions) {
	for r := range updates {
		if r.Err == nil {
			r.Err = applyDemoOptions(r.Config, opts)
		}
		p.Send(tui.ConfigReloadedMsg{Config: r.Config, Err: r.Err})
	}
}
