package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/listkit/internal/config"
	"github.com/alexisbeaulieu97/listkit/internal/logger"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// AppContext bundles what a command needs once flags are parsed.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	closer io.Closer
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// newAppContext loads the configuration named by the flags, or the defaults,
// and creates the logger it describes. quiet discards logs unless a log file
// is given, for commands that own the terminal.
func newAppContext(flags *rootFlags, stderr io.Writer, quiet bool) (*AppContext, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	app := &AppContext{Config: cfg}
	opts := cfg.LoggerOptions()
	opts.Writer = stderr
	if quiet {
		opts.Writer = io.Discard
	}
	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closer = file
		opts.Writer = file
	}
	if flags.verbose {
		opts.Level = "debug"
	}

	log, err := logger.New(opts)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app.Logger = log
	return app, nil
}

// terminalSize returns the size of out when it is a terminal, or the
// default size.
func terminalSize(out io.Writer) (int, int) {
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if w, h, err := term.GetSize(int(file.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultWidth, defaultHeight
}
