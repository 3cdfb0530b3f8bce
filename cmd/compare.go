package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/config"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/loader"
	"github.com/xmazu/envdiff/internal/tui"
	"github.com/xmazu/envdiff/internal/watch"
	"github.com/xmazu/envdiff/internal/workspace"
)

// view renders one of the comparison views.
type view func(r tui.Renderer, m diff.Matrix) error

var (
	flagWatch       bool
	flagInteractive bool
)

// addCompareFlags registers the flags shared by summary, values and presence.
func addCompareFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Re-run the comparison whenever one of the files changes")
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Pick the files to compare from the .env files of the workspace")
	cmd.Args = pathArgs
}

func pathArgs(cmd *cobra.Command, args []string) error {
	switch {
	case flagInteractive && len(args) > 1:
		return fmt.Errorf("--interactive accepts at most one directory, got %d paths", len(args))
	case len(args) == 0 && !flagInteractive:
		return fmt.Errorf("requires at least one path (or --interactive)")
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string, render view) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr())

	settings, err := loadSettings(cmd, logger)
	if err != nil {
		return err
	}

	if flagInteractive {
		args, err = pickFiles(args)
		if err != nil {
			return err
		}
	}

	res, err := loader.Load(ctx, loader.Request{
		Args:    args,
		KeepKey: settings.KeepKey,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := newRenderer(out, settings)
	if err := render(renderer, res.Matrix); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if !flagWatch {
		return nil
	}
	return watchAndRender(ctx, res.Paths, settings, renderer, render, out, logger)
}

func newRenderer(w io.Writer, settings *config.Settings) tui.Renderer {
	masker := settings.Masker(settings.Reveal)
	if settings.Output == config.OutputJSON {
		return tui.NewJSON(w, masker)
	}
	return tui.NewTerminal(w, masker)
}

// pickFiles offers the .env files below the workspace root, or below the
// given directory, for selection.
func pickFiles(args []string) ([]string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	} else if ws, err := workspace.FindRoot("."); err == nil && ws.Found() {
		root = ws.Dir
	}

	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &workspace.PathNotFoundError{Path: root}
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("--interactive needs a directory: %s is a file", root)
	}

	files, err := workspace.ListEnvFiles(root)
	if err != nil {
		return nil, fmt.Errorf("list .env files: %w", err)
	}
	if len(files) == 0 {
		return nil, loader.ErrNoInputFiles
	}

	cwd, _ := os.Getwd()
	display := make([]string, len(files))
	for i, f := range files {
		display[i] = f
		if rel, err := filepath.Rel(cwd, f); err == nil {
			display[i] = rel
		}
	}

	return tui.SelectFiles(display)
}

func watchAndRender(ctx context.Context, paths []string, settings *config.Settings, r tui.Renderer, render view, out io.Writer, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(out, tui.Muted(fmt.Sprintf("Watching %d files, press Ctrl+C to stop.", len(paths))))

	return watch.Watch(ctx, paths, func() error {
		res, err := loader.LoadFiles(ctx, paths, settings.KeepKey, logger)
		if err != nil {
			if errors.Is(err, diff.ErrNoVariablesFound) || errors.Is(err, os.ErrNotExist) {
				logger.Warn("skipping refresh", "err", err)
				return nil
			}
			return err
		}
		fmt.Fprintln(out, tui.Muted("── "+time.Now().Format(time.TimeOnly)+" ──"))
		return render(r, res.Matrix)
	})
}
