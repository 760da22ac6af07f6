package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/cssdecl"
	"github.com/alexisbeaulieu97/stylekit/internal/document"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
	"github.com/alexisbeaulieu97/stylekit/internal/watch"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
)

type watchOptions struct {
	debounce  time.Duration
	showDiffs bool
}

func newWatchCmd(a *app) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Resolve a props document and re-resolve it on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), a, args[0], opts)
		},
	}

	cmd.Flags().DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-resolving")
	cmd.Flags().BoolVar(&opts.showDiffs, "diff", false, "Print only the CSS changes after the first resolution")

	return cmd
}

// watchSession re-renders one document and remembers the previous CSS so
// that --diff can print changes only.
type watchSession struct {
	out     io.Writer
	app     *app
	path    string
	diffs   bool
	primed  bool
	lastCSS string
}

// render prints the full resolution until one succeeds. After that, in diff
// mode, only the CSS changes since the last successful render are printed.
func (s *watchSession) render(context.Context, string) error {
	if !s.diffs || !s.primed {
		if err := runResolve(s.out, s.app, s.path); err != nil {
			fmt.Fprintln(s.out, tui.Error(err))
			return err
		}
		if s.diffs {
			current, err := s.css()
			if err != nil {
				return err
			}
			s.lastCSS = current
			s.primed = true
		}
		return nil
	}

	current, err := s.css()
	if err != nil {
		fmt.Fprintln(s.out, tui.Error(err))
		return err
	}
	if text := diff.Lines(s.lastCSS, current, "previous", "current"); text != "" {
		fmt.Fprint(s.out, text)
	}
	s.lastCSS = current
	return nil
}

func (s *watchSession) css() (string, error) {
	doc, err := document.Load(s.path)
	if err != nil {
		return "", err
	}
	result, err := s.app.build(doc.Element())
	if err != nil {
		return "", err
	}
	return cssdecl.Format(result.Style), nil
}

func runWatch(ctx context.Context, out io.Writer, a *app, path string, opts *watchOptions) error {
	session := &watchSession{out: out, app: a, path: path, diffs: opts.showDiffs}
	_ = session.render(ctx, path)

	w, err := watch.New(path, session.render, watch.WithDebounce(opts.debounce), watch.WithLogger(a.logger))
	if err != nil {
		return newCommandError("watch", fmt.Sprintf("watching %s", path), err, "Make sure the file's directory exists and is readable.")
	}
	a.logger.WithFields(map[string]any{"path": path}).Info("watching for changes")
	return w.Run(ctx)
}
