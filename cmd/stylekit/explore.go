package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/document"
	"github.com/alexisbeaulieu97/stylekit/internal/tui/explore"
	"github.com/alexisbeaulieu97/stylekit/internal/watch"
)

func newExploreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explore <file>",
		Short: "Explore a props document interactively",
		Long: `Open an interactive view of a props document. Flip the writing direction,
drop breakpoints from the matched list and swap handler tables to see how the
resolved style changes. The view reloads when the file is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, a, args[0])
		},
	}
}

func runExplore(cmd *cobra.Command, a *app, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return newCommandError("explore", fmt.Sprintf("loading %s", path), err, "Fix the reported lines and run the command again.")
	}

	model := explore.New(explore.Config{
		Source:      path,
		Element:     doc.Element(),
		Resolver:    a.resolver(),
		Handlers:    a.settings.Handlers,
		Breakpoints: a.settings.MatchedBreakpoints(),
		Direction:   a.direction,
		Logger:      a.logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	w, err := watch.New(path, func(_ context.Context, p string) error {
		doc, err := document.Load(p)
		if err != nil {
			program.Send(explore.ElementChangedMsg{Err: err})
			return err
		}
		program.Send(explore.ElementChangedMsg{Element: doc.Element()})
		return nil
	}, watch.WithLogger(a.logger))
	if err != nil {
		a.logger.Error(err, "live reload disabled")
	} else {
		go func() {
			if err := w.Run(ctx); err != nil {
				a.logger.Error(err, "watcher stopped")
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}
