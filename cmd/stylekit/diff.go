package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/cssdecl"
	"github.com/alexisbeaulieu97/stylekit/internal/document"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
)

type diffOptions struct {
	against []string
}

func newDiffCmd(a *app) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Show how a document's style changes between directions or breakpoints",
		Long: `Resolve a props document twice and print the CSS difference.

Without --against the second resolution flips the writing direction. With
--against the second resolution keeps the direction and uses the given
breakpoints instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), a, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.against, "against", nil, "Breakpoints for the second resolution")

	return cmd
}

func runDiff(out io.Writer, a *app, path string, opts *diffOptions) error {
	doc, err := document.Load(path)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("loading %s", path), err, "Fix the reported lines and run the command again.")
	}

	table := a.settings.HandlerTable()
	base := styleprops.Options{
		Handlers:    &table,
		Breakpoints: a.settings.MatchedBreakpoints(),
		Direction:   a.direction,
		Resolver:    a.resolver(),
		Logger:      a.logger,
	}
	other := base
	beforeLabel := fmt.Sprintf("%s (%s)", path, base.Direction)
	var afterLabel string
	if len(opts.against) > 0 {
		other.Breakpoints = opts.against
		beforeLabel = fmt.Sprintf("%s %v", path, base.Breakpoints)
		afterLabel = fmt.Sprintf("%s %v", path, other.Breakpoints)
	} else {
		other.Direction = flipDirection(base.Direction)
		afterLabel = fmt.Sprintf("%s (%s)", path, other.Direction)
	}

	before, err := styleprops.BuildStyleProps(doc.Element(), base)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("resolving %s", path), err, "Every responsive value needs a non-null base entry.")
	}
	after, err := styleprops.BuildStyleProps(doc.Element(), other)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("resolving %s", path), err, "Every responsive value needs a non-null base entry.")
	}

	beforeCSS, afterCSS := cssdecl.Format(before.Style), cssdecl.Format(after.Style)
	text := diff.Lines(beforeCSS, afterCSS, beforeLabel, afterLabel)
	if text == "" {
		fmt.Fprintln(out, "no differences")
		return nil
	}
	added, removed := diff.Changes(beforeCSS, afterCSS)
	fmt.Fprint(out, text)
	fmt.Fprintf(out, "%d added, %d removed\n", added, removed)
	return nil
}

func flipDirection(d styleprops.Direction) styleprops.Direction {
	if d == styleprops.RTL {
		return styleprops.LTR
	}
	return styleprops.RTL
}
