package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/cssdecl"
	"github.com/alexisbeaulieu97/stylekit/internal/document"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve the style props of a props document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.OutOrStdout(), a, args[0])
		},
	}
}

func runResolve(out io.Writer, a *app, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("loading %s", path), err, "Fix the reported lines and run the command again.")
	}

	result, err := a.build(doc.Element())
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %s", path), err, "Every responsive value needs a non-null base entry.")
	}

	return renderResult(out, a.settings.Format, a.context(path), doc.Props, result)
}

type resultJSON struct {
	Style     styleprops.Style `json:"style"`
	ClassName string           `json:"className,omitempty"`
	Hidden    bool             `json:"hidden,omitempty"`
}

func renderResult(out io.Writer, format string, ctx tui.Context, props *styleprops.Props, result styleprops.StyleProps) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		style := result.Style
		if style == nil {
			style = styleprops.Style{}
		}
		return enc.Encode(resultJSON{Style: style, ClassName: result.ClassName, Hidden: result.Hidden})

	case "css":
		_, err := io.WriteString(out, cssdecl.Format(result.Style))
		return err

	default:
		fmt.Fprintln(out, tui.Header(ctx))
		if props.Len() > 0 {
			fmt.Fprintln(out, tui.PropsTable(props))
		}
		if len(result.Style) == 0 {
			fmt.Fprintln(out, tui.Empty())
		} else {
			fmt.Fprintln(out, tui.StyleTable(result.Style))
		}
		if result.ClassName != "" {
			fmt.Fprintf(out, "class: %s\n", result.ClassName)
		}
		if result.Hidden {
			fmt.Fprintln(out, "hidden: true")
		}
		return nil
	}
}
