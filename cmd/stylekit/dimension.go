package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
)

func newDimensionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dimension <value>",
		Short: "Resolve a single dimension value",
		Long: `Resolve a single dimension value to a CSS length, function or variable reference.

Numbers gain a px suffix. Lengths that already carry a unit pass through,
and "size-100" style tokens become design-system variables. A responsive value
can be given as base=size-100,M=size-200 and is resolved against --breakpoints.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseDimensionArg(args[0])
			if err != nil {
				return newCommandError("dimension", fmt.Sprintf("parsing %q", args[0]), err, "Use a number, a CSS length, a token or base=...,M=... pairs.")
			}
			resolved, err := a.resolver().ResponsiveDimension(value, a.settings.MatchedBreakpoints())
			if err != nil {
				return newCommandError("dimension", fmt.Sprintf("resolving %q", args[0]), err, "Dimensions accept numbers and strings only.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
}

func parseDimensionArg(arg string) (styleprops.Responsive[styleprops.Value], error) {
	if !strings.Contains(arg, "=") {
		v, err := scalarArg(arg)
		if err != nil {
			return styleprops.Responsive[styleprops.Value]{}, err
		}
		return styleprops.Plain(v), nil
	}

	entries := make(map[string]styleprops.Value)
	for _, pair := range strings.Split(arg, ",") {
		bp, raw, ok := strings.Cut(pair, "=")
		bp = strings.TrimSpace(bp)
		if !ok || bp == "" {
			return styleprops.Responsive[styleprops.Value]{}, fmt.Errorf("malformed breakpoint entry %q", pair)
		}
		v, err := scalarArg(strings.TrimSpace(raw))
		if err != nil {
			return styleprops.Responsive[styleprops.Value]{}, err
		}
		entries[bp] = v
	}
	return styleprops.ResponsiveFromMap(entries)
}

func scalarArg(raw string) (styleprops.Value, error) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return styleprops.String(raw), nil
	}
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return styleprops.Null(), fmt.Errorf("%q is not a finite number", raw)
	}
	return styleprops.Number(n), nil
}
