package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
)

// app bundles the settings and services shared by every command. It is
// populated by the root command's PersistentPreRunE.
type app struct {
	v          *viper.Viper
	configPath string
	verbose    bool

	settings  *config.Settings
	direction styleprops.Direction
	logger    *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "stylekit resolves design-system style props into physical style properties",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Settings file (default ./.stylekit.yaml when present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("namespace", "", "CSS custom property namespace")
	pf.String("direction", "", "Writing direction: ltr or rtl (overrides --locale)")
	pf.String("locale", "", "BCP 47 locale used to derive the writing direction")
	pf.StringSlice("breakpoints", nil, "Matched breakpoints, highest priority first")
	pf.String("handlers", "", "Handler table: base or view")
	pf.String("format", "", "Output format: table, json or css")
	pf.String("log-level", "", "Log level: trace, debug, info, warn or error")

	for key, flag := range map[string]string{
		"namespace":   "namespace",
		"direction":   "direction",
		"locale":      "locale",
		"breakpoints": "breakpoints",
		"handlers":    "handlers",
		"format":      "format",
		"log_level":   "log-level",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(newResolveCmd(a))
	cmd.AddCommand(newDimensionCmd(a))
	cmd.AddCommand(newTablesCmd(a))
	cmd.AddCommand(newExploreCmd(a))
	cmd.AddCommand(newWatchCmd(a))
	cmd.AddCommand(newDiffCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	settings, err := config.Load(a.v, a.configPath)
	if err != nil {
		return newCommandError(cmd.Name(), "loading settings", err, "Check --config, STYLEKIT_* variables and flag values.")
	}

	level := settings.LogLevel
	if a.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Writer: cmd.ErrOrStderr(), Component: cmd.Name()})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	dir, err := settings.ResolveDirection()
	if err != nil {
		return newCommandError(cmd.Name(), "resolving writing direction", err, "Use --direction ltr|rtl or a valid --locale.")
	}

	a.settings = settings
	a.direction = dir
	a.logger = log
	return nil
}

func (a *app) resolver() styleprops.Resolver {
	r := a.settings.Resolver()
	r.Logger = a.logger
	return r
}

func (a *app) build(el styleprops.ElementProps) (styleprops.StyleProps, error) {
	table := a.settings.HandlerTable()
	return styleprops.BuildStyleProps(el, styleprops.Options{
		Handlers:    &table,
		Breakpoints: a.settings.MatchedBreakpoints(),
		Direction:   a.direction,
		Resolver:    a.resolver(),
		Logger:      a.logger,
	})
}

func (a *app) context(source string) tui.Context {
	return tui.Context{
		Source:      source,
		Direction:   a.direction,
		Breakpoints: a.settings.MatchedBreakpoints(),
		Handlers:    a.settings.Handlers,
		Namespace:   a.settings.Namespace,
	}
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
