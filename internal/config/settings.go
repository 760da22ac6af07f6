// Package config loads CLI settings for stylekit from a config file,
// STYLEKIT_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"github.com/alexisbeaulieu97/stylekit/internal/locale"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
)

// Settings holds everything the resolver needs besides the props themselves.
type Settings struct {
	Namespace   string   `mapstructure:"namespace" validate:"required,css_ident"`
	Direction   string   `mapstructure:"direction" validate:"omitempty,direction"`
	Locale      string   `mapstructure:"locale" validate:"omitempty,bcp47_language_tag"`
	Breakpoints []string `mapstructure:"breakpoints" validate:"dive,required,css_ident"`
	Handlers    string   `mapstructure:"handlers" validate:"required,handler_table"`
	Format      string   `mapstructure:"format" validate:"required,oneof=table json css"`
	LogLevel    string   `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Namespace:   styleprops.DefaultNamespace,
		Breakpoints: []string{styleprops.BaseBreakpoint},
		Handlers:    "view",
		Format:      "table",
		LogLevel:    "warn",
	}
}

// ResolveDirection prefers an explicit direction, then the locale, then LTR.
func (s Settings) ResolveDirection() (styleprops.Direction, error) {
	if s.Direction != "" {
		return styleprops.ParseDirection(s.Direction)
	}
	if s.Locale != "" {
		return locale.DirectionFor(s.Locale)
	}
	return styleprops.LTR, nil
}

// HandlerTable returns the prebuilt table named by Handlers.
func (s Settings) HandlerTable() styleprops.Handlers {
	h, ok := styleprops.HandlersByName(s.Handlers)
	if !ok {
		return styleprops.ViewStyleProps
	}
	return h
}

// MatchedBreakpoints returns the configured breakpoints, or just "base".
func (s Settings) MatchedBreakpoints() []string {
	if len(s.Breakpoints) == 0 {
		return []string{styleprops.BaseBreakpoint}
	}
	out := make([]string, len(s.Breakpoints))
	copy(out, s.Breakpoints)
	return out
}

// Resolver returns a resolver using the configured namespace.
func (s Settings) Resolver() styleprops.Resolver {
	return styleprops.Resolver{Namespace: s.Namespace}
}
