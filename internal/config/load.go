package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. STYLEKIT_NAMESPACE.
const EnvPrefix = "STYLEKIT"

// DefaultConfigName is looked up in the working directory when no config file is given.
const DefaultConfigName = ".stylekit"

// NewViper returns a viper instance with defaults and environment binding in place.
// Callers bind command-line flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("namespace", d.Namespace)
	v.SetDefault("direction", d.Direction)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("breakpoints", d.Breakpoints)
	v.SetDefault("handlers", d.Handlers)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (or ./.stylekit.yaml when path is empty and the file exists)
// and returns validated settings.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.NewParseError(path, 0, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, apperrors.NewParseError(DefaultConfigName+".yaml", 0, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, apperrors.NewValidationError("settings", err.Error(), err)
	}
	s.Breakpoints = splitList(s.Breakpoints)

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// splitList flattens comma-separated entries and drops blanks.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
