// File: settings.go
// Title: Analyzer Settings
// Description: Typed settings for the ippparse command, read from a Config
//              and validated before any source is analyzed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "IPPCODE"

// Supported values for the enumerated settings
var (
	LogLevels     = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	LogFormats    = []string{"text", "json", "logfmt"}
	OutputFormats = []string{"xml", "yaml", "table"}
)

// Settings holds everything the command needs besides its flags
type Settings struct {
	Log    LogSettings
	Output OutputSettings
}

// LogSettings controls the diagnostic logger
type LogSettings struct {
	Level  string
	Format string
}

// OutputSettings controls how the program tree is written
type OutputSettings struct {
	Format string
	Indent int
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputSettings{
			Format: "xml",
			Indent: 4,
		},
	}
}

func defaultValues() map[string]interface{} {
	defaults := DefaultSettings()
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  defaults.Log.Level,
			"format": defaults.Log.Format,
		},
		"output": map[string]interface{}{
			"format": defaults.Output.Format,
			"indent": defaults.Output.Indent,
		},
	}
}

// LoadSettings reads settings from the file at path, or from defaults and
// the environment only when path is empty. The result is validated.
func LoadSettings(path string) (Settings, error) {
	options := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  defaultValues(),
	}

	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = LoadFromString("", options)
	} else {
		cfg, err = LoadWithOptions(path, options)
	}
	if err != nil {
		return Settings{}, err
	}

	settings := FromConfig(cfg)
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// FromConfig maps a Config onto Settings, falling back to defaults
func FromConfig(cfg *Config) Settings {
	defaults := DefaultSettings()
	return Settings{
		Log: LogSettings{
			Level:  strings.ToLower(cfg.GetString("log.level", defaults.Log.Level)),
			Format: strings.ToLower(cfg.GetString("log.format", defaults.Log.Format)),
		},
		Output: OutputSettings{
			Format: strings.ToLower(cfg.GetString("output.format", defaults.Output.Format)),
			Indent: cfg.GetInt("output.indent", defaults.Output.Indent),
		},
	}
}

// Validate checks that every setting holds a supported value
func (s Settings) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"log.level", s.Log.Level, LogLevels},
		{"log.format", s.Log.Format, LogFormats},
		{"output.format", s.Output.Format, OutputFormats},
	}

	for _, check := range checks {
		if !contains(check.allowed, check.value) {
			return mdwerror.New(fmt.Sprintf("invalid %s: %q", check.key, check.value)).
				WithCode(mdwerror.CodeParameter).
				WithOperation("config.Validate").
				WithDetail("key", check.key).
				WithDetail("allowed", strings.Join(check.allowed, ", "))
		}
	}

	if s.Output.Indent < 0 || s.Output.Indent > 16 {
		return mdwerror.New(fmt.Sprintf("invalid output.indent: %d", s.Output.Indent)).
			WithCode(mdwerror.CodeParameter).
			WithOperation("config.Validate").
			WithDetail("key", "output.indent")
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
