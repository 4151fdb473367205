// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML or YAML configuration with
//              environment variable overrides and maps it onto the typed
//              settings of the ippparse command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Typed analyzer settings, IPPCODE_ environment prefix

/*
Package config provides configuration loading for the IPPcode24 analyzer.

# Basic Configuration Loading

Values are addressed with dot notation:

	cfg, err := mdwconfig.Load("ippparse.toml")
	if err != nil {
		return err
	}

	format := cfg.GetString("output.format", "xml")
	indent := cfg.GetInt("output.indent", 4)

# Environment Variable Integration

With an EnvPrefix every key can be overridden from the environment. The key
is upper-cased and dots become underscores:

	# ippparse.toml
	[output]
	format = "xml"

	IPPCODE_OUTPUT_FORMAT=yaml    # overrides output.format

# Settings

LoadSettings combines defaults, the optional file and the environment and
validates the result:

	settings, err := mdwconfig.LoadSettings(path)
	if err != nil {
		// PARAMETER for invalid content, INPUT_ACCESS for unreadable files
		return err
	}

Errors returned by this package are *mdwerror.Error values carrying the
analyzer error codes.
*/
package config
