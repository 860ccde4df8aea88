// Package config loads runtime configuration for the portfolio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in .yaml
//     or .yml are decoded as YAML, everything else as JSON.
//  3. Command-line flags the user explicitly set.
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "base_url": "https://blitzdex27.github.io/portfolio/",
//	  "auth_path": "data/admin-auth.json",
//	  "data_dir": "data",
//	  "fetch_timeout": "5s",
//	  "iterations": 210000,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Keys missing from the file keep their default values.
package config
