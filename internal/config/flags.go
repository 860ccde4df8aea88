package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the CLI and applyFlags.
const (
	FlagConfig     = "config"
	FlagBaseURL    = "base-url"
	FlagAuthPath   = "auth-path"
	FlagDataDir    = "data-dir"
	FlagTimeout    = "timeout"
	FlagIterations = "iterations"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
)

// RegisterFlags adds the configuration flags to fs, using the built-in
// defaults for help output.
//
//	-c, --config string      config file (JSON or YAML)
//	-b, --base-url string    site root URL or directory
//	    --auth-path string   admin credential record, relative to base
//	    --data-dir string    content directory, relative to base
//	-t, --timeout duration   fetch timeout
//	    --iterations int     PBKDF2 iterations for new credentials
//	    --log-level string   debug, info, warn or error
//	    --log-format string  text or json
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "config file (JSON or YAML)")
	fs.StringP(FlagBaseURL, "b", d.BaseURL, "site root URL or directory")
	fs.String(FlagAuthPath, d.AuthPath, "admin credential record, relative to base")
	fs.String(FlagDataDir, d.DataDir, "content directory, relative to base")
	fs.DurationP(FlagTimeout, "t", d.FetchTimeout, "fetch timeout")
	fs.Int(FlagIterations, d.Iterations, "PBKDF2 iterations for new credentials")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.String(FlagLogFormat, d.LogFormat, "log format: text or json")
}

// applyFlags copies every flag the user explicitly set into cfg. Flags that
// were not registered on fs are ignored.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagBaseURL:
			cfg.BaseURL, err = fs.GetString(f.Name)
		case FlagAuthPath:
			cfg.AuthPath, err = fs.GetString(f.Name)
		case FlagDataDir:
			cfg.DataDir, err = fs.GetString(f.Name)
		case FlagTimeout:
			cfg.FetchTimeout, err = fs.GetDuration(f.Name)
		case FlagIterations:
			cfg.Iterations, err = fs.GetInt(f.Name)
		case FlagLogLevel:
			cfg.LogLevel, err = fs.GetString(f.Name)
		case FlagLogFormat:
			cfg.LogFormat, err = fs.GetString(f.Name)
		}
	})
	return err
}
