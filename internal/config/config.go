package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the portfolio CLI.
//
// Fields:
//   - BaseURL: root of the published site (URL or local directory).
//   - AuthPath: admin credential record, relative to BaseURL.
//   - DataDir: content JSON directory, relative to BaseURL.
//   - FetchTimeout: upper bound for every resource fetch.
//   - Iterations: PBKDF2 work factor for newly created credentials.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
type Config struct {
	BaseURL      string
	AuthPath     string
	DataDir      string
	FetchTimeout time.Duration
	Iterations   int
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates c with development defaults pointing at a local
// dev server.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5173/"
	c.AuthPath = "data/admin-auth.json"
	c.DataDir = "data"
	c.FetchTimeout = 5 * time.Second
	c.Iterations = 210000
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config by applying defaults, then the file at path
// (skipped when path is empty), then any flags in fs the user set. fs may be
// nil.
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}
