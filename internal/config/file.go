package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blitzdex27/portfolio/internal/timex"
)

// FileConfig is a DTO used exclusively for decoding config files. Pointer
// fields let a file override only the keys it mentions.
type FileConfig struct {
	BaseURL      *string         `json:"base_url" yaml:"base_url"`
	AuthPath     *string         `json:"auth_path" yaml:"auth_path"`
	DataDir      *string         `json:"data_dir" yaml:"data_dir"`
	FetchTimeout *timex.Duration `json:"fetch_timeout" yaml:"fetch_timeout"`
	Iterations   *int            `json:"iterations" yaml:"iterations"`
	LogLevel     *string         `json:"log_level" yaml:"log_level"`
	LogFormat    *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with values from the file at path. An empty path is
// a no-op; a missing or malformed file is an error.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.AuthPath != nil {
		cfg.AuthPath = *fc.AuthPath
	}
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.FetchTimeout != nil {
		cfg.FetchTimeout = fc.FetchTimeout.Duration
	}
	if fc.Iterations != nil {
		cfg.Iterations = *fc.Iterations
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	return nil
}
