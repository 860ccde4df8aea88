package adminauth

import (
	"context"
	"net/http"
	"time"

	"github.com/blitzdex27/portfolio/internal/logging"
	"github.com/blitzdex27/portfolio/internal/netx"
)

// Provider loads the published AuthConfig and falls back to DefaultConfig
// whenever the published record cannot be used.
type Provider struct {
	source  string
	client  *http.Client
	timeout time.Duration
	logger  logging.Logger
}

// NewProvider returns a Provider reading from source, an http(s) URL, file URL
// or path. timeout bounds each Load (zero means only ctx bounds it). A nil
// client means http.DefaultClient; a nil logger discards output.
func NewProvider(source string, client *http.Client, timeout time.Duration, logger logging.Logger) *Provider {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Provider{
		source:  source,
		client:  client,
		timeout: timeout,
		logger:  logger.With("source", source),
	}
}

// Source returns the location the Provider reads from.
func (p *Provider) Source() string {
	return p.source
}

// Load returns the published record, or DefaultConfig on a network error,
// non-2xx status, malformed JSON or a record that fails validation. It never
// fails; the reason for a fallback is logged at WARN.
func (p *Provider) Load(ctx context.Context) AuthConfig {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cfg, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn(ctx, "using default admin auth config", "error", err)
		return DefaultConfig()
	}

	if !cfg.Algorithm.Known() {
		p.logger.Warn(ctx, "admin auth config has unknown algorithm label", "algorithm", string(cfg.Algorithm))
	}
	p.logger.Debug(ctx, "loaded admin auth config", "version", cfg.Version, "iterations", cfg.Iterations)
	return cfg
}

func (p *Provider) fetch(ctx context.Context) (AuthConfig, error) {
	return decodeRecord(func(v any) error {
		return netx.GetJSON(ctx, p.client, p.source, v)
	})
}
