package cli

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"

	"github.com/blitzdex27/portfolio/internal/adminauth"
	"github.com/blitzdex27/portfolio/internal/common"
	"github.com/blitzdex27/portfolio/internal/config"
	"github.com/blitzdex27/portfolio/internal/content"
	"github.com/blitzdex27/portfolio/internal/logging"
	"github.com/blitzdex27/portfolio/internal/netx"
)

// App carries what every command needs once configuration is loaded.
type App struct {
	config *config.Config
	logger logging.Logger
	client *http.Client
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		client: &http.Client{},
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// configure installs cfg and builds the logger from it.
func (a *App) configure(cfg *config.Config) {
	a.config = cfg
	a.logger = logging.New(cfg.LogLevel, cfg.LogFormat, a.errOut)
}

// authSource returns the record location: override when set, otherwise
// BaseURL joined with AuthPath.
func (a *App) authSource(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return netx.Resolve(a.config.BaseURL, a.config.AuthPath)
}

func (a *App) provider(override string) (*adminauth.Provider, error) {
	src, err := a.authSource(override)
	if err != nil {
		return nil, err
	}
	return adminauth.NewProvider(src, a.client, a.config.FetchTimeout, a.logger), nil
}

func (a *App) contentLoader() *content.Loader {
	return content.NewLoader(a.config.BaseURL, a.config.DataDir, a.client, a.config.FetchTimeout, a.logger)
}

// password returns the password either from the first line of stdin or from
// an interactive prompt.
func (a *App) password(fromStdin bool, prompt string) ([]byte, error) {
	if fromStdin {
		line, err := ReadLine(a.in)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, common.ErrEmptyPassword
		}
		return []byte(line), nil
	}

	pw, err := GetPassword(a.errOut, prompt)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, common.ErrEmptyPassword
	}
	return pw, nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
