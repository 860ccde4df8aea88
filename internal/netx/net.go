// Package netx fetches small JSON resources from the published site, or from
// disk when the site is not reachable over HTTP.
package netx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/blitzdex27/portfolio/internal/common"
)

// MaxBodySize caps how much of a response is read. Content files are a few
// kilobytes.
const MaxBodySize = 1 << 20

// GetJSON loads the JSON document at location and decodes it into v.
//
// Supported locations:
//   - http:// and https:// URLs, fetched with caching disabled; any status
//     outside 200-299 yields common.ErrUnexpectedStatus
//   - file:// URLs and plain filesystem paths
//
// A nil client means http.DefaultClient. Deadlines come from ctx.
func GetJSON(ctx context.Context, client *http.Client, location string, v any) error {
	body, err := Fetch(ctx, client, location)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", location, err)
	}
	return nil
}

// Fetch returns the raw bytes at location. See GetJSON for the supported forms.
func Fetch(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", location, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return fetchHTTP(ctx, client, location)
	case "file":
		return readFile(ctx, u.Path)
	case "":
		return readFile(ctx, location)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedSource, u.Scheme)
	}
}

func fetchHTTP(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, fmt.Errorf("%w: %s from %s", common.ErrUnexpectedStatus, resp.Status, location)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	if len(b) > MaxBodySize {
		return nil, fmt.Errorf("read %s: body exceeds %d bytes", location, MaxBodySize)
	}
	return b, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(b) > MaxBodySize {
		return nil, fmt.Errorf("read %s: file exceeds %d bytes", path, MaxBodySize)
	}
	return b, nil
}

// Resolve joins a relative resource path onto base. base may be a URL or a
// directory; an empty base returns rel unchanged.
func Resolve(base, rel string) (string, error) {
	if base == "" {
		return rel, nil
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base %q: %w", base, err)
	}
	if u.Scheme == "" {
		return filepath.Join(base, filepath.FromSlash(rel)), nil
	}
	return u.JoinPath(strings.Split(strings.TrimLeft(rel, "/"), "/")...).String(), nil
}
