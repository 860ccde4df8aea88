package adminauth

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/blitzdex27/portfolio/internal/common"
)

// Algorithm labels the key-derivation scheme a record was produced with.
// The label is descriptive: derivation always uses PBKDF2-HMAC-SHA-256.
type Algorithm string

const AlgorithmPBKDF2SHA256 Algorithm = "PBKDF2-SHA-256"

// Known reports whether a is a scheme this package can produce.
func (a Algorithm) Known() bool {
	return a == AlgorithmPBKDF2SHA256
}

const (
	// SchemaVersion is the only record version in circulation.
	SchemaVersion = 1

	// DefaultIterations is the PBKDF2 work factor for new records, and the
	// one used when a record carries iterations == 0.
	DefaultIterations = 210000

	SaltSize = 16
	HashSize = 32
)

// defaultSalt and defaultHash ship with the site. They protect deployments
// that never publish their own admin-auth.json.
const (
	defaultSalt = "dWWOwkzTzK7xy4qRGMtuZA=="
	defaultHash = "ogVCxEIXPj/WRzw3I5ei3++txnCZW/eJomTEmQp9gc4="
)

// AuthConfig is the persisted admin credential record.
type AuthConfig struct {
	Version    int       `json:"version"`
	Algorithm  Algorithm `json:"algorithm"`
	Iterations int       `json:"iterations"`
	Salt       string    `json:"salt"`
	Hash       string    `json:"hash"`
}

// DefaultConfig returns the compiled-in record. Every call yields an
// independent value, so callers may modify the result freely.
func DefaultConfig() AuthConfig {
	return AuthConfig{
		Version:    SchemaVersion,
		Algorithm:  AlgorithmPBKDF2SHA256,
		Iterations: DefaultIterations,
		Salt:       defaultSalt,
		Hash:       defaultHash,
	}
}

// Validate checks what derivation needs: a non-negative work factor and salt
// and hash in standard base64 (empty is valid base64). Version and algorithm
// are informational and not checked. Decoded lengths are not checked either;
// a wrong-length hash never matches.
func (c *AuthConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", common.ErrInvalidAuthConfig)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d", common.ErrInvalidAuthConfig, c.Iterations)
	}
	if _, err := DecodeBytes(c.Salt); err != nil {
		return fmt.Errorf("%w: salt: %v", common.ErrInvalidAuthConfig, err)
	}
	if _, err := DecodeBytes(c.Hash); err != nil {
		return fmt.Errorf("%w: hash: %v", common.ErrInvalidAuthConfig, err)
	}
	return nil
}

// wireConfig mirrors AuthConfig with pointer fields so that a missing key can
// be told apart from a zero value.
type wireConfig struct {
	Version    *int       `json:"version"`
	Algorithm  *Algorithm `json:"algorithm"`
	Iterations *float64   `json:"iterations"`
	Salt       *string    `json:"salt"`
	Hash       *string    `json:"hash"`
}

// UnmarshalJSON requires all five fields to be present with the right JSON
// types, then applies Validate. A fractional iteration count is truncated
// toward zero; negative counts and counts above math.MaxInt32 are rejected.
func (c *AuthConfig) UnmarshalJSON(data []byte) error {
	var w wireConfig
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidAuthConfig, err)
	}

	switch {
	case w.Version == nil:
		return fmt.Errorf("%w: missing version", common.ErrInvalidAuthConfig)
	case w.Algorithm == nil:
		return fmt.Errorf("%w: missing algorithm", common.ErrInvalidAuthConfig)
	case w.Iterations == nil:
		return fmt.Errorf("%w: missing iterations", common.ErrInvalidAuthConfig)
	case w.Salt == nil:
		return fmt.Errorf("%w: missing salt", common.ErrInvalidAuthConfig)
	case w.Hash == nil:
		return fmt.Errorf("%w: missing hash", common.ErrInvalidAuthConfig)
	case *w.Iterations < 0 || *w.Iterations > math.MaxInt32:
		return fmt.Errorf("%w: iterations %v", common.ErrInvalidAuthConfig, *w.Iterations)
	}

	parsed := AuthConfig{
		Version:    *w.Version,
		Algorithm:  *w.Algorithm,
		Iterations: int(*w.Iterations),
		Salt:       *w.Salt,
		Hash:       *w.Hash,
	}
	if err := parsed.Validate(); err != nil {
		return err
	}

	*c = parsed
	return nil
}

// ParseAuthConfig decodes and validates a JSON document.
func ParseAuthConfig(data []byte) (AuthConfig, error) {
	return decodeRecord(func(v any) error { return json.Unmarshal(data, v) })
}

// decodeRecord runs decode into a *AuthConfig so that a bare "null" document,
// which never reaches UnmarshalJSON, is reported instead of yielding a zero
// record.
func decodeRecord(decode func(v any) error) (AuthConfig, error) {
	var c *AuthConfig
	if err := decode(&c); err != nil {
		return AuthConfig{}, err
	}
	if c == nil {
		return AuthConfig{}, fmt.Errorf("%w: null document", common.ErrInvalidAuthConfig)
	}
	if err := c.Validate(); err != nil {
		return AuthConfig{}, err
	}
	return *c, nil
}
