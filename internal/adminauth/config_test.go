package adminauth

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitzdex27/portfolio/internal/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, AlgorithmPBKDF2SHA256, cfg.Algorithm)
	assert.Equal(t, 210000, cfg.Iterations)
	assert.Equal(t, "dWWOwkzTzK7xy4qRGMtuZA==", cfg.Salt)
	assert.Equal(t, "ogVCxEIXPj/WRzw3I5ei3++txnCZW/eJomTEmQp9gc4=", cfg.Hash)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_IndependentCopies(t *testing.T) {
	a := DefaultConfig()
	a.Hash = "tampered"
	a.Iterations = 1

	b := DefaultConfig()
	assert.Equal(t, defaultHash, b.Hash)
	assert.Equal(t, DefaultIterations, b.Iterations)
}

func TestAlgorithm_Known(t *testing.T) {
	assert.True(t, AlgorithmPBKDF2SHA256.Known())
	assert.False(t, Algorithm("bcrypt").Known())
	assert.False(t, Algorithm("").Known())
}

func TestParseAuthConfig(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid",
			doc:  `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":210000,"salt":"dWWOwkzTzK7xy4qRGMtuZA==","hash":"ogVCxEIXPj/WRzw3I5ei3++txnCZW/eJomTEmQp9gc4="}`,
		},
		{
			name: "extra fields ignored",
			doc:  `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"c2FsdA==","hash":"c2FsdA==","note":"x"}`,
		},
		{
			name: "zero iterations allowed",
			doc:  `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":0,"salt":"c2FsdA==","hash":"c2FsdA=="}`,
		},
		{
			name: "informational fields unchecked",
			doc:  `{"version":0,"algorithm":"","iterations":1,"salt":"c2FsdA==","hash":"c2FsdA=="}`,
		},
		{
			name: "empty salt and hash",
			doc:  `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"","hash":""}`,
		},
		{
			name: "fractional iterations",
			doc:  `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1000.5,"salt":"c2FsdA==","hash":"c2FsdA=="}`,
		},
		{name: "negative fractional iterations", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":-0.5,"salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "iterations out of range", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1e12,"salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "salt not base64", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"%%%","hash":"c2FsdA=="}`, wantErr: true},
		{name: "missing version", doc: `{"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "missing algorithm", doc: `{"version":1,"iterations":1,"salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "missing iterations", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "missing salt", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"hash":"c2FsdA=="}`, wantErr: true},
		{name: "missing hash", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"c2FsdA=="}`, wantErr: true},
		{name: "iterations as string", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":"1","salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "version as string", doc: `{"version":"1","algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "salt as number", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":5,"hash":"c2FsdA=="}`, wantErr: true},
		{name: "null fields", doc: `{"version":null,"algorithm":null,"iterations":null,"salt":null,"hash":null}`, wantErr: true},
		{name: "negative iterations", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":-1,"salt":"c2FsdA==","hash":"c2FsdA=="}`, wantErr: true},
		{name: "hash not base64", doc: `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1,"salt":"c2FsdA==","hash":"not base64"}`, wantErr: true},
		{name: "array", doc: `[]`, wantErr: true},
		{name: "null", doc: `null`, wantErr: true},
		{name: "malformed", doc: `{"version":1,`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseAuthConfig([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, AuthConfig{}, cfg)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParseAuthConfig_FractionalIterationsTruncate(t *testing.T) {
	cfg, err := ParseAuthConfig([]byte(`{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":1000.9,"salt":"c2FsdA==","hash":"c2FsdA=="}`))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Iterations)
}

func TestParseAuthConfig_ShapeErrorsAreSentinel(t *testing.T) {
	_, err := ParseAuthConfig([]byte(`{"version":1}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidAuthConfig))
}

func TestAuthConfig_MarshalRoundTrip(t *testing.T) {
	want := DefaultConfig()

	b, err := json.Marshal(want)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"algorithm":"PBKDF2-SHA-256","iterations":210000,"salt":"dWWOwkzTzK7xy4qRGMtuZA==","hash":"ogVCxEIXPj/WRzw3I5ei3++txnCZW/eJomTEmQp9gc4="}`, string(b))

	got, err := ParseAuthConfig(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
