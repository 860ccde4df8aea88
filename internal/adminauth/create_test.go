package adminauth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitzdex27/portfolio/internal/common"
)

func TestCreateAuthConfig_Shape(t *testing.T) {
	cfg, err := CreateAuthConfig("test123", testIterations)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, cfg.Version)
	assert.Equal(t, AlgorithmPBKDF2SHA256, cfg.Algorithm)
	assert.Equal(t, testIterations, cfg.Iterations)
	require.NoError(t, cfg.Validate())

	salt, err := DecodeBytes(cfg.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	hash, err := DecodeBytes(cfg.Hash)
	require.NoError(t, err)
	assert.Len(t, hash, HashSize)
}

func TestCreateAuthConfig_RandomSalt(t *testing.T) {
	a, err := CreateAuthConfig("test123", testIterations)
	require.NoError(t, err)
	b, err := CreateAuthConfig("test123", testIterations)
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
	assert.True(t, Verify("test123", &a))
	assert.True(t, Verify("test123", &b))
}

func TestCreateAuthConfig_DefaultIterations(t *testing.T) {
	cfg, err := CreateAuthConfig("test123", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultIterations, cfg.Iterations)
	assert.True(t, Verify("test123", &cfg))
}

func TestCreateAuthConfig_EmptyPassword(t *testing.T) {
	_, err := CreateAuthConfig("", testIterations)
	assert.True(t, errors.Is(err, common.ErrEmptyPassword))
}

func TestCreateAuthConfig_OtherPasswordsFail(t *testing.T) {
	cfg, err := CreateAuthConfig("alpha", testIterations)
	require.NoError(t, err)

	for _, pw := range []string{"Alpha", "alpha1", "beta", " alpha"} {
		assert.False(t, Verify(pw, &cfg), pw)
	}
}
