package adminauth

import (
	"fmt"

	"github.com/blitzdex27/portfolio/internal/common"
)

// CreateAuthConfig provisions a new record for password with a fresh random
// salt. iterations <= 0 selects DefaultIterations.
func CreateAuthConfig(password string, iterations int) (AuthConfig, error) {
	if password == "" {
		return AuthConfig{}, common.ErrEmptyPassword
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	salt, err := common.RandomBytes(SaltSize)
	if err != nil {
		return AuthConfig{}, fmt.Errorf("generate salt: %w", err)
	}
	saltB64 := EncodeBytes(salt)

	hash, err := DeriveHash(password, saltB64, iterations)
	if err != nil {
		return AuthConfig{}, fmt.Errorf("derive hash: %w", err)
	}

	return AuthConfig{
		Version:    SchemaVersion,
		Algorithm:  AlgorithmPBKDF2SHA256,
		Iterations: iterations,
		Salt:       saltB64,
		Hash:       hash,
	}, nil
}
