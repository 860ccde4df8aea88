package adminauth

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/blitzdex27/portfolio/internal/common"
)

// DeriveHash runs PBKDF2-HMAC-SHA-256 over password with the base64 salt and
// returns the 32-byte key in base64. iterations == 0 means DefaultIterations.
func DeriveHash(password, salt string, iterations int) (string, error) {
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < 0 {
		return "", fmt.Errorf("%w: iterations %d", common.ErrInvalidAuthConfig, iterations)
	}

	saltBytes, err := DecodeBytes(salt)
	if err != nil {
		return "", fmt.Errorf("%w: salt: %v", common.ErrInvalidAuthConfig, err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key := pbkdf2.Key(pw, saltBytes, iterations, HashSize, sha256.New)
	return EncodeBytes(key), nil
}

// Verify reports whether password matches the record. An empty password or a
// record that fails Validate is rejected before any derivation happens.
func Verify(password string, cfg *AuthConfig) bool {
	if password == "" || cfg.Validate() != nil {
		return false
	}

	derived, err := DeriveHash(password, cfg.Salt, cfg.Iterations)
	if err != nil {
		return false
	}
	return constantTimeEqual(derived, cfg.Hash)
}

// constantTimeEqual compares two base64 byte strings without exiting early on
// the first differing byte. Differing lengths return false immediately.
func constantTimeEqual(left, right string) bool {
	a, err := DecodeBytes(left)
	if err != nil {
		return false
	}
	b, err := DecodeBytes(right)
	if err != nil {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	var mismatch byte
	for i := range a {
		mismatch |= a[i] ^ b[i]
	}
	return mismatch == 0
}
