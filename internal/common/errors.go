// Package common defines shared sentinel errors and small helpers used
// across the portfolio packages. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Credential errors.
	ErrInvalidAuthConfig = errors.New("invalid auth configuration")
	ErrEmptyPassword     = errors.New("empty password")

	// Fetch errors.
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrUnsupportedSource = errors.New("unsupported source")
)
