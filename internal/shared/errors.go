// Package shared defines the sentinel errors used across the service and
// transport layers. Callers should use errors.Is to match these values.
package shared

import "errors"

var (
	// repository errors
	ErrNotFound = errors.New("not found")

	// credential errors
	ErrMissingCredentials = errors.New("missing username or password")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// token errors
	ErrInvalidToken = errors.New("invalid token")
)
