package service

import "errors"

var (
	// ErrNotConfigured means no config record exists; login cannot proceed
	// until the deployment is bootstrapped.
	ErrNotConfigured = errors.New("configuration not found")
	// ErrInvalidCredentials covers a wrong access password. Handlers map it
	// to a generic 401 without saying which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers every bearer-token failure, including a token
	// whose config record no longer exists.
	ErrInvalidToken = errors.New("invalid token")
)
