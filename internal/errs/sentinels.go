// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadCredentials indicates a failed login. It covers both an unknown
	// username and a wrong password so the caller cannot tell which check failed.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrForbidden indicates the user is authenticated but lacks permission.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidToken indicates a malformed, tampered or expired token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRefreshNotFound indicates a refresh token that was never issued or
	// has been revoked by logout.
	ErrRefreshNotFound = errors.New("refresh token not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (e.g., username taken, collaborator already granted).
	ErrAlreadyExists = errors.New("already exists")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)
