// Package common defines shared constants and sentinel errors used across
// the duetdiary server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStaleState = errors.New("stale state")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Disclosure errors.
	ErrInvalidState   = errors.New("invalid state")
	ErrNotYetEligible = errors.New("not yet eligible")
	ErrNotAMember     = errors.New("not a member of the couple")

	// ErrInvalidArgument rejects malformed input such as a bad checkpoint schedule.
	ErrInvalidArgument = errors.New("invalid argument")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
