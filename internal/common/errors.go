// Package common defines shared constants and sentinel errors used across
// the storage, service and presentation layers of xshare. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors. ErrNotFound also covers a stale or unknown moderation handle.
	ErrNotFound = errors.New("not found")

	// Account directory errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAccount     = errors.New("username, email and password are required")
	ErrInvalidRole        = errors.New("invalid role")

	// Access errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("admin access required")

	// Question errors.
	ErrEmptyText = errors.New("question text is empty")

	// Storage errors.
	ErrCorruptValue = errors.New("corrupt stored value")
)
