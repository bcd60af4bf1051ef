package domain

import "errors"

var (
	// ErrSessionNotFound means the session cookie referenced no stored session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is produced when an authenticated upstream call comes
	// back 401: the token was revoked or timed out server-side.
	ErrSessionExpired = errors.New("session expired")
	// ErrExportInFlight means an identical export is already running for
	// this session.
	ErrExportInFlight = errors.New("export already in progress")
)
