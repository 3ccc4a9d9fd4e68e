package services

import "errors"

// Errors shared by the services and mapped to HTTP statuses by the handlers.
var (
	// Malformed request input.
	ErrInvalidID        = errors.New("invalid document id")
	ErrInvalidContestID = errors.New("contestId must be an integer")
	ErrInvalidPage      = errors.New("invalid page parameters")
	ErrMissingHandle    = errors.New("codeforcesHandle is required")
	ErrInvalidImage     = errors.New("unsupported image content type")

	// Credential and role checks.
	ErrInvalidToken = errors.New("invalid or expired token")

	// Optional infrastructure that is not configured.
	ErrStorageDisabled = errors.New("image storage is not configured")
)
