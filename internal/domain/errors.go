package domain

import "errors"

// Sentinel errors shared across packages.
var (
	ErrUnknownTier    = errors.New("unknown tier")
	ErrMasterDisabled = errors.New("master tier is not enabled")
	ErrWorkNotFound   = errors.New("completed work record not found")
	ErrInvalidWork    = errors.New("invalid completed work record")
)
