package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid management API settings
	// (for example, a base URL that is not an absolute URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative prune interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
