package service

import "errors"

var (
	// ErrNotAuthenticated indicates that no user session could be resolved,
	// so provisioning cannot proceed.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoApplicationName indicates an empty application name input.
	ErrNoApplicationName = errors.New("application name is required")

	// ErrNoDeviceUUID indicates an empty device uuid input.
	ErrNoDeviceUUID = errors.New("device uuid is required")
)
