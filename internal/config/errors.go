package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or missing
	// connection settings for the selected one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
