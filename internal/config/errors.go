package config

import "errors"

// ErrParsingEnv wraps failures to convert an environment variable into its
// field type.
var ErrParsingEnv = errors.New("error getting env configs")

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidVaultConfigs indicates invalid transit engine settings
	// (for example, missing address or key names).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidMessagingConfigs indicates invalid notice queue or channel settings.
	ErrInvalidMessagingConfigs = errors.New("invalid messaging configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
