package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or unknown time zone).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidKeyConfigs indicates that not exactly one note key source
	// (passphrase or KMS data key) was configured.
	ErrInvalidKeyConfigs = errors.New("invalid note key configuration")
	// ErrInvalidAvatarConfigs indicates an incomplete avatar bucket setup.
	ErrInvalidAvatarConfigs = errors.New("invalid avatar storage configuration")
)
