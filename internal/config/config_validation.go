// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.TimeZone != "" {
		if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
			return fmt.Errorf("%w: time zone: %w", ErrInvalidAppConfigs, err)
		}
	}

	hasPassphrase := cfg.App.NoteEncryptionKey != ""
	hasKMS := cfg.App.KMSEncryptedDataKey != ""
	if hasPassphrase == hasKMS {
		return fmt.Errorf("%w: set exactly one of note encryption key or KMS encrypted data key", ErrInvalidKeyConfigs)
	}

	avatars := cfg.Storage.Avatars
	if avatars.Bucket != "" {
		if avatars.Region == "" {
			return fmt.Errorf("%w: region is required", ErrInvalidAvatarConfigs)
		}
		if (avatars.AccessKey == "") != (avatars.SecretKey == "") {
			return fmt.Errorf("%w: access key and secret key go together", ErrInvalidAvatarConfigs)
		}
		if avatars.SignedURLTTL <= 0 {
			return fmt.Errorf("%w: signed URL TTL must be positive", ErrInvalidAvatarConfigs)
		}
	}

	return nil
}

// validateClient checks the settings used by the API client.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
