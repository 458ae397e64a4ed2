// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !cfg.App.Env.Valid() {
		return fmt.Errorf("%w: unknown environment mode %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost out of range", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit < 0 || (cfg.Server.RateLimit > 0 && cfg.Server.RateBurst < 1) {
		return fmt.Errorf("%w: rate limit needs a positive burst", ErrInvalidServerConfigs)
	}

	if cfg.CORS.AllowedOrigin == "" || (cfg.CORS.AllowedOrigin == "*" && cfg.CORS.CredentialsAllowed()) {
		return fmt.Errorf("%w: origin must be set and must not be a wildcard with credentials", ErrInvalidCORSConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
