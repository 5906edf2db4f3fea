// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultTokenDuration is applied when no token lifetime is configured.
const defaultTokenDuration = 30 * time.Minute

// defaultTokenIssuer is the fallback "iss" claim value.
const defaultTokenIssuer = "go-book-catalog"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults
// for optional token parameters.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	return nil
}
