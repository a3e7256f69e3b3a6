// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a [StructuredConfig] from the process environment. Nested
// groups are resolved through their envPrefix tags, so Vault.Timeout is read
// from VAULT_TIMEOUT. Unset variables leave fields zero for the builder's
// later sources and defaults to fill.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	return &cfg, nil
}
