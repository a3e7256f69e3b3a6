// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so only values that have no sensible default are
// required from the operator: the database DSN and the Vault address.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.QueryTimeout <= 0 || db.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: query timeout and pool size must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	v := cfg.Vault
	if v.Address == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidVaultConfigs)
	}
	if v.Mount == "" || v.EncryptionKey == "" || v.Timeout <= 0 {
		return fmt.Errorf("%w: mount, encryption key and timeout are required", ErrInvalidVaultConfigs)
	}

	if cfg.Messaging.Channel == "" || cfg.Messaging.QueueSize <= 0 {
		return ErrInvalidMessagingConfigs
	}

	if cfg.Workers.NotifierConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
