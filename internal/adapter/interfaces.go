// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the Vault transit
// secrets engine.
//
// The primary abstraction is [TransitAdapter], which decouples the crypto
// gateway from the HTTP API of the engine. Errors returned by the adapter are
// already classified into the categories of the app package, so callers can
// use [errors.Is] with app.ErrBackendUnavailable, app.ErrKeyNotFound or
// app.ErrInvalidCipherText without knowing about HTTP status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deliveries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transit_adapter_mock.go -package=mock

// TransitAdapter is the set of transit engine calls the service needs.
// Implementations must be safe for concurrent use.
type TransitAdapter interface {
	// EnableEngine mounts the transit engine at the configured path. A mount
	// that already exists is not an error.
	EnableEngine(ctx context.Context) error

	// CreateKey creates the named key with the given transit key type
	// ("aes256-gcm96", "rsa-2048", ...). An empty keyType uses the engine
	// default. Creating an existing key is not an error.
	CreateKey(ctx context.Context, name, keyType string) error

	// Encrypt encrypts plaintext under key and returns the engine's
	// versioned cipher text ("vault:v1:...").
	Encrypt(ctx context.Context, key string, plaintext []byte) (models.CipherText, error)

	// Decrypt reverses Encrypt.
	Decrypt(ctx context.Context, key string, cipherText models.CipherText) ([]byte, error)
}
