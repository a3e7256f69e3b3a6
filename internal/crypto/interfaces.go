// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides encryption of delivery data through a remote
// transit engine. Key material never leaves the engine; this package only
// holds the key handles and the engine's activation state.
package crypto

import (
	"context"

	"github.com/MKhiriev/go-deliveries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_gateway_mock.go -package=mock

// Gateway encrypts and decrypts strings under the configured encryption key.
// Implementations must be safe for concurrent use.
type Gateway interface {
	// Encrypt returns the cipher text of secret. The empty string is a valid
	// secret.
	Encrypt(ctx context.Context, secret string) (models.CipherText, error)

	// Decrypt returns the plaintext of cipher.
	Decrypt(ctx context.Context, cipher models.CipherText) (string, error)
}

// ActivationState is the observable state of one-time engine activation.
type ActivationState interface {
	// Activated reports whether the activation attempt has finished,
	// successfully or not.
	Activated() bool

	// Degraded reports whether the activation attempt finished and failed.
	Degraded() bool

	// ActivationErr returns the failure of the activation attempt, or nil
	// while it is running or after it succeeded.
	ActivationErr() error
}
