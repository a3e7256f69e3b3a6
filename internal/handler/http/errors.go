// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. All of them are
// answered with 400 Bad Request.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// a delivery.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrReadingBody is returned when the request body cannot be read, for
	// example because it exceeds the size limit.
	ErrReadingBody = errors.New("error reading request body")

	// ErrEmptyBody is returned by the crypto endpoints for an empty body.
	ErrEmptyBody = errors.New("empty request body")
)
