// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks delivery records before they reach the store.
//
// A [Validator] rejects a value with one of the sentinels in errors.go. The
// service layer wraps every rejection so that the HTTP layer answers it with
// 400 instead of an internal error.
package validators

import "context"

// Validator validates a value. fields restricts the check to the named
// fields; with no fields every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
