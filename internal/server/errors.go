// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPHandler is returned by NewServer when the handler set carries no HTTP router.
	errNoHTTPHandler = errors.New("server: no http handler configured")
	// errNothingToServe is returned by run when no listener was built.
	errNothingToServe = errors.New("server: nothing to serve")
)
