// Package server runs the HTTP transport of the deliveries service.
//
// It owns the listener lifecycle: startup, waiting for a stop signal or a
// listener failure, and graceful shutdown bounded by the configured timeout.
package server
