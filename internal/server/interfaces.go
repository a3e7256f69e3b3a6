package server

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or the listener fails, then shuts down gracefully.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
