package server

import "context"

// Server defines the lifecycle contract of the bundle host.
//
// RunServer blocks until a termination signal arrives and the server has
// shut down. Run is the same, stopped by ctx instead of a signal.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT.
	RunServer()

	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
