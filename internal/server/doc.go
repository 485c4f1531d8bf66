// Package server runs the bundle host's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
