// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, background workers, signal handling, and graceful shutdown of all
// enabled transports.
package server
