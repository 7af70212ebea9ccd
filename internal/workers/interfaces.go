// Package workers runs the background jobs of the API server.
//
// A Worker starts its own goroutine in Run and stops when the context passed
// to Run is cancelled.
package workers

import "context"

type Worker interface {
	Run(ctx context.Context)
}

// StatusReporter receives the result of each health probe.
type StatusReporter interface {
	SetServing(serving bool)
}
