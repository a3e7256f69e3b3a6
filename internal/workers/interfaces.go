// Package workers provides the background workers of the service and a
// Workers aggregate that runs them together and waits for them to stop.
package workers

import (
	"context"

	"github.com/MKhiriev/go-deliveries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and the worker has released everything
// it holds.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Notifier accepts deliveries whose creation should be announced.
type Notifier interface {
	// Enqueue schedules a notice for delivery without blocking. It reports
	// false when the notice was dropped because the queue is full.
	Enqueue(ctx context.Context, delivery models.Delivery) bool
}
