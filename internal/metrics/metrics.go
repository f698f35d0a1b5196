// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// User directory metrics
	IncUserRegistered()
	IncLogin(status string) // status: "success" or "failed"

	// Cart metrics
	IncCartItemAdded(quantity int)

	// Checkout metrics
	IncCheckoutCompleted()
	IncCheckoutRejected()
	ObserveOrderValue(value float64)
	IncOrderEventPublished(status string) // status: "success" or "dropped"

	// Edge metrics
	IncRateLimited()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
