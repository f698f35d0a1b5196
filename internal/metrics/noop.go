package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin(status string) {}

// IncCartItemAdded is a no-op.
func (n *NoopRecorder) IncCartItemAdded(quantity int) {}

// IncCheckoutCompleted is a no-op.
func (n *NoopRecorder) IncCheckoutCompleted() {}

// IncCheckoutRejected is a no-op.
func (n *NoopRecorder) IncCheckoutRejected() {}

// ObserveOrderValue is a no-op.
func (n *NoopRecorder) ObserveOrderValue(value float64) {}

// IncOrderEventPublished is a no-op.
func (n *NoopRecorder) IncOrderEventPublished(status string) {}

// IncRateLimited is a no-op.
func (n *NoopRecorder) IncRateLimited() {}
