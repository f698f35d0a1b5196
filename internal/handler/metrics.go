package handler

import (
	"fmt"
	"net/http"

	"github.com/shopfront/shopfront/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "shopfront_users_registered_total %d\n", snap.UsersRegistered)

	writeMetric(w, "shopfront_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "shopfront_logins_total{status=\"failed\"} %d\n", snap.LoginsFailed)

	writeMetric(w, "shopfront_cart_items_added_total %d\n", snap.CartItemsAdded)
	writeMetric(w, "shopfront_cart_units_added_total %d\n", snap.CartUnitsAdded)

	writeMetric(w, "shopfront_checkouts_total{status=\"completed\"} %d\n", snap.CheckoutsCompleted)
	writeMetric(w, "shopfront_checkouts_total{status=\"rejected\"} %d\n", snap.CheckoutsRejected)
	writeMetric(w, "shopfront_order_value_count %d\n", snap.OrderValueCount)
	writeMetric(w, "shopfront_order_value_sum %.2f\n", snap.OrderValueSum)

	writeMetric(w, "shopfront_order_events_published_total{status=\"success\"} %d\n", snap.OrderEventsPublished)
	writeMetric(w, "shopfront_order_events_published_total{status=\"dropped\"} %d\n", snap.OrderEventsDropped)

	writeMetric(w, "shopfront_rate_limited_total %d\n", snap.RateLimited)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
