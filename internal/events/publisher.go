// Package events publishes order events to a Redis stream for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
)

const (
	// StreamKey is the Redis stream for order events.
	StreamKey = "stream:order_events"

	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 100000

	// PublishTimeout is the max time to wait for Redis publish.
	PublishTimeout = 100 * time.Millisecond
)

// OrderPlacedPayload is the compact event format written to the stream.
type OrderPlacedPayload struct {
	OrderID  string `json:"oid"`
	UserID   int64  `json:"uid"`
	Lines    int    `json:"n"`   // enriched line items
	Units    int    `json:"q"`   // sum of quantities
	Total    string `json:"tot"` // decimal string, never a float
	PlacedAt int64  `json:"t"`   // Unix milliseconds
}

// NewOrderPlaced builds the stream payload for a completed checkout.
func NewOrderPlaced(order *model.Order) OrderPlacedPayload {
	units := 0
	for _, item := range order.Items {
		units += item.Quantity
	}
	return OrderPlacedPayload{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Lines:    len(order.Items),
		Units:    units,
		Total:    order.Total.StringFixed(2),
		PlacedAt: order.PlacedAt.UnixMilli(),
	}
}

// Publisher enqueues order events to a Redis stream.
type Publisher struct {
	redis   *redis.Client
	logger  *slog.Logger
	metrics metrics.Recorder
	wg      sync.WaitGroup
}

// NewPublisher creates a new order event publisher.
func NewPublisher(client *redis.Client, logger *slog.Logger, recorder metrics.Recorder) *Publisher {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Publisher{
		redis:   client,
		logger:  logger.With("component", "events.publisher"),
		metrics: recorder,
	}
}

// Publish adds an event to the stream synchronously and returns its stream ID.
func (p *Publisher) Publish(ctx context.Context, event OrderPlacedPayload) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	result, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"type":    "order_placed",
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return result, nil
}

// PublishOrderPlaced publishes without blocking the caller.
// Errors are logged and counted but not returned.
func (p *Publisher) PublishOrderPlaced(order *model.Order) {
	event := NewOrderPlaced(order)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
		defer cancel()

		streamID, err := p.Publish(ctx, event)
		if err != nil {
			p.logger.Warn("failed to publish order event",
				"order_id", event.OrderID,
				"error", err,
			)
			p.metrics.IncOrderEventPublished("dropped")
			return
		}

		p.logger.Debug("order event published",
			"order_id", event.OrderID,
			"stream_id", streamID,
		)
		p.metrics.IncOrderEventPublished("success")
	}()
}

// Close waits for in-flight publishes to finish or ctx to expire.
func (p *Publisher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for order events: %w", ctx.Err())
	}
}
