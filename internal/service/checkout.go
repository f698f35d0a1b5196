package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
	"github.com/shopfront/shopfront/internal/repository"
)

// CheckoutService turns a cart into an order summary.
type CheckoutService struct {
	carts     CartStore
	products  ProductReader
	logger    *slog.Logger
	metrics   metrics.Recorder
	publisher OrderPublisher
	now       func() time.Time
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(carts CartStore, products ProductReader, logger *slog.Logger, recorder metrics.Recorder) *CheckoutService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CheckoutService{
		carts:    carts,
		products: products,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// WithPublisher sets where completed orders are announced. A nil publisher
// disables announcements.
func (s *CheckoutService) WithPublisher(publisher OrderPublisher) *CheckoutService {
	s.publisher = publisher
	return s
}

// Checkout totals the user's cart and empties it. There is no tax, shipping
// or discount, so the total equals the subtotal. Not idempotent: a second call
// on the same cart fails with ErrEmptyCart.
func (s *CheckoutService) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	items, err := s.carts.TakeCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartEmpty) {
			s.metrics.IncCheckoutRejected()
			return nil, ErrEmptyCart
		}
		return nil, fmt.Errorf("failed to take cart: %w", err)
	}

	// The cart is already cleared; don't let a late cancellation drop the order.
	views, err := enrichItems(context.WithoutCancel(ctx), s.products, s.logger, items)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, v := range views {
		subtotal = subtotal.Add(v.ItemTotal)
	}

	placedAt := s.now().UTC()
	order := &model.Order{
		ID:       ulid.MustNew(ulid.Timestamp(placedAt), ulid.DefaultEntropy()).String(),
		UserID:   userID,
		Items:    views,
		Subtotal: subtotal,
		Total:    subtotal,
		Message:  model.OrderPlacedMessage,
		PlacedAt: placedAt,
	}

	s.metrics.IncCheckoutCompleted()
	s.metrics.ObserveOrderValue(order.Total.InexactFloat64())

	if s.publisher != nil {
		s.publisher.PublishOrderPlaced(order)
	}

	return order, nil
}
