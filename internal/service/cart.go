package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
	"github.com/shopfront/shopfront/internal/repository"
)

// CartService handles cart mutations and reads.
type CartService struct {
	carts    CartStore
	products ProductReader
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewCartService creates a new CartService.
func NewCartService(carts CartStore, products ProductReader, logger *slog.Logger, recorder metrics.Recorder) *CartService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CartService{
		carts:    carts,
		products: products,
		logger:   logger,
		metrics:  recorder,
	}
}

// AddItem adds quantity units of a product to the user's cart, merging with
// an existing line for the same product. Returns the resulting line.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64, quantity int) (model.CartLineItem, error) {
	if quantity <= 0 {
		return model.CartLineItem{}, ErrInvalidQuantity
	}

	line, err := s.carts.AddCartItem(ctx, userID, productID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return model.CartLineItem{}, ErrUserNotFound
		case errors.Is(err, repository.ErrProductNotFound):
			return model.CartLineItem{}, ErrProductNotFound
		case errors.Is(err, repository.ErrQuantityOverflow):
			return model.CartLineItem{}, ErrInvalidQuantity
		}
		return model.CartLineItem{}, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.metrics.IncCartItemAdded(quantity)

	return line, nil
}

// GetCart returns the user's cart enriched with product data.
func (s *CartService) GetCart(ctx context.Context, userID int64) (*model.CartView, error) {
	items, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	views, err := enrichItems(ctx, s.products, s.logger, items)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, v := range views {
		total += v.Quantity
	}

	return &model.CartView{
		UserID:     userID,
		Items:      views,
		TotalItems: total,
	}, nil
}

// enrichItems joins line items with the catalog. Lines whose product no longer
// resolves are skipped.
func enrichItems(ctx context.Context, products ProductReader, logger *slog.Logger, items []model.CartLineItem) ([]model.CartItemView, error) {
	views := make([]model.CartItemView, 0, len(items))
	for _, item := range items {
		product, err := products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				if logger != nil {
					logger.DebugContext(ctx, "cart_item_skipped", "product_id", item.ProductID)
				}
				continue
			}
			return nil, fmt.Errorf("failed to resolve product %d: %w", item.ProductID, err)
		}
		views = append(views, model.Enrich(item, product))
	}
	return views, nil
}
