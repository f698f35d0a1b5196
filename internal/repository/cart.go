package repository

import (
	"context"
	"errors"
	"math"

	"github.com/shopfront/shopfront/internal/model"
)

// Common errors for cart repository operations.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrQuantityOverflow = errors.New("cart line quantity overflow")
)

// AddCartItem adds quantity units of productID to the user's cart.
// An existing line for the product is merged; otherwise a new line is appended.
// A merge that would overflow the line quantity fails with ErrQuantityOverflow
// and leaves the cart unchanged. Returns the line as stored after the change.
func (r *Repository) AddCartItem(ctx context.Context, userID, productID int64, quantity int) (model.CartLineItem, error) {
	if err := ctx.Err(); err != nil {
		return model.CartLineItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.userExists(userID) {
		return model.CartLineItem{}, ErrUserNotFound
	}
	if _, ok := r.productIndex[productID]; !ok {
		return model.CartLineItem{}, ErrProductNotFound
	}

	items, ok := r.carts[userID]
	if !ok {
		items = []model.CartLineItem{}
	}

	for i := range items {
		if items[i].ProductID == productID {
			if quantity > 0 && items[i].Quantity > math.MaxInt-quantity {
				return model.CartLineItem{}, ErrQuantityOverflow
			}
			items[i].Quantity += quantity
			r.carts[userID] = items
			return items[i], nil
		}
	}

	line := model.CartLineItem{ProductID: productID, Quantity: quantity}
	r.carts[userID] = append(items, line)
	return line, nil
}

// GetCart returns a copy of the user's line items.
// A registered user always has a cart; ErrCartNotFound means no entry exists.
func (r *Repository) GetCart(ctx context.Context, userID int64) ([]model.CartLineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.carts[userID]
	if !ok {
		return nil, ErrCartNotFound
	}

	out := make([]model.CartLineItem, len(items))
	copy(out, items)
	return out, nil
}

// TakeCart returns the user's line items and empties the cart in one step.
// The cart entry itself is kept. Returns ErrCartEmpty when there is nothing to take.
func (r *Repository) TakeCart(ctx context.Context, userID int64) ([]model.CartLineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[userID]
	if !ok || len(items) == 0 {
		return nil, ErrCartEmpty
	}

	r.carts[userID] = []model.CartLineItem{}
	return items, nil
}
