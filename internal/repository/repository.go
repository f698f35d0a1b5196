// Package repository provides the in-memory data store.
//
// A Repository owns the product catalog, the user directory and the cart store.
// The catalog is immutable after New; users and carts share one RWMutex so that
// every check-then-act sequence runs inside a single critical section.
package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopfront/shopfront/internal/model"
)

// ErrClosed is returned by Ping after Close.
var ErrClosed = errors.New("repository closed")

// Repository provides data access methods.
type Repository struct {
	products     []model.Product
	productIndex map[int64]int

	mu         sync.RWMutex
	users      []*model.User
	nextUserID int64
	carts      map[int64][]model.CartLineItem
	closed     bool

	now func() time.Time
}

// New creates a Repository serving the given catalog.
// Products are copied; later changes to the argument are not observed.
func New(products []model.Product) *Repository {
	r := &Repository{
		products:     make([]model.Product, len(products)),
		productIndex: make(map[int64]int, len(products)),
		nextUserID:   1,
		carts:        make(map[int64][]model.CartLineItem),
		now:          time.Now,
	}

	copy(r.products, products)
	for i, p := range r.products {
		r.productIndex[p.ID] = i
	}

	return r
}

// Ping checks that the store is open.
func (r *Repository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	return nil
}

// Close marks the store closed. State is kept so in-flight readers finish cleanly.
func (r *Repository) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Stats returns store-wide counters.
func (r *Repository) Stats(ctx context.Context) (model.Stats, error) {
	if err := ctx.Err(); err != nil {
		return model.Stats{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := 0
	for _, items := range r.carts {
		lines += len(items)
	}

	return model.Stats{
		TotalUsers:     len(r.users),
		TotalProducts:  len(r.products),
		UsersWithCarts: len(r.carts),
		TotalCartItems: lines,
	}, nil
}
