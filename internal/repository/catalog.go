package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shopfront/shopfront/internal/model"
)

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// DefaultCatalog returns the products the service ships with, in display order.
func DefaultCatalog() []model.Product {
	return []model.Product{
		newProduct(1, "iPhone 15 Pro", "Latest iPhone with advanced camera", "999.99", "https://example.com/iphone15.jpg"),
		newProduct(2, "Samsung Galaxy S23", "Powerful Android smartphone", "899.99", "https://example.com/galaxy_s23.jpg"),
		newProduct(3, "MacBook Air M2", "Ultra-thin laptop with M2 chip", "1299.99", "https://example.com/macbook_air.jpg"),
		newProduct(4, "Sony Headphones", "Wireless noise-canceling headphones", "349.99", "https://example.com/sony_headphones.jpg"),
		newProduct(5, "Nike Shoes", "Classic basketball shoes", "175.99", "https://example.com/nike_shoes.jpg"),
	}
}

func newProduct(id int64, name, description, price, image string) model.Product {
	return model.Product{
		ID:          id,
		Name:        name,
		Description: &description,
		Price:       decimal.RequireFromString(price),
		Image:       &image,
	}
}

// ListProducts returns every product in catalog order.
func (r *Repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetProductByID retrieves a product by its ID.
func (r *Repository) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i, ok := r.productIndex[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	p := r.products[i]
	return &p, nil
}
