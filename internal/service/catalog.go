package service

import (
	"context"
	"errors"

	"github.com/shopfront/shopfront/internal/model"
	"github.com/shopfront/shopfront/internal/repository"
)

// CatalogService exposes the product catalog.
type CatalogService struct {
	products ProductReader
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products ProductReader) *CatalogService {
	return &CatalogService{products: products}
}

// List returns all products in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.ListProducts(ctx)
}

// Get retrieves a product by ID.
func (s *CatalogService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
