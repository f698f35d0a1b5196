// Package model defines domain entities for the application.
package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are immutable once the catalog is loaded.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
}

// LineTotal returns the price of quantity units of the product.
func (p *Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}
