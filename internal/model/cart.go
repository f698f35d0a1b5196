package model

import "github.com/shopspring/decimal"

// CartLineItem is a (product, quantity) pair inside a user's cart.
// A cart holds at most one line item per product.
type CartLineItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartItemView is a line item enriched with catalog data.
type CartItemView struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ItemTotal decimal.Decimal `json:"item_total"`
	Image     *string         `json:"image,omitempty"`
}

// Enrich joins a line item with its product.
func Enrich(item CartLineItem, product *Product) CartItemView {
	return CartItemView{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  item.Quantity,
		ItemTotal: product.LineTotal(item.Quantity),
		Image:     product.Image,
	}
}

// CartView is the read model of a user's cart.
type CartView struct {
	UserID     int64          `json:"user_id"`
	Items      []CartItemView `json:"items"`
	TotalItems int            `json:"total_items"`
}
