package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedMessage is returned with every successful checkout.
const OrderPlacedMessage = "Order placed successfully!"

// Order is the summary produced by a checkout. Orders are not stored.
type Order struct {
	ID       string          `json:"order_id"`
	UserID   int64           `json:"user_id"`
	Items    []CartItemView  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
	Message  string          `json:"message"`
	PlacedAt time.Time       `json:"placed_at"`
}

// Stats holds store-wide counters.
type Stats struct {
	TotalUsers     int `json:"total_users"`
	TotalProducts  int `json:"total_products"`
	UsersWithCarts int `json:"users_with_carts"`
	TotalCartItems int `json:"total_cart_items"`
}
