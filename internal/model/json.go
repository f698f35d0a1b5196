package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amounts are JSON numbers on the wire. decimal.Decimal encodes as a quoted
// string by default, so every type carrying money overrides those fields.

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// MarshalJSON encodes the price as a JSON number.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Price json.Number `json:"price"`
	}{product(p), amount(p.Price)})
}

// MarshalJSON encodes price and item total as JSON numbers.
func (v CartItemView) MarshalJSON() ([]byte, error) {
	type view CartItemView
	return json.Marshal(struct {
		view
		Price     json.Number `json:"price"`
		ItemTotal json.Number `json:"item_total"`
	}{view(v), amount(v.Price), amount(v.ItemTotal)})
}

// MarshalJSON encodes subtotal and total as JSON numbers.
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order
	return json.Marshal(struct {
		order
		Subtotal json.Number `json:"subtotal"`
		Total    json.Number `json:"total"`
	}{order(o), amount(o.Subtotal), amount(o.Total)})
}
