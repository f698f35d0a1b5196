package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestProduct_LineTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
	}{
		{"single unit", "999.99", 1, "999.99"},
		{"two units", "999.99", 2, "1999.98"},
		{"many units", "175.99", 7, "1231.93"},
		{"zero price", "0", 3, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Product{Price: decimal.RequireFromString(tt.price)}
			got := p.LineTotal(tt.quantity)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("LineTotal(%d) = %s, want %s", tt.quantity, got, tt.want)
			}
		})
	}
}

func TestUser_PublicOmitsHash(t *testing.T) {
	t.Parallel()

	user := &User{
		ID:           7,
		Username:     "freddy",
		Email:        "freddy@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$salt$hash",
		CreatedAt:    time.Now(),
	}

	public := user.Public()
	if public.ID != 7 || public.Username != "freddy" || public.Email != "freddy@example.com" {
		t.Errorf("unexpected public view: %+v", public)
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(data), "argon2id") {
		t.Errorf("serialized user leaks password hash: %s", data)
	}
}

func TestEnrich(t *testing.T) {
	t.Parallel()

	image := "https://example.com/sony_headphones.jpg"
	product := &Product{
		ID:    4,
		Name:  "Sony Headphones",
		Price: decimal.RequireFromString("349.99"),
		Image: &image,
	}

	view := Enrich(CartLineItem{ProductID: 4, Quantity: 3}, product)

	if view.ProductID != 4 || view.Name != "Sony Headphones" || view.Quantity != 3 {
		t.Errorf("unexpected view: %+v", view)
	}
	if !view.ItemTotal.Equal(decimal.RequireFromString("1049.97")) {
		t.Errorf("ItemTotal = %s, want 1049.97", view.ItemTotal)
	}
	if view.Image == nil || *view.Image != image {
		t.Errorf("Image = %v, want %s", view.Image, image)
	}
}

func TestMarshalJSON_AmountsAreNumbers(t *testing.T) {
	t.Parallel()

	product := Product{ID: 1, Name: "iPhone 15 Pro", Price: decimal.RequireFromString("999.99")}
	line := Enrich(CartLineItem{ProductID: 1, Quantity: 2}, &product)
	order := Order{
		ID:       "01HZX3J5Q8K9N0PQRSTVWXYZ12",
		UserID:   1,
		Items:    []CartItemView{line},
		Subtotal: line.ItemTotal,
		Total:    line.ItemTotal,
	}

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"product", &product, []string{`"price":999.99`, `"id":1`}},
		{"cart item", line, []string{`"price":999.99`, `"item_total":1999.98`, `"quantity":2`}},
		{"order", order, []string{`"subtotal":1999.98`, `"total":1999.98`, `"item_total":1999.98`, `"order_id":"01HZX3J5Q8K9N0PQRSTVWXYZ12"`}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(data), want) {
					t.Errorf("%s missing %s", data, want)
				}
			}
		})
	}
}

func TestOrder_RoundTripsAmounts(t *testing.T) {
	t.Parallel()

	in := Order{ID: "x", Subtotal: decimal.RequireFromString("2349.97"), Total: decimal.RequireFromString("2349.97")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Order
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if !out.Total.Equal(in.Total) || !out.Subtotal.Equal(in.Subtotal) {
		t.Errorf("round trip = %s/%s, want 2349.97", out.Subtotal, out.Total)
	}
}
