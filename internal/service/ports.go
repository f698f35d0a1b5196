package service

import (
	"context"

	"github.com/shopfront/shopfront/internal/model"
)

// ProductReader is the read-only product catalog.
type ProductReader interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int64) (*model.Product, error)
}

// UserStore is the user directory.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// CartStore holds per-user line items.
type CartStore interface {
	AddCartItem(ctx context.Context, userID, productID int64, quantity int) (model.CartLineItem, error)
	GetCart(ctx context.Context, userID int64) ([]model.CartLineItem, error)
	TakeCart(ctx context.Context, userID int64) ([]model.CartLineItem, error)
}

// OrderPublisher announces completed orders. Implementations must not block.
type OrderPublisher interface {
	PublishOrderPlaced(order *model.Order)
}

// PasswordHasher is a one-way salted hash with verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
	VerifyDummy(password string)
}
