// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/shopfront/shopfront/internal/model"

// RegisterRequest represents the request body for registering a user.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

// AddCartItemRequest represents the request body for adding to a cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddCartItemResponse is returned after an item is added to a cart.
type AddCartItemResponse struct {
	Message  string             `json:"message"`
	CartItem model.CartLineItem `json:"cart_item"`
	UserID   int64              `json:"user_id"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
