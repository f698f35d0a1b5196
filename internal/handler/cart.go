package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopfront/shopfront/internal/handler/dto"
	"github.com/shopfront/shopfront/internal/service"
)

// CartItemAddedMessage accompanies a successful add-to-cart.
const CartItemAddedMessage = "Product added to cart"

// CartHandler handles HTTP requests for carts.
type CartHandler struct {
	svc    *service.CartService
	logger *slog.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		svc:    svc,
		logger: logger,
	}
}

// AddItem handles POST /cart?userId={id}. The user_id spelling is also accepted.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	raw := query.Get("userId")
	if raw == "" {
		raw = query.Get("user_id")
	}
	if raw == "" {
		writeError(w, http.StatusBadRequest, "MISSING_USER_ID", "userId query parameter is required")
		return
	}
	userID, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "User ID must be a positive integer")
		return
	}

	var req dto.AddCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("cart_item_added",
		"user_id", userID,
		"product_id", item.ProductID,
		"quantity", req.Quantity,
		"line_quantity", item.Quantity,
	)

	writeJSON(w, http.StatusOK, dto.AddCartItemResponse{
		Message:  CartItemAddedMessage,
		CartItem: item,
		UserID:   userID,
	})
}

// Get handles GET /cart/{userId}.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(chi.URLParam(r, "userId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "User ID must be a positive integer")
		return
	}

	cart, err := h.svc.GetCart(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}
