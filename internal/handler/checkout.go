package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopfront/shopfront/internal/service"
)

// CheckoutHandler handles HTTP requests for checkout.
type CheckoutHandler struct {
	svc    *service.CheckoutService
	logger *slog.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		svc:    svc,
		logger: logger,
	}
}

// Checkout handles POST /checkout/{userId}.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(chi.URLParam(r, "userId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "User ID must be a positive integer")
		return
	}

	order, err := h.svc.Checkout(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("checkout_completed",
		"order_id", order.ID,
		"user_id", order.UserID,
		"items", len(order.Items),
		"total", order.Total.String(),
	)

	writeJSON(w, http.StatusOK, order)
}
