package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopfront/shopfront/internal/handler/dto"
	"github.com/shopfront/shopfront/internal/service"
)

// LoginSuccessMessage accompanies a successful login.
const LoginSuccessMessage = "Login successful"

// UserHandler handles registration, login and the user listing.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			h.logger.Info("registration_rejected", "reason", err.Error())
		}
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_registered", "user_id", user.ID)

	writeJSON(w, http.StatusOK, user)
}

// Login handles POST /login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.Login(r.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Warn("login_failed")
		}
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("login_succeeded", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: LoginSuccessMessage,
		User:    user,
	})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
