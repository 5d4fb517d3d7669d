package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/streetdogs/backend/internal/service"
)

// UserHandler handles registration and login.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a UserHandler with the given service.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req service.RegisterInput
	if err := decodeJSON(w, r, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Invalid request body"})
		return
	}

	_, err := h.userService.Register(r.Context(), req)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: "Registration Successful!"})
	case errors.Is(err, service.ErrMissingFields):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "All fields are required!"})
	case errors.Is(err, service.ErrEmailTaken):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Email already exists!"})
	default:
		slog.Error("registration failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Server Error", Error: err.Error()})
	}
}

// Login handles POST /login. No session is created; the client keeps the returned name.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req service.LoginInput
	if err := decodeJSON(w, r, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Invalid request body"})
		return
	}

	u, err := h.userService.Login(r.Context(), req)
	switch {
	case err == nil:
		_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: "Login Successful!", Name: u.Name})
	case errors.Is(err, service.ErrMissingFields):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "All fields are required!"})
	case errors.Is(err, service.ErrUserNotFound):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "User not found!"})
	case errors.Is(err, service.ErrInvalidCredentials):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Invalid credentials!"})
	default:
		slog.Error("login failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Server Error", Error: err.Error()})
	}
}
