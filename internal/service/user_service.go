package service

import (
	"context"

	"github.com/streetdogs/backend/internal/model"
)

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserService handles registration and credential checks.
// Login does not create a session; the caller only learns whether the credentials match.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, in LoginInput) (*model.User, error)
}
