package service

import (
	"context"

	"github.com/streetdogs/backend/internal/model"
)

// ContactInput is the contact form as submitted.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message. All three fields are required.
	Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error)
}
