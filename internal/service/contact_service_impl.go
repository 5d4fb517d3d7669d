package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo, now: time.Now}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, ErrMissingFields
	}
	msg.CreatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}
	slog.Info("contact message received", "message_id", msg.ID)
	return msg, nil
}
