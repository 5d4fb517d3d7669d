package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/repository"
	"github.com/streetdogs/backend/pkg/auth"
)

// userServiceImpl is the production implementation of UserService.
type userServiceImpl struct {
	repo  repository.UserRepository
	hash  func(pw string) (string, error)
	check func(hash, pw string) bool
	now   func() time.Time
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userServiceImpl{
		repo:  repo,
		hash:  auth.HashPassword,
		check: auth.CheckPassword,
		now:   time.Now,
	}
}

// Register creates a user after checking that the email is not already taken.
// The lookup and the insert are separate store calls, so two concurrent
// registrations with the same email can both succeed.
func (s *userServiceImpl) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	slog.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Login returns the user whose email and password match.
func (s *userServiceImpl) Login(ctx context.Context, in LoginInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.check(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
