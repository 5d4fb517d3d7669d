package handler

import (
	"context"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockUserService struct {
	registerFunc func(ctx context.Context, in service.RegisterInput) (*model.User, error)
	loginFunc    func(ctx context.Context, in service.LoginInput) (*model.User, error)
}

func (m *mockUserService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, in)
	}
	return &model.User{ID: "u1", Name: in.Name, Email: in.Email}, nil
}

func (m *mockUserService) Login(ctx context.Context, in service.LoginInput) (*model.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, in)
	}
	return &model.User{ID: "u1", Name: "Alice", Email: in.Email}, nil
}

type mockDogService struct {
	listFunc   func(ctx context.Context) ([]*model.Dog, error)
	uploadFunc func(ctx context.Context, in service.UploadInput) (*model.Dog, error)
}

func (m *mockDogService) List(ctx context.Context) ([]*model.Dog, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockDogService) Upload(ctx context.Context, in service.UploadInput) (*model.Dog, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, in)
	}
	return &model.Dog{ID: "d1", Name: in.Name}, nil
}

type mockContactService struct {
	submitFunc func(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error)
}

func (m *mockContactService) Submit(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.ContactMessage{ID: "c1"}, nil
}
