package repository

import (
	"context"

	"github.com/streetdogs/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// DogRepository persists shelter dog listings.
type DogRepository interface {
	// Create inserts d and fills in d.ID (and CreatedAt when zero).
	Create(ctx context.Context, d *model.Dog) error
	// List returns every dog in the store's natural order.
	List(ctx context.Context) ([]*model.Dog, error)
	InsertMany(ctx context.Context, dogs []*model.Dog) error
	DeleteAll(ctx context.Context) error
}

// UserRepository はユーザー永続化のインターフェース
type UserRepository interface {
	// FindByEmail returns ErrNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}
