package service

import (
	"bytes"
	"context"
	"io"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mock repositories
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	createFunc      func(ctx context.Context, u *model.User) error
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	u.ID = "user-1"
	return nil
}

type mockDogRepo struct {
	createFunc func(ctx context.Context, d *model.Dog) error
	listFunc   func(ctx context.Context) ([]*model.Dog, error)
}

var _ repository.DogRepository = (*mockDogRepo)(nil)

func (m *mockDogRepo) Create(ctx context.Context, d *model.Dog) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, d)
	}
	d.ID = "dog-1"
	return nil
}

func (m *mockDogRepo) List(ctx context.Context) ([]*model.Dog, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockDogRepo) InsertMany(ctx context.Context, dogs []*model.Dog) error {
	return nil
}

func (m *mockDogRepo) DeleteAll(ctx context.Context) error {
	return nil
}

type mockContactRepo struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
}

var _ repository.ContactRepository = (*mockContactRepo)(nil)

func (m *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

// fakeStorage records saved objects in memory.
type fakeStorage struct {
	saved   map[string][]byte
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.saved[key] = b
	return "http://localhost:5000/uploads/" + key, nil
}

func testImage(name string) *UploadFile {
	data := []byte("\x89PNG fake")
	return &UploadFile{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(data)),
		Data:        bytes.NewReader(data),
	}
}
