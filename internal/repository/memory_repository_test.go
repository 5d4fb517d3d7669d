package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/streetdogs/backend/internal/model"
)

func TestMemoryDogRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDogRepository()

	a := &model.Dog{Name: "Bruno", Breed: "Labrador", Age: 3, Size: model.SizeMedium}
	b := &model.Dog{Name: "Lucy", Breed: "Bulldog", Age: 0.5, Size: model.SizeSmall}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Bruno" || got[1].Name != "Lucy" {
		t.Fatalf("expected [Bruno Lucy] in insertion order, got %+v", got)
	}

	got[0].Name = "mutated"
	again, _ := repo.List(ctx)
	if again[0].Name != "Bruno" {
		t.Error("List must return copies")
	}
}

func TestMemoryDogRepository_InsertManyAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDogRepository()

	dogs := []*model.Dog{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	if err := repo.InsertMany(ctx, dogs); err != nil {
		t.Fatalf("InsertMany: %v", err)
	}
	for _, d := range dogs {
		if d.ID == "" {
			t.Errorf("expected ID on %q", d.Name)
		}
	}
	if got, _ := repo.List(ctx); len(got) != 3 {
		t.Fatalf("expected 3 dogs, got %d", len(got))
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if got, _ := repo.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty list after DeleteAll, got %d", len(got))
	}
}

func TestMemoryUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	if _, err := repo.FindByEmail(ctx, "a@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	u := &model.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != u.ID || found.Name != "A" || found.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", found)
	}
	if len(repo.users) != 1 {
		t.Errorf("expected 1 user, got %d", len(repo.users))
	}
}

func TestMemoryContactRepository_Save(t *testing.T) {
	repo := NewMemoryContactRepository()
	msg := &model.ContactMessage{Name: "A", Email: "a@x.com", Message: "hi"}
	if err := repo.Save(context.Background(), msg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if msg.ID == "" || msg.CreatedAt.IsZero() {
		t.Errorf("expected ID and CreatedAt, got %+v", msg)
	}
	if got := repo.messages; len(got) != 1 || got[0].Message != "hi" {
		t.Errorf("unexpected messages %+v", got)
	}
}

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "memory://")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close(ctx)

	if st.Backend != "memory" || st.Name() != "memory" {
		t.Errorf("expected memory backend, got %q", st.Name())
	}
	if err := st.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	if _, err := Open(context.Background(), "redis://localhost:6379"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestMongoDatabaseName(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/shelter", "shelter"},
		{"mongodb://localhost:27017", defaultMongoDatabase},
		{"mongodb://localhost:27017/", defaultMongoDatabase},
		{"mongodb+srv://u:p@cluster.example.net/dogs?retryWrites=true", "dogs"},
	}
	for _, tt := range tests {
		if got := mongoDatabaseName(tt.uri); got != tt.want {
			t.Errorf("mongoDatabaseName(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
