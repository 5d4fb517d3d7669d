package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/streetdogs/backend/internal/model"
)

// NewMemoryStore returns a Store kept entirely in process memory.
// Used for local development (DATABASE_URL=memory://) and tests.
func NewMemoryStore() *Store {
	return &Store{
		Dogs:     NewMemoryDogRepository(),
		Users:    NewMemoryUserRepository(),
		Contacts: NewMemoryContactRepository(),
		Backend:  "memory",
		db:       memoryPinger{},
	}
}

type memoryPinger struct{}

func (memoryPinger) Ping(context.Context) error { return nil }

// MemoryDogRepository keeps dogs in insertion order.
type MemoryDogRepository struct {
	mu   sync.RWMutex
	dogs []model.Dog
}

func NewMemoryDogRepository() *MemoryDogRepository {
	return &MemoryDogRepository{}
}

var _ DogRepository = (*MemoryDogRepository)(nil)

func (r *MemoryDogRepository) Create(_ context.Context, d *model.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(d, time.Now().UTC())
	return nil
}

func (r *MemoryDogRepository) insert(d *model.Dog, now time.Time) {
	d.ID = uuid.NewString()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	r.dogs = append(r.dogs, *d)
}

// List returns copies so callers cannot mutate stored records.
func (r *MemoryDogRepository) List(_ context.Context) ([]*model.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Dog, 0, len(r.dogs))
	for i := range r.dogs {
		d := r.dogs[i]
		out = append(out, &d)
	}
	return out, nil
}

func (r *MemoryDogRepository) InsertMany(_ context.Context, dogs []*model.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, d := range dogs {
		r.insert(d, now)
	}
	return nil
}

func (r *MemoryDogRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dogs = nil
	return nil
}

// MemoryUserRepository mirrors the other backends: email is not unique at this level.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

var _ UserRepository = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.users = append(r.users, *user)
	return nil
}

// MemoryContactRepository appends contact messages to a slice.
type MemoryContactRepository struct {
	mu       sync.Mutex
	messages []model.ContactMessage
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

func (r *MemoryContactRepository) Save(_ context.Context, msg *model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = uuid.NewString()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	r.messages = append(r.messages, *msg)
	return nil
}
