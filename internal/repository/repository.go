package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Store bundles the repositories of one backend together with its connection.
type Store struct {
	Dogs     DogRepository
	Users    UserRepository
	Contacts ContactRepository

	Backend string
	db      DB
	close   func(ctx context.Context) error
}

// Ping checks the underlying connection (DB インターフェース実装).
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Name reports the backend in use: mongo, postgres or memory.
func (s *Store) Name() string {
	return s.Backend
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store named by uri. The scheme picks the backend:
// mongodb / mongodb+srv, postgres / postgresql, or memory.
func Open(ctx context.Context, uri string) (*Store, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("repository: parse store uri: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return openMongo(ctx, uri)
	case "postgres", "postgresql":
		pool, err := NewPool(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("repository: connect postgres: %w", err)
		}
		return &Store{
			Dogs:     NewPgDogRepository(pool),
			Users:    NewPgUserRepository(pool),
			Contacts: NewPgContactRepository(pool),
			Backend:  "postgres",
			db:       pgPinger{pool},
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("repository: unsupported store scheme %q", u.Scheme)
	}
}

type pgPinger struct {
	pool *pgxpool.Pool
}

func (p pgPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
