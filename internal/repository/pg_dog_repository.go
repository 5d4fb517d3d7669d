package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streetdogs/backend/internal/model"
)

// PgDogRepository is the PostgreSQL implementation of DogRepository.
type PgDogRepository struct {
	pool *pgxpool.Pool
}

// NewPgDogRepository creates a PgDogRepository backed by the given pool.
func NewPgDogRepository(pool *pgxpool.Pool) *PgDogRepository {
	return &PgDogRepository{pool: pool}
}

var _ DogRepository = (*PgDogRepository)(nil)

const dogSelectCols = `id, name, breed, age, gender, size, color, vaccinated, adoption_status,
	location, image_url, description, created_at`

var dogCopyCols = []string{
	"name", "breed", "age", "gender", "size", "color", "vaccinated", "adoption_status",
	"location", "image_url", "description", "created_at",
}

func scanDog(scan func(...any) error) (*model.Dog, error) {
	var d model.Dog
	var size, status string
	if err := scan(&d.ID, &d.Name, &d.Breed, &d.Age, &d.Gender, &size, &d.Color, &d.Vaccinated,
		&status, &d.Location, &d.ImageURL, &d.Description, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Size = model.Size(size)
	d.AdoptionStatus = model.AdoptionStatus(status)
	return &d, nil
}

// Create inserts a dogs row and populates d.ID from the RETURNING clause.
func (r *PgDogRepository) Create(ctx context.Context, d *model.Dog) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO dogs (name, breed, age, gender, size, color, vaccinated, adoption_status,
		                   location, image_url, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		d.Name, d.Breed, d.Age, d.Gender, string(d.Size), d.Color, d.Vaccinated, string(d.AdoptionStatus),
		d.Location, d.ImageURL, d.Description, d.CreatedAt,
	).Scan(&d.ID)
}

// List returns all dogs ordered by insertion time.
func (r *PgDogRepository) List(ctx context.Context) ([]*model.Dog, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+dogSelectCols+` FROM dogs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dogs []*model.Dog
	for rows.Next() {
		d, err := scanDog(rows.Scan)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, d)
	}
	return dogs, rows.Err()
}

// InsertMany bulk-loads dogs with COPY. IDs are not read back.
func (r *PgDogRepository) InsertMany(ctx context.Context, dogs []*model.Dog) error {
	now := time.Now().UTC()
	_, err := r.pool.CopyFrom(ctx, pgx.Identifier{"dogs"}, dogCopyCols,
		pgx.CopyFromSlice(len(dogs), func(i int) ([]any, error) {
			d := dogs[i]
			if d.CreatedAt.IsZero() {
				d.CreatedAt = now
			}
			return []any{
				d.Name, d.Breed, d.Age, d.Gender, string(d.Size), d.Color, d.Vaccinated,
				string(d.AdoptionStatus), d.Location, d.ImageURL, d.Description, d.CreatedAt,
			}, nil
		}))
	return err
}

// DeleteAll removes every dog.
func (r *PgDogRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM dogs`)
	return err
}
