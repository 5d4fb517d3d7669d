package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/repository"
	"github.com/streetdogs/backend/internal/storage"
)

type dogServiceImpl struct {
	repo    repository.DogRepository
	storage storage.Storage
	now     func() time.Time
}

// NewDogService creates a DogService that stores images in store.
func NewDogService(repo repository.DogRepository, store storage.Storage) DogService {
	return &dogServiceImpl{repo: repo, storage: store, now: time.Now}
}

func (s *dogServiceImpl) List(ctx context.Context) ([]*model.Dog, error) {
	dogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	return dogs, nil
}

// Upload validates the form, saves the image and inserts the dog.
// Nothing is written until every field has been validated. If the insert
// fails after the image was saved, the image is left in place.
func (s *dogServiceImpl) Upload(ctx context.Context, in UploadInput) (*model.Dog, error) {
	d, err := buildDog(in)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	key := storage.GenerateKey(now, in.Image.Filename)
	url, err := s.storage.Save(ctx, key, in.Image.Data, in.Image.Size, in.Image.ContentType)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	d.ImageURL = url
	d.CreatedAt = now

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create dog: %w", err)
	}
	slog.Info("dog uploaded", "dog_id", d.ID, "size", d.Size, "image", key)
	return d, nil
}

// buildDog turns form values into a Dog with its size derived from age.
func buildDog(in UploadInput) (*model.Dog, error) {
	if in.Image == nil || in.Image.Data == nil {
		return nil, ErrNoImage
	}

	age, err := parseAge(in.Age)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)
	if name == "" || breed == "" {
		return nil, fmt.Errorf("%w: name and breed", ErrMissingFields)
	}

	status, ok := model.ParseAdoptionStatus(in.AdoptionStatus)
	if !ok {
		return nil, fmt.Errorf("%w: adoptionStatus must be Available, Adopted or Fostered", ErrInvalidField)
	}

	vaccinated, err := parseVaccinated(in.Vaccinated)
	if err != nil {
		return nil, err
	}

	return &model.Dog{
		Name:           name,
		Breed:          breed,
		Age:            age,
		Gender:         strings.TrimSpace(in.Gender),
		Size:           model.SizeForAge(age),
		Color:          strings.TrimSpace(in.Color),
		Vaccinated:     vaccinated,
		AdoptionStatus: status,
		Location:       strings.TrimSpace(in.Location),
		Description:    strings.TrimSpace(in.Description),
	}, nil
}

// parseAge accepts any number, including negatives and Infinity.
// Empty, unparseable and NaN input is rejected.
func parseAge(s string) (float64, error) {
	age, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrInvalidAge
	}
	if math.IsNaN(age) {
		return 0, ErrInvalidAge
	}
	return age, nil
}

// parseVaccinated accepts the usual boolean spellings plus HTML checkbox values.
// Empty means false.
func parseVaccinated(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, nil
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: vaccinated must be true or false", ErrInvalidField)
	}
	return v, nil
}
