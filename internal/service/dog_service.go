package service

import (
	"context"
	"io"

	"github.com/streetdogs/backend/internal/model"
)

// UploadFile is the image part of an upload request.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadInput carries the raw text fields of the upload form; parsing and
// validation happen in DogService.Upload.
type UploadInput struct {
	Name           string
	Breed          string
	Age            string
	Gender         string
	Location       string
	Color          string
	Vaccinated     string
	AdoptionStatus string
	Description    string

	Image *UploadFile
}

// DogService lists dogs and creates them from the upload form.
type DogService interface {
	List(ctx context.Context) ([]*model.Dog, error)
	Upload(ctx context.Context, in UploadInput) (*model.Dog, error)
}
