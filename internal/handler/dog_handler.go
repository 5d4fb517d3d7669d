package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/service"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// DogHandler はワンちゃん一覧とアップロードを処理する
type DogHandler struct {
	dogService     service.DogService
	maxUploadBytes int64
}

// NewDogHandler creates a DogHandler. Upload bodies larger than maxUploadBytes are rejected.
func NewDogHandler(dogService service.DogService, maxUploadBytes int64) *DogHandler {
	return &DogHandler{dogService: dogService, maxUploadBytes: maxUploadBytes}
}

type uploadResponse struct {
	Message string     `json:"message"`
	Dog     *model.Dog `json:"dog,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// List handles GET /api/dogs.
func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dogs, err := h.dogService.List(r.Context())
	if err != nil {
		slog.Error("list dogs failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Error fetching dogs", Error: err.Error()})
		return
	}

	// Return [] not null for empty lists
	if dogs == nil {
		dogs = []*model.Dog{}
	}
	_ = json.NewEncoder(w).Encode(dogs)
}

// Upload handles POST /api/dogs/upload (multipart, image in field "image").
func (h *DogHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(uploadResponse{Message: "No image uploaded"})
		case errors.As(err, &tooLarge):
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(uploadResponse{Message: "Upload too large"})
		default:
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(uploadResponse{Message: "Invalid upload", Error: err.Error()})
		}
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	in := service.UploadInput{
		Name:           r.FormValue("name"),
		Breed:          r.FormValue("breed"),
		Age:            r.FormValue("age"),
		Gender:         r.FormValue("gender"),
		Location:       r.FormValue("location"),
		Color:          r.FormValue("color"),
		Vaccinated:     r.FormValue("vaccinated"),
		AdoptionStatus: r.FormValue("adoptionStatus"),
		Description:    r.FormValue("description"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		in.Image = &service.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        file,
		}
	}

	dog, err := h.dogService.Upload(r.Context(), in)
	if err != nil {
		if service.IsClientError(err) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(uploadResponse{Message: uploadErrorMessage(err)})
			return
		}
		slog.Error("dog upload failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(uploadResponse{Message: "Failed to upload dog", Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(uploadResponse{Message: "Dog uploaded successfully", Dog: dog})
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNoImage):
		return "No image uploaded"
	case errors.Is(err, service.ErrInvalidAge):
		return "Age must be a number"
	case errors.Is(err, service.ErrMissingFields):
		return "Name and breed are required"
	default:
		return err.Error()
	}
}
