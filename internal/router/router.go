package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/streetdogs/backend/internal/handler"
	"github.com/streetdogs/backend/internal/repository"
	"github.com/streetdogs/backend/internal/service"
)

type Options struct {
	DB       repository.DB
	Users    service.UserService
	Dogs     service.DogService
	Contacts service.ContactService

	// Site holds the HTML pages and their assets.
	Site fs.FS

	// UploadsDir is served at /uploads/ when images are stored on local disk.
	// Leave empty when images live in S3.
	UploadsDir string

	CORSOrigin     string
	RateLimit      int // form POSTs per client per minute; 0 disables
	TrustedProxies int // reverse proxies appending to X-Forwarded-For
	MaxUploadBytes int64
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(handler.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(handler.SecurityHeaders)

	h := handler.New(opts.DB, opts.CORSOrigin)
	r.Use(h.CORS)

	userHandler := handler.NewUserHandler(opts.Users)
	dogHandler := handler.NewDogHandler(opts.Dogs, opts.MaxUploadBytes)
	contactHandler := handler.NewContactHandler(opts.Contacts)
	pageHandler := handler.NewPageHandler(opts.Site)

	r.Get("/api/health", h.Health)
	r.Get("/api/dogs", dogHandler.List)

	// フォーム送信はレート制限付き
	limited := r.With(handler.NewRateLimiter(opts.RateLimit, opts.TrustedProxies).Middleware)
	limited.Post("/api/users/register", userHandler.Register)
	limited.Post("/login", userHandler.Login)
	limited.Post("/api/dogs/upload", dogHandler.Upload)
	limited.Post("/contact", contactHandler.Submit)

	for path, file := range handler.Pages {
		r.Get(path, pageHandler.Page(file))
	}
	r.Method(http.MethodGet, "/assets/*", http.StripPrefix("/assets", pageHandler.Assets()))

	if opts.UploadsDir != "" {
		uploads := http.FileServer(http.Dir(opts.UploadsDir))
		r.Method(http.MethodGet, "/uploads/*", http.StripPrefix("/uploads", handler.NoDirListing(uploads)))
	}

	return r
}
