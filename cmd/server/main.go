package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streetdogs/backend/internal/config"
	"github.com/streetdogs/backend/internal/logging"
	"github.com/streetdogs/backend/internal/repository"
	"github.com/streetdogs/backend/internal/router"
	"github.com/streetdogs/backend/internal/service"
	"github.com/streetdogs/backend/internal/storage"
	"github.com/streetdogs/backend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repository.Open(ctx, cfg.StoreURI())
	cancel()
	if err != nil {
		logging.Fatal("failed to connect to store", "error", err)
	}
	defer func() { _ = store.Close(context.Background()) }()
	slog.Info("store connected", "backend", store.Backend)

	images, uploadsDir, err := newImageStorage(cfg)
	if err != nil {
		logging.Fatal("failed to set up image storage", "error", err)
	}

	handler := router.NewRouter(router.Options{
		DB:             store,
		Users:          service.NewUserService(store.Users),
		Dogs:           service.NewDogService(store.Dogs, images),
		Contacts:       service.NewContactService(store.Contacts),
		Site:           web.Static(),
		UploadsDir:     uploadsDir,
		CORSOrigin:     cfg.CORSOrigin,
		RateLimit:      cfg.RateLimit,
		TrustedProxies: cfg.TrustedProxies,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "public_url", cfg.PublicBaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel = context.WithTimeout(context.Background(), cfg.ShutdownWait)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newImageStorage picks the upload backend. The returned directory is
// non-empty only for local storage, which the server then serves at /uploads/.
func newImageStorage(cfg *config.Config) (storage.Storage, string, error) {
	if cfg.StorageDriver == config.StorageS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s, err := storage.NewS3Storage(ctx, storage.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			UseSSL:    cfg.S3.UseSSL,
			PublicURL: cfg.S3.PublicURL,
		})
		if err != nil {
			return nil, "", err
		}
		return s, "", nil
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, "", err
	}
	return storage.NewLocalStorage(cfg.UploadsDir, cfg.PublicBaseURL+"/uploads"), cfg.UploadsDir, nil
}
