package config

import (
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.PublicBaseURL != "http://localhost:5000" {
		t.Errorf("expected derived base URL, got %q", cfg.PublicBaseURL)
	}
	if cfg.StoreURI() != "mongodb://localhost:27017/street-dog-service" {
		t.Errorf("expected mongo default store URI, got %q", cfg.StoreURI())
	}
	if cfg.UploadsDir != "uploads" {
		t.Errorf("expected uploads dir, got %q", cfg.UploadsDir)
	}
	if cfg.ShutdownWait != 5*time.Second {
		t.Errorf("expected 5s shutdown wait, got %v", cfg.ShutdownWait)
	}
	if cfg.TrustedProxies != 0 {
		t.Errorf("expected no trusted proxies by default, got %d", cfg.TrustedProxies)
	}
	if cfg.Addr() != ":5000" {
		t.Errorf("expected :5000, got %q", cfg.Addr())
	}
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "memory://")
	t.Setenv("PUBLIC_BASE_URL", "https://dogs.example.org/")
	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("TRUSTED_PROXY_COUNT", "1")

	cfg, err := parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.StoreURI() != "memory://" {
		t.Errorf("expected DATABASE_URL to win, got %q", cfg.StoreURI())
	}
	if cfg.PublicBaseURL != "https://dogs.example.org" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.PublicBaseURL)
	}
	if cfg.S3.Bucket != "photos" {
		t.Errorf("expected S3 bucket from prefix, got %q", cfg.S3.Bucket)
	}
	if cfg.RateLimit != 0 {
		t.Errorf("expected rate limit 0, got %d", cfg.RateLimit)
	}
	if cfg.TrustedProxies != 1 {
		t.Errorf("expected 1 trusted proxy, got %d", cfg.TrustedProxies)
	}
}

func TestParse_NegativeProxyCount(t *testing.T) {
	t.Setenv("TRUSTED_PROXY_COUNT", "-1")
	if _, err := parse(); err == nil {
		t.Fatal("expected error for negative proxy count")
	}
}

func TestParse_UnknownStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "ftp")
	if _, err := parse(); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestParse_BadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	if _, err := parse(); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}
