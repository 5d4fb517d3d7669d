package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type (
	// Config is the whole runtime configuration surface, read from the environment.
	Config struct {
		Port           string        `env:"PORT" envDefault:"5000"`
		MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/street-dog-service"`
		DatabaseURL    string        `env:"DATABASE_URL"`
		PublicBaseURL  string        `env:"PUBLIC_BASE_URL"`
		UploadsDir     string        `env:"UPLOADS_DIR" envDefault:"uploads"`
		MaxUploadBytes int64         `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
		StorageDriver  string        `env:"STORAGE_DRIVER" envDefault:"local"`
		CORSOrigin     string        `env:"CORS_ORIGIN" envDefault:"*"`
		RateLimit      int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
		TrustedProxies int           `env:"TRUSTED_PROXY_COUNT" envDefault:"0"`
		LogLevel       string        `env:"LOG_LEVEL" envDefault:"INFO"`
		LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
		ShutdownWait   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

		S3 S3Config `envPrefix:"S3_"`
	}

	S3Config struct {
		Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"dogs"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
		PublicURL string `env:"PUBLIC_URL"`
	}
)

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return parse()
}

func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	if cfg.TrustedProxies < 0 {
		return nil, fmt.Errorf("read config: TRUSTED_PROXY_COUNT must not be negative")
	}

	switch cfg.StorageDriver {
	case StorageLocal, StorageS3:
	default:
		return nil, fmt.Errorf("read config: unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return cfg, nil
}

// StoreURI is the connection string for the record store.
// DATABASE_URL wins over MONGO_URI so a Postgres or memory store can be swapped in.
func (c *Config) StoreURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.MongoURI
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
