// Package config provides environment-driven configuration for the bot.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configuration validation errors.
var (
	ErrMissingHandle   = errors.New("BSKYBOT (bot handle) is required")
	ErrMissingPassword = errors.New("BSKYPWD (app password) is required")
)

// Config carries everything a single run needs.
type Config struct {
	// Posting credentials and host.
	Handle   string
	Password string
	Host     string

	// Local archive file; ignored when the S3 backend is selected.
	ArchivePath string

	// S3 archive backend; used instead of the local file when Bucket is set.
	S3Bucket       string
	S3Key          string
	S3Region       string
	S3Profile      string
	S3UsePathStyle bool

	// Per-source feed fetch timeout.
	FetchTimeout time.Duration
}

// Load reads configuration from the environment. Callers load .env first
// via godotenv if they want file-based overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Handle:         strings.TrimSpace(os.Getenv("BSKYBOT")),
		Password:       os.Getenv("BSKYPWD"),
		Host:           GetEnvOrDefault("BSKY_HOST", DefaultBskyHost),
		ArchivePath:    GetEnvOrDefault("ARCHIVE_PATH", DefaultArchivePath),
		S3Bucket:       strings.TrimSpace(os.Getenv("ARCHIVE_S3_BUCKET")),
		S3Key:          GetEnvOrDefault("ARCHIVE_S3_KEY", DefaultArchiveS3Key),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
		FetchTimeout:   DefaultFetchTimeout,
	}

	if v := os.Getenv("FETCH_TIMEOUT_SEC"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.FetchTimeout = time.Duration(secs) * time.Second
		}
	}

	if cfg.Handle == "" {
		return nil, ErrMissingHandle
	}
	if cfg.Password == "" {
		return nil, ErrMissingPassword
	}

	return cfg, nil
}

// GetEnvOrDefault returns the value of an environment variable or a default.
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
