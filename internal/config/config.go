package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/matzehuels/vibegrid/pkg/cache"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
	"github.com/matzehuels/vibegrid/pkg/search"
)

// Defaults.
const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultCacheBackend    = cache.BackendFile
	DefaultCacheTTL        = 24 * time.Hour
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the server configuration.
type Config struct {
	// Server
	Addr            string
	LogLevel        string
	ShutdownTimeout time.Duration
	MaxBestCount    int // upper bound on best-of-N count per request

	// Cache
	Cache    string // none, file, redis or mongo
	CacheDir string
	CacheTTL time.Duration
	// CachePrefix namespaces keys so deployments can share a backend.
	CachePrefix string
	RedisURL    string
	MongoURI    string
	MongoDB     string
}

// Load reads .env (if present) and the environment, then validates.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            getEnv(EnvAddr, DefaultAddr),
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, DefaultShutdownTimeout),
		MaxBestCount:    getIntEnv(EnvMaxBestCount, pipeline.DefaultMaxCount),

		Cache:       getEnv(EnvCache, DefaultCacheBackend),
		CacheDir:    getEnv(EnvCacheDir, defaultCacheDir()),
		CacheTTL:    getDurationEnv(EnvCacheTTL, DefaultCacheTTL),
		CachePrefix: getEnv(EnvCachePrefix, ""),
		RedisURL:    getEnv(EnvRedisURL, ""),
		MongoURI:    getEnv(EnvMongoURI, ""),
		MongoDB:     getEnv(EnvMongoDB, cache.DefaultMongoDatabase),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvAddr))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if c.MaxBestCount < 1 || c.MaxBestCount > search.MaxBestCount {
		errs = append(errs, fmt.Errorf("%s must be within [1, %d], got %d", EnvMaxBestCount, search.MaxBestCount, c.MaxBestCount))
	}

	if !slices.Contains(cache.Backends, c.Cache) {
		errs = append(errs, fmt.Errorf("%s must be one of %v, got %q", EnvCache, cache.Backends, c.Cache))
	}
	switch c.Cache {
	case cache.BackendFile:
		if c.CacheDir == "" {
			errs = append(errs, fmt.Errorf("%s is required for the file cache", EnvCacheDir))
		}
	case cache.BackendRedis:
		if c.RedisURL == "" {
			errs = append(errs, fmt.Errorf("%s is required for the redis cache", EnvRedisURL))
		}
	case cache.BackendMongo:
		if c.MongoURI == "" {
			errs = append(errs, fmt.Errorf("%s is required for the mongo cache", EnvMongoURI))
		}
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvCacheTTL, c.CacheTTL))
	}

	return errors.Join(errs...)
}

// CacheOptions returns the options for cache.Open.
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:  c.Cache,
		Dir:      c.CacheDir,
		RedisURL: c.RedisURL,
		MongoURI: c.MongoURI,
		MongoDB:  c.MongoDB,
	}
}

// Keyer returns the cache keyer, scoped by CachePrefix when one is set.
// Nil means the runner's default keyer.
func (c *Config) Keyer() cache.Keyer {
	if c.CachePrefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, c.CachePrefix)
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// defaultCacheDir is the per-user cache directory shared with the CLI.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "vibegrid")
	}
	return filepath.Join(os.TempDir(), "vibegrid")
}

// DefaultCacheDir exposes the default cache directory to the CLI.
func DefaultCacheDir() string { return defaultCacheDir() }
