// Package config loads the server configuration from the environment.
package config

// Environment variable keys.
const (
	EnvAddr            = "VIBEGRID_ADDR"
	EnvLogLevel        = "VIBEGRID_LOG_LEVEL"
	EnvShutdownTimeout = "VIBEGRID_SHUTDOWN_TIMEOUT"
	EnvMaxBestCount    = "VIBEGRID_MAX_BEST_COUNT"

	EnvCache       = "VIBEGRID_CACHE"
	EnvCacheDir    = "VIBEGRID_CACHE_DIR"
	EnvCacheTTL    = "VIBEGRID_CACHE_TTL"
	EnvCachePrefix = "VIBEGRID_CACHE_PREFIX"
	EnvRedisURL    = "VIBEGRID_REDIS_URL"
	EnvMongoURI    = "VIBEGRID_MONGO_URI"
	EnvMongoDB     = "VIBEGRID_MONGO_DB"
)
