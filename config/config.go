package config

import (
	"os"
	"strconv"
	"time"
)

// Storage backend selectors.
const (
	BackendDatabase = "database"
	BackendMemory   = "memory"
)

// Config holds all environment-sourced settings. Every field has a default
// suitable for local development.
type Config struct {
	Env  string
	Port int

	StorageBackend string
	MongoURI       string
	MongoDatabase  string

	RedisHost string
	RedisPort int
	CacheTTL  time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	RequestTimeout time.Duration

	PostmarkToken string
	EmailSender   string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnvInt("PORT", 3000),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendDatabase),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017/be-example"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "be-example"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnvInt("REDIS_PORT", 6379),
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL", 3600)) * time.Second,
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:      getEnvDuration("JWT_EXPIRY", 168*time.Hour),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT", 30000)) * time.Millisecond,
		PostmarkToken:  getEnv("POSTMARK_API_TOKEN", ""),
		EmailSender:    getEnv("EMAIL_SENDER", ""),
	}
}

// UseMemoryStorage reports whether the in-process backend is selected.
func (c Config) UseMemoryStorage() bool {
	return c.StorageBackend == BackendMemory
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
