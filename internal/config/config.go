package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
	StoreBackendMongo  = "mongo"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        string
	StoreBackend    string
	RedisAddr       string
	RedisPassword   string
	ReviewsKey      string
	MongoDBURI      string
	MongoDBPassword string
	CatalogPath     string
	SeedURL         string
	SeedPath        string
	ReviewsPerPage  int
	AllowedOrigin   string
}

func LoadConfig() (*Config, error) {
	perPage, err := strconv.Atoi(getEnvWithDefault("REVIEWS_PER_PAGE", "5"))
	if err != nil || perPage <= 0 {
		return nil, fmt.Errorf("REVIEWS_PER_PAGE must be a positive integer")
	}

	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		StoreBackend:    getEnvWithDefault("STORE_BACKEND", StoreBackendMemory),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ReviewsKey:      getEnvWithDefault("REVIEWS_KEY", "reviews"),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		CatalogPath:     getEnvWithDefault("CATALOG_PATH", "data/products.json"),
		SeedURL:         os.Getenv("SEED_URL"),
		SeedPath:        getEnvWithDefault("SEED_PATH", "data/reviews.json"),
		ReviewsPerPage:  perPage,
		AllowedOrigin:   getEnvWithDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	// Validate backend-specific required fields
	switch cfg.StoreBackend {
	case StoreBackendMemory:
	case StoreBackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when STORE_BACKEND=redis")
		}
	case StoreBackendMongo:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required when STORE_BACKEND=mongo")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND: %s (expected memory, redis, mongo)", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
