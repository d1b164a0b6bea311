package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ThemeStorageFile   = "file"
	ThemeStorageMemory = "memory"
	ThemeStorageRedis  = "redis"
	ThemeStorageMongo  = "mongo"
)

// Config holds the process settings. A zero Seed seeds the mock content
// from the clock; an empty NatsURL disables event publishing.
type Config struct {
	Port          string
	LogLevel      string
	CurrentUserID string
	SeedUsers     int
	SeedPosts     int
	Seed          int64
	ThemeStorage  string
	ThemeFile     string
	RedisAddr     string
	RedisPrefix   string
	MongoURI      string
	MongoDatabase string
	NatsURL       string
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	c := Config{
		Port:          getEnv("PORT", "8090"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CurrentUserID: getEnv("CURRENT_USER_ID", "bruce-wayne-1"),
		SeedUsers:     getEnvAsInt("SEED_USERS", 15),
		SeedPosts:     getEnvAsInt("SEED_POSTS", 20),
		Seed:          getEnvAsInt64("SEED", 0),
		ThemeStorage:  getEnv("THEME_STORAGE", ThemeStorageFile),
		ThemeFile:     getEnv("THEME_FILE", "./theme.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:   getEnv("REDIS_PREFIX", "comicrealm:"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "comicrealm"),
		NatsURL:       getEnv("NATS_URL", ""),
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.ThemeStorage {
	case ThemeStorageFile, ThemeStorageMemory, ThemeStorageRedis, ThemeStorageMongo:
	default:
		return fmt.Errorf("unknown theme storage %q", c.ThemeStorage)
	}
	if c.SeedUsers < 1 {
		return fmt.Errorf("SEED_USERS must be at least 1, got %d", c.SeedUsers)
	}
	if c.SeedPosts < 0 {
		return fmt.Errorf("SEED_POSTS cannot be negative, got %d", c.SeedPosts)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultVal
}
