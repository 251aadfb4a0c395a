package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Every external
// dependency is optional: with nothing configured the server still answers
// from the bundled dataset.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string
	GinMode    string

	// Database configuration. Empty DBHost disables the store cache and
	// custom recipes.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration. Empty RedisHost disables the inventory and the
	// rate limiter.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Upstream recipe APIs
	CocktailDBBaseURL string
	NinjaBaseURL      string
	NinjaAPIKey       string
	ClientTimeout     time.Duration

	// Bundled dataset: a local file, optionally refreshed from S3
	DatasetPath     string
	DatasetS3Bucket string
	DatasetS3Key    string
	AWSRegion       string

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. Missing values fall back to sane defaults; nothing
// here is required.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("GIN_MODE", "debug")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "barstock")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("COCKTAILDB_BASE_URL", "https://www.thecocktaildb.com/api/json/v1/1")
	v.SetDefault("NINJA_BASE_URL", "https://api.api-ninjas.com/v1")
	v.SetDefault("CLIENT_TIMEOUT_SECONDS", 4)

	v.SetDefault("DATASET_PATH", "data/cocktails.json")
	v.SetDefault("DATASET_S3_KEY", "cocktails.json")
	v.SetDefault("AWS_REGION", "ap-northeast-2")

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	timeout := v.GetInt("CLIENT_TIMEOUT_SECONDS")
	if timeout <= 0 {
		return nil, fmt.Errorf("CLIENT_TIMEOUT_SECONDS must be positive, got %d", timeout)
	}

	cfg := &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		ServerHost: v.GetString("SERVER_HOST"),
		GinMode:    v.GetString("GIN_MODE"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSL_MODE"),

		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		CocktailDBBaseURL: v.GetString("COCKTAILDB_BASE_URL"),
		NinjaBaseURL:      v.GetString("NINJA_BASE_URL"),
		NinjaAPIKey:       v.GetString("NINJA_API_KEY"),
		ClientTimeout:     time.Duration(timeout) * time.Second,

		DatasetPath:     v.GetString("DATASET_PATH"),
		DatasetS3Bucket: v.GetString("DATASET_S3_BUCKET"),
		DatasetS3Key:    v.GetString("DATASET_S3_KEY"),
		AWSRegion:       v.GetString("AWS_REGION"),

		LogLevel: v.GetString("LOG_LEVEL"),
	}

	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

// DatabaseDSN builds the postgres connection string, or "" when no database
// is configured.
func (c *Config) DatabaseDSN() string {
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisAddr returns the redis address, or "" when redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
