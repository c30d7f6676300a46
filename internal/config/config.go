// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	SerpAPI   SerpAPIConfig
	ImageHost ImageHostConfig
	Lemon     LemonConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type SerpAPIConfig struct {
	Key     string
	BaseURL string
}

type ImageHostConfig struct {
	UploadURL string
}

type LemonConfig struct {
	WebhookSecret   string
	StoreSubdomain  string
	CheckoutDomain  string
	AppURL          string
	VariantSmallID  string
	VariantMediumID string
	VariantLargeID  string
}

func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
			Host: getEnvOrDefault("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getEnvOrDefault("MONGODB_DATABASE", "snaplens"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
		},
		SerpAPI: SerpAPIConfig{
			Key:     os.Getenv("SERPAPI_KEY"),
			BaseURL: getEnvOrDefault("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),
		},
		ImageHost: ImageHostConfig{
			UploadURL: getEnvOrDefault("IMAGE_HOST_URL", "https://catbox.moe/user/api.php"),
		},
		Lemon: LemonConfig{
			WebhookSecret:   os.Getenv("LEMON_WEBHOOK_SECRET"),
			StoreSubdomain:  getEnvOrDefault("LEMON_STORE_SUBDOMAIN", "store"),
			CheckoutDomain:  os.Getenv("LEMON_CHECKOUT_DOMAIN"),
			AppURL:          getEnvOrDefault("APP_URL", "http://localhost:3000"),
			VariantSmallID:  getEnvOrDefault("LEMON_VARIANT_SMALL_ID", "small"),
			VariantMediumID: getEnvOrDefault("LEMON_VARIANT_MEDIUM_ID", "medium"),
			VariantLargeID:  getEnvOrDefault("LEMON_VARIANT_LARGE_ID", "large"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
