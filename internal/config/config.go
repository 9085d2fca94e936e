package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"animalovers-backend/pkg/logger"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	KkiaPay  KkiaPayConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	// SiteURL is where the browser is redirected after the payment
	// callback (thank-you / error pages live on the public site).
	SiteURL string
	// AllowedOrigins is empty in development, which opens CORS up
	// entirely.
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	SSLMode  string
	MaxConns int
	MinConns int

	// Two privilege tiers. The public role is constrained by row-level
	// policies, the admin role is not. Admin routes must never run on
	// the public pool.
	PublicUser     string
	PublicPassword string
	AdminUser      string
	AdminPassword  string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type KkiaPayConfig struct {
	PublicKey  string
	PrivateKey string
	Secret     string
	APIURL     string
	Sandbox    bool
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "AnimaLovers API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			SiteURL:        getEnv("SITE_URL", "http://localhost:3000"),
			AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "")),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			Database:       getEnv("DB_NAME", "animalovers"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getEnvInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvInt("DB_MIN_CONNS", 5),
			PublicUser:     getEnv("DB_PUBLIC_USER", "animalovers_public"),
			PublicPassword: getEnv("DB_PUBLIC_PASSWORD", ""),
			AdminUser:      getEnv("DB_ADMIN_USER", "animalovers_admin"),
			AdminPassword:  getEnv("DB_ADMIN_PASSWORD", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-me-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		KkiaPay: KkiaPayConfig{
			PublicKey:  getEnv("KKIAPAY_PUBLIC_KEY", ""),
			PrivateKey: getEnv("KKIAPAY_PRIVATE_KEY", ""),
			Secret:     getEnv("KKIAPAY_SECRET", ""),
			APIURL:     getEnv("KKIAPAY_API_URL", "https://api.kkiapay.me"),
			Sandbox:    getEnv("KKIAPAY_SANDBOX", "true") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate fails fast on configuration that would otherwise surface as
// opaque 500s at request time.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "change-me-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.PublicPassword == "" {
			return fmt.Errorf("DB_PUBLIC_PASSWORD must be set in production")
		}
		if c.Database.AdminPassword == "" {
			return fmt.Errorf("DB_ADMIN_PASSWORD must be set in production")
		}
		if c.KkiaPay.PrivateKey == "" {
			logger.Warn("kkiapay private key not set, payment verification will not work", nil)
		}
	}

	return nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
