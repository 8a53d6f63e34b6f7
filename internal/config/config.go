package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, sourced from the environment
type Config struct {
	Env  string
	Port string

	// Postgres DSN for the hosted database
	DatabaseURL string

	// Admin credentials. May legitimately be absent; the auth layer
	// reports MissingServerConfiguration when they are.
	AdminUsername string
	AdminPassword string

	JWTSecret string

	// Public site base URL, used by the sitemap
	SiteURL string

	CORSAllowOrigins string

	Redis RedisConfig

	// DotEnvFiles lists the dotenv files applied during Load
	DotEnvFiles []string
}

// RedisConfig optional cache settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Load applies .env files and builds a Config from the resulting
// environment
func Load() *Config {
	dotenvFiles := loadDotEnv()

	return &Config{
		DotEnvFiles: dotenvFiles,
		Env:              getEnv("APP_ENV", "local"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-this"),
		SiteURL:          getEnv("SITE_URL", "https://jaredsteven.com"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "local" || c.Env == "dev" || c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
