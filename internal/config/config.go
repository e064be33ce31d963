package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	Admin  AdminConfig
	MinIO  MinIOConfig
	Upload UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// AdminConfig carries the single-operator credentials and session settings.
// PasswordHash (bcrypt) is preferred; plaintext Password is a development fallback.
type AdminConfig struct {
	Username      string
	Password      string
	PasswordHash  string
	TokenTTLHours int
	SessionStore  string // memory, redis
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type UploadConfig struct {
	MaxFileSize int64 // bytes
	MaxFiles    int   // per multi-upload request
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "TEX AREA Blog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "5000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			Username:      getEnv("ADMIN_USERNAME", "admin"),
			Password:      getEnv("ADMIN_PASSWORD", "admin123"),
			PasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
			TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
			SessionStore:  getEnv("SESSION_STORE", "memory"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "texarea"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Upload: UploadConfig{
			MaxFileSize: int64(getEnvInt("MAX_FILE_SIZE", 10*1024*1024)),
			MaxFiles:    getEnvInt("MAX_UPLOAD_FILES", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Admin.PasswordHash == "" && c.Admin.Password == "admin123" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
		if c.Admin.SessionStore != "redis" {
			return fmt.Errorf("SESSION_STORE must be redis in production")
		}
	}

	if c.Admin.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}

	switch c.Admin.SessionStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid SESSION_STORE: %s", c.Admin.SessionStore)
	}

	return nil
}

// Helper functions
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
