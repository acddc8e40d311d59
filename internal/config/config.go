package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig

	// Environment is "development" or "production". Error responses include
	// stack details only in development.
	Environment string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string

	// Bounded retry on the initial connection. After ConnectAttempts
	// failures the process exits.
	ConnectAttempts uint64
	ConnectDelay    time.Duration
}

// JWTConfig holds token signing configuration. Secret is required at
// startup; the process fails fast without it.
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	expiresIn, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}

	attempts, err := strconv.ParseUint(getEnv("DB_CONNECT_ATTEMPTS", "5"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_ATTEMPTS: %w", err)
	}

	delay, err := time.ParseDuration(getEnv("DB_CONNECT_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_DELAY: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path:            getEnv("DB_PATH", "./data/backoffice.db"),
			ConnectAttempts: attempts,
			ConnectDelay:    delay,
		},
		JWT: JWTConfig{
			Secret:    secret,
			ExpiresIn: expiresIn,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
