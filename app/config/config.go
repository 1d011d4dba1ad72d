package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"auth-client/app/domain"
)

// Config holds all configuration for the auth client
type Config struct {
	// Client identity
	AppType  domain.AppType `env:"APP_TYPE" required:"true"`
	LogLevel string         `env:"LOG_LEVEL" default:"info"`

	// Backend
	BackendBaseURL string        `env:"BACKEND_BASE_URL" required:"true"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" default:"30s"`

	// Identity provider (Cognito user pool app client)
	CognitoRegion   string `env:"COGNITO_REGION" required:"true"`
	CognitoClientID string `env:"COGNITO_CLIENT_ID" required:"true"`

	// Credential store
	KeystoreDir        string `env:"KEYSTORE_DIR"`
	KeystorePassphrase string `env:"KEYSTORE_PASSPHRASE" required:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	config.AppType = domain.AppType(os.Getenv("APP_TYPE"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	config.BackendBaseURL = os.Getenv("BACKEND_BASE_URL")
	if config.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	timeoutStr := getEnvOrDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	config.HTTPTimeout = timeout

	config.CognitoRegion = os.Getenv("COGNITO_REGION")
	if config.CognitoRegion == "" {
		return nil, fmt.Errorf("COGNITO_REGION is required")
	}

	config.CognitoClientID = os.Getenv("COGNITO_CLIENT_ID")
	if config.CognitoClientID == "" {
		return nil, fmt.Errorf("COGNITO_CLIENT_ID is required")
	}

	config.KeystoreDir = getEnvOrDefault("KEYSTORE_DIR", defaultKeystoreDir())
	config.KeystorePassphrase = os.Getenv("KEYSTORE_PASSPHRASE")
	if config.KeystorePassphrase == "" {
		return nil, fmt.Errorf("KEYSTORE_PASSPHRASE is required")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.AppType.Validate(); err != nil {
		return err
	}

	if !isValidURL(c.BackendBaseURL) {
		return fmt.Errorf("invalid backend base URL: %s", c.BackendBaseURL)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Every network call is bounded by this timeout; a sub-second value
	// is a misconfiguration, not a tuning choice.
	if c.HTTPTimeout < time.Second {
		return fmt.Errorf("HTTP timeout must be at least 1 second, got: %v", c.HTTPTimeout)
	}

	if len(c.KeystorePassphrase) < 8 {
		return fmt.Errorf("keystore passphrase must be at least 8 characters")
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultKeystoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".auth-client"
	}
	return filepath.Join(home, ".auth-client")
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsedURL.Scheme != "" && parsedURL.Host != ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
