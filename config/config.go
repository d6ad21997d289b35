// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultAPIURL   = "https://api.anthropic.com/v1/messages"
	defaultModel    = "claude-3-5-sonnet-latest"
	defaultDataFile = "users.json"
	defaultPort     = "8080"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Anthropic API configuration
	AnthropicAPIKey string
	AnthropicAPIURL string
	AnthropicModel  string

	// Path of the JSON file holding all user records
	DataFile string
}

// LoadConfig creates a Config from environment variables. The
// Anthropic API key is required: without it the coaching pipeline has
// no degraded mode, so startup fails instead.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("ANTHROPIC_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY or ANTHROPIC_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	cfg := &Config{
		ServerHost:      os.Getenv("SERVER_HOST"),
		ServerPort:      envOrDefault("SERVER_PORT", defaultPort),
		AnthropicAPIKey: apiKey,
		AnthropicAPIURL: envOrDefault("ANTHROPIC_API_URL", defaultAPIURL),
		AnthropicModel:  envOrDefault("ANTHROPIC_MODEL", defaultModel),
		DataFile:        envOrDefault("DATA_FILE", defaultDataFile),
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
