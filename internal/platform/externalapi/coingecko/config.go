// Package coingecko provides a client for the CoinGecko catalog API.
package coingecko

import (
	"os"
	"time"
)

// DefaultBaseURL is the public CoinGecko v3 endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Config holds configuration for the CoinGecko API client.
type Config struct {
	APIKey  string        // Demo API key sent with market queries
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("COINGECKO_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("COINGECKO_API_KEY"),
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}
