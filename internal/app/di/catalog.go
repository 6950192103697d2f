// Package di provides dependency injection factories for creating application components.
package di

import (
	"cryptowatch_backend/internal/platform/externalapi/coingecko"
	infrahttp "cryptowatch_backend/internal/platform/http"
)

// NewCatalogClient creates a fully configured CoinGecko client with HTTP client.
func NewCatalogClient() *coingecko.Client {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewClient(cfg, httpClient)
}
