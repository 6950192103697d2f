// Package entity defines the domain models for the catalog feature.
package entity

// PriceSnapshot is one currency's market data for a coin.
// A snapshot is always written as a whole, never field by field.
type PriceSnapshot struct {
	CurrentPrice   float64 `json:"currentPrice"`
	MarketCap      float64 `json:"marketCap"`
	TotalVolume    float64 `json:"totalVolume"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// Coin merges the static catalog metadata of an asset with its
// per-currency market snapshots.
type Coin struct {
	// ID is the stable, service-assigned identifier (e.g., "bitcoin").
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Image  string `json:"image,omitempty"`

	// SparklineIn7d is the raw 7-day hourly price history, oldest first.
	SparklineIn7d []float64 `json:"sparklineIn7d,omitempty"`

	// CalculatedSparkline is the downsampled trend series.
	// nil means no usable sparkline could be derived.
	CalculatedSparkline []float64 `json:"calculatedSparkline,omitempty"`

	// OrderedSparkLabels holds one day-offset label per sparkline sample.
	OrderedSparkLabels []string `json:"orderedSparkLabels,omitempty"`

	// PricesByCurrency maps a lowercase currency code to its snapshot.
	// The map is always present, possibly empty.
	PricesByCurrency map[string]PriceSnapshot `json:"pricesByCurrencies"`
}

// Category is one entry of the catalog's category list.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarketSnapshot is one entry of a market-data response: the per-currency
// figures plus the 7-day price history for a single coin.
type MarketSnapshot struct {
	ID             string
	Image          string
	CurrentPrice   float64
	MarketCap      float64
	TotalVolume    float64
	PriceChange24h float64
	SparklineIn7d  []float64
}
