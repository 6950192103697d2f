// Package dto defines data transfer objects for CoinGecko API responses.
package dto

// MarketEntry represents one element of the /coins/markets response.
type MarketEntry struct {
	ID             string  `json:"id"`
	Image          string  `json:"image"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	TotalVolume    float64 `json:"total_volume"`
	PriceChange24h float64 `json:"price_change_24h"`
	SparklineIn7d  struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

// CategoryEntry represents one element of the /coins/categories/list
// response. The service calls the identifier category_id; the domain
// model renames it to id on ingestion.
type CategoryEntry struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// CoinEntry represents one element of the /coins/list response.
type CoinEntry struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
