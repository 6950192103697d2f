// Package api defines the request and response shapes of the HTTP surface.
package api

// ErrorResponse is the generic error envelope returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed JWT returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// PriceSnapshotResponse is one currency's market data for a coin.
type PriceSnapshotResponse struct {
	CurrentPrice   float64 `json:"currentPrice"`
	MarketCap      float64 `json:"marketCap"`
	TotalVolume    float64 `json:"totalVolume"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// CoinResponse is the API form of a coin entity.
type CoinResponse struct {
	ID                  string                           `json:"id"`
	Name                string                           `json:"name"`
	Symbol              string                           `json:"symbol"`
	Image               string                           `json:"image,omitempty"`
	CalculatedSparkline []float64                        `json:"calculatedSparkline,omitempty"`
	OrderedSparkLabels  []string                         `json:"orderedSparkLabels,omitempty"`
	PricesByCurrencies  map[string]PriceSnapshotResponse `json:"pricesByCurrencies"`
	Favorite            bool                             `json:"favorite"`
}

// CategoryResponse is one entry of the category list.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CurrencyUpdateRequest is the request body for PUT /v1/settings/currency.
type CurrencyUpdateRequest struct {
	Currency string `json:"currency" binding:"required"`
}

// FavoriteToggleResponse reports the favorite state after a toggle.
type FavoriteToggleResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// CoinMatchResponse is one catalog match for a detected logo.
type CoinMatchResponse struct {
	CoinID     string  `json:"coinId"`
	Name       string  `json:"name"`
	Symbol     string  `json:"symbol"`
	Detected   string  `json:"detected"`
	Confidence float32 `json:"confidence"`
}

// ProjectBriefRequest is the request body for POST /v1/logo/brief.
type ProjectBriefRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProjectBriefResponse carries the generated project brief.
type ProjectBriefResponse struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}
