// Package handler provides the HTTP handlers for the catalog feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cryptowatch_backend/internal/api"
	"cryptowatch_backend/internal/feature/catalog/domain/entity"
)

// CatalogStore defines the entity-store operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CatalogStore interface {
	EnsureCurrencies(ctx context.Context) error
	EnsureCategories(ctx context.Context) error
	EnsureCoins(ctx context.Context) error
	SyncPrices(ctx context.Context, candidates []entity.Coin, currency string) error

	Coins() []entity.Coin
	Coin(id string) (entity.Coin, bool)
	Currencies() []string
	Categories() []entity.Category
	Favorites() []entity.Coin
	IsFavorite(id string) bool
	ToggleFavorite(ctx context.Context, id string)
	ActiveCurrency() string
	SetActiveCurrency(ctx context.Context, code string)
	ItemsByPage() int
}

// CatalogHandler handles the HTTP requests for the coin catalog and the
// watch list.
type CatalogHandler struct {
	store CatalogStore
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(store CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// Markets returns priced coins for the requested currency.
//
// GET /v1/markets?currency=eur&ids=bitcoin,ethereum
//
// Without ids the first page of the catalog is priced. The candidate list
// is capped at the page-size hint either way, since the snapshot query
// sends all ids in a single call.
func (h *CatalogHandler) Markets(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.store.EnsureCoins(ctx); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// Currency codes are lowercase throughout the store; normalize here so
	// ?currency=EUR does not mint a second snapshot key next to "eur".
	currency := strings.ToLower(c.DefaultQuery("currency", h.store.ActiveCurrency()))

	var candidates []entity.Coin
	if idsParam := c.Query("ids"); idsParam != "" {
		for _, id := range strings.Split(idsParam, ",") {
			if coin, ok := h.store.Coin(strings.TrimSpace(id)); ok {
				candidates = append(candidates, coin)
			}
		}
	} else {
		candidates = h.store.Coins()
	}
	if limit := h.store.ItemsByPage(); len(candidates) > limit {
		candidates = candidates[:limit]
	}

	if err := h.store.SyncPrices(ctx, candidates, currency); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.CoinResponse, 0, len(candidates))
	for _, cand := range candidates {
		coin, ok := h.store.Coin(cand.ID)
		if !ok {
			continue
		}
		out = append(out, h.toCoinResponse(coin))
	}
	c.JSON(http.StatusOK, out)
}

// Currencies returns the supported currency codes.
//
// GET /v1/currencies
func (h *CatalogHandler) Currencies(c *gin.Context) {
	if err := h.store.EnsureCurrencies(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Currencies())
}

// Categories returns the category list.
//
// GET /v1/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	if err := h.store.EnsureCategories(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	categories := h.store.Categories()
	out := make([]api.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, api.CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Favorites returns the watch list.
//
// GET /v1/favorites
func (h *CatalogHandler) Favorites(c *gin.Context) {
	favorites := h.store.Favorites()
	out := make([]api.CoinResponse, 0, len(favorites))
	for _, coin := range favorites {
		out = append(out, h.toCoinResponse(coin))
	}
	c.JSON(http.StatusOK, out)
}

// ToggleFavorite flips the favorite state of a coin.
//
// POST /v1/favorites/:id/toggle
func (h *CatalogHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Coin(id); !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "unknown coin"})
		return
	}

	h.store.ToggleFavorite(c.Request.Context(), id)

	c.JSON(http.StatusOK, api.FavoriteToggleResponse{
		ID:       id,
		Favorite: h.store.IsFavorite(id),
	})
}

// SetCurrency replaces the active currency.
//
// PUT /v1/settings/currency
func (h *CatalogHandler) SetCurrency(c *gin.Context) {
	var req api.CurrencyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "currency is required"})
		return
	}

	h.store.SetActiveCurrency(c.Request.Context(), strings.ToLower(req.Currency))
	c.JSON(http.StatusOK, gin.H{"currency": h.store.ActiveCurrency()})
}

func (h *CatalogHandler) toCoinResponse(coin entity.Coin) api.CoinResponse {
	prices := make(map[string]api.PriceSnapshotResponse, len(coin.PricesByCurrency))
	for code, p := range coin.PricesByCurrency {
		prices[code] = api.PriceSnapshotResponse{
			CurrentPrice:   p.CurrentPrice,
			MarketCap:      p.MarketCap,
			TotalVolume:    p.TotalVolume,
			PriceChange24h: p.PriceChange24h,
		}
	}
	return api.CoinResponse{
		ID:                  coin.ID,
		Name:                coin.Name,
		Symbol:              coin.Symbol,
		Image:               coin.Image,
		CalculatedSparkline: coin.CalculatedSparkline,
		OrderedSparkLabels:  coin.OrderedSparkLabels,
		PricesByCurrencies:  prices,
		Favorite:            h.store.IsFavorite(coin.ID),
	}
}
