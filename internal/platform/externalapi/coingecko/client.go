package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cryptowatch_backend/internal/feature/catalog/domain/entity"
	"cryptowatch_backend/internal/feature/catalog/usecase"
	"cryptowatch_backend/internal/platform/externalapi/coingecko/dto"
)

// Client はCoinGecko外部APIからカタログデータを取得するCatalogClient実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがCatalogClientを実装していることをコンパイル時に検証します。
var _ usecase.CatalogClient = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// ListSupportedCurrencies returns the currency codes the catalog can quote
// prices in.
func (c *Client) ListSupportedCurrencies(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/simple/supported_vs_currencies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCategories returns the catalog's category list with the service's
// category_id renamed to the domain id.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var body []dto.CategoryEntry
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/coins/categories/list", &body); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(body))
	for _, e := range body {
		categories = append(categories, entity.Category{ID: e.CategoryID, Name: e.Name})
	}
	return categories, nil
}

// ListCoins returns the full coin catalog. Each coin starts with an empty
// price map.
func (c *Client) ListCoins(ctx context.Context) ([]entity.Coin, error) {
	var body []dto.CoinEntry
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/coins/list", &body); err != nil {
		return nil, err
	}

	coins := make([]entity.Coin, 0, len(body))
	for _, e := range body {
		coins = append(coins, entity.Coin{
			ID:               e.ID,
			Name:             e.Name,
			Symbol:           e.Symbol,
			PricesByCurrency: map[string]entity.PriceSnapshot{},
		})
	}
	return coins, nil
}

// FetchMarketSnapshots queries /coins/markets for the given ids in the
// given currency, with the 7-day sparkline always requested. The ids are
// sent as one comma-joined list; no chunking happens here, so the caller
// bounds their count.
func (c *Client) FetchMarketSnapshots(ctx context.Context, ids []string, currency string, pageSize int) ([]entity.MarketSnapshot, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currency", currency)
	q.Set("per_page", strconv.Itoa(pageSize))
	q.Set("include_24h_vol", "true")
	q.Set("include_24hr_change", "true")
	q.Set("include_last_updated_at", "true")
	q.Set("sparkline", "true")
	q.Set("x_cg_demo_api_key", c.cfg.APIKey)

	u := fmt.Sprintf("%s/coins/markets?%s", c.cfg.BaseURL, q.Encode())

	var body []dto.MarketEntry
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	snapshots := make([]entity.MarketSnapshot, 0, len(body))
	for _, e := range body {
		snapshots = append(snapshots, entity.MarketSnapshot{
			ID:             e.ID,
			Image:          e.Image,
			CurrentPrice:   e.CurrentPrice,
			MarketCap:      e.MarketCap,
			TotalVolume:    e.TotalVolume,
			PriceChange24h: e.PriceChange24h,
			SparklineIn7d:  e.SparklineIn7d.Price,
		})
	}
	return snapshots, nil
}

// getJSON はGETリクエストを実行し、JSONレスポンスをoutにデコードします。
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("coingecko http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
