// Package usecase implements the business logic for the catalog feature:
// the in-memory coin store, reference-data memoization, price-snapshot
// merging and the persisted favorites subset.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"cryptowatch_backend/internal/feature/catalog/domain/entity"
)

const (
	// DefaultCurrency is the active currency used when none was persisted.
	DefaultCurrency = "eur"
	// DefaultItemsByPage is the page-size hint sent with market queries.
	DefaultItemsByPage = 20
)

// Gateway keys. The temp_* reference caches have no TTL and are cleared
// only by external action; the crypto_* keys persist across restarts.
const (
	keyCurrencies     = "temp_currencies"
	keyCategories     = "temp_categories"
	keyCoins          = "temp_crypto"
	keyCurrencyActive = "crypto_currency"
	keyFavorites      = "crypto_favorites"
)

// KVStore abstracts the persistent key/value gateway used for reference-data
// caching and favorites persistence.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/cache).
type KVStore interface {
	// Get loads the value stored under key into dest and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
}

// CatalogClient abstracts the remote catalog service.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/externalapi).
type CatalogClient interface {
	// ListSupportedCurrencies returns the catalog's supported currency codes.
	ListSupportedCurrencies(ctx context.Context) ([]string, error)
	// ListCategories returns the catalog's category list.
	ListCategories(ctx context.Context) ([]entity.Category, error)
	// ListCoins returns the full coin catalog without price data.
	ListCoins(ctx context.Context) ([]entity.Coin, error)
	// FetchMarketSnapshots returns market data for the given ids in the
	// given currency. The ids travel as a single comma-joined list, so the
	// caller bounds their count.
	FetchMarketSnapshots(ctx context.Context, ids []string, currency string, pageSize int) ([]entity.MarketSnapshot, error)
}

// Store is the in-memory entity store: the coin map, the reference lists,
// the favorites subset and the active selection. One Store instance owns
// all of this state; nothing is process-global.
type Store struct {
	catalog CatalogClient
	kv      KVStore

	mu             sync.Mutex
	itemsByPage    int
	coins          map[string]entity.Coin
	currencies     []string
	categories     []entity.Category
	currencyActive string
	categoryActive string
	favorites      map[string]entity.Coin

	// fetchLocks serializes snapshot fetches per currency code so that
	// concurrent syncs for the same currency coalesce into one network call.
	fetchMu    sync.Mutex
	fetchLocks map[string]*sync.Mutex
}

// NewStore creates an empty Store backed by the given catalog client and
// key/value gateway.
func NewStore(catalog CatalogClient, kv KVStore) *Store {
	return &Store{
		catalog:     catalog,
		kv:          kv,
		itemsByPage: DefaultItemsByPage,
		coins:       make(map[string]entity.Coin),
		favorites:   make(map[string]entity.Coin),
		fetchLocks:  make(map[string]*sync.Mutex),

		currencyActive: DefaultCurrency,
	}
}

// Load restores the persisted selection and favorites from the gateway.
// A missing or unreadable key falls back to defaults; gateway trouble is
// logged, never fatal.
func (s *Store) Load(ctx context.Context) {
	var currency string
	if ok, err := s.kv.Get(ctx, keyCurrencyActive, &currency); err != nil {
		slog.Warn("failed to read persisted currency", "error", err)
	} else if ok && currency != "" {
		s.mu.Lock()
		s.currencyActive = currency
		s.mu.Unlock()
	}

	var pairs []entity.CoinPair
	if ok, err := s.kv.Get(ctx, keyFavorites, &pairs); err != nil {
		slog.Warn("failed to read persisted favorites", "error", err)
	} else if ok && len(pairs) > 0 {
		s.mu.Lock()
		for _, p := range pairs {
			s.favorites[p.ID] = p.Coin
		}
		s.mu.Unlock()
	}
}

// EnsureCurrencies populates the supported-currency list at most once per
// process: already-loaded state wins, then the gateway cache, then the
// network. Only a network fetch writes the gateway back.
func (s *Store) EnsureCurrencies(ctx context.Context) error {
	s.mu.Lock()
	ready := len(s.currencies) > 0
	s.mu.Unlock()
	if ready {
		return nil
	}

	var cached []string
	if ok, err := s.kv.Get(ctx, keyCurrencies, &cached); err != nil {
		slog.Warn("currency cache read failed", "error", err)
	} else if ok && len(cached) > 0 {
		s.mu.Lock()
		s.currencies = cached
		s.mu.Unlock()
		return nil
	}

	list, err := s.catalog.ListSupportedCurrencies(ctx)
	if err != nil {
		return err
	}
	if len(list) > 0 {
		s.mu.Lock()
		s.currencies = list
		s.mu.Unlock()
	}
	// An empty fetch result is written like any other; the emptiness check
	// above turns it back into a miss on the next cold start.
	if err := s.kv.Set(ctx, keyCurrencies, list); err != nil {
		slog.Warn("currency cache write failed", "error", err)
	}
	return nil
}

// EnsureCategories populates the category list the same way as
// EnsureCurrencies.
func (s *Store) EnsureCategories(ctx context.Context) error {
	s.mu.Lock()
	ready := len(s.categories) > 0
	s.mu.Unlock()
	if ready {
		return nil
	}

	var cached []entity.Category
	if ok, err := s.kv.Get(ctx, keyCategories, &cached); err != nil {
		slog.Warn("category cache read failed", "error", err)
	} else if ok && len(cached) > 0 {
		s.mu.Lock()
		s.categories = cached
		s.mu.Unlock()
		return nil
	}

	list, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(list) > 0 {
		s.mu.Lock()
		s.categories = list
		s.mu.Unlock()
	}
	if err := s.kv.Set(ctx, keyCategories, list); err != nil {
		slog.Warn("category cache write failed", "error", err)
	}
	return nil
}

// EnsureCoins populates the coin map at most once per process. Coins coming
// from either source start with a fresh empty price map; price snapshots are
// never trusted from the reference cache.
func (s *Store) EnsureCoins(ctx context.Context) error {
	s.mu.Lock()
	ready := len(s.coins) > 0
	s.mu.Unlock()
	if ready {
		return nil
	}

	var cached []entity.CoinPair
	if ok, err := s.kv.Get(ctx, keyCoins, &cached); err != nil {
		slog.Warn("coin cache read failed", "error", err)
	} else if ok && len(cached) > 0 {
		s.mu.Lock()
		for _, p := range cached {
			coin := p.Coin
			coin.PricesByCurrency = map[string]entity.PriceSnapshot{}
			s.coins[coin.ID] = coin
		}
		s.mu.Unlock()
		return nil
	}

	list, err := s.catalog.ListCoins(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	for _, coin := range list {
		coin.PricesByCurrency = map[string]entity.PriceSnapshot{}
		s.coins[coin.ID] = coin
	}
	pairs := entity.PairsFromMap(s.coins)
	s.mu.Unlock()

	if err := s.kv.Set(ctx, keyCoins, pairs); err != nil {
		slog.Warn("coin cache write failed", "error", err)
	}
	return nil
}

// Coins returns all known coins ordered by id.
func (s *Store) Coins() []entity.Coin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Coin, 0, len(s.coins))
	for _, c := range s.coins {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Coin returns the coin with the given id, if known.
func (s *Store) Coin(id string) (entity.Coin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coins[id]
	return c, ok
}

// Currencies returns the supported-currency list.
func (s *Store) Currencies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.currencies))
	copy(out, s.currencies)
	return out
}

// Categories returns the category list.
func (s *Store) Categories() []entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// SearchByName returns coins whose name or symbol matches q,
// case-insensitively.
func (s *Store) SearchByName(q string) []entity.Coin {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Coin
	for _, c := range s.coins {
		if strings.EqualFold(c.Name, q) || strings.EqualFold(c.Symbol, q) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ItemsByPage returns the page-size hint for market queries.
func (s *Store) ItemsByPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsByPage
}

// SetItemsByPage overrides the page-size hint. Non-positive values are
// ignored.
func (s *Store) SetItemsByPage(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.itemsByPage = n
	s.mu.Unlock()
}
