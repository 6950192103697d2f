package usecase

import (
	"context"
	"log/slog"
	"sort"

	"cryptowatch_backend/internal/feature/catalog/domain/entity"
)

// IsFavorite reports whether the coin id is currently a favorite.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[id]
	return ok
}

// Favorites returns the favorite coins ordered by id.
func (s *Store) Favorites() []entity.Coin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Coin, 0, len(s.favorites))
	for _, c := range s.favorites {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ToggleFavorite flips the favorite state of a known coin. Unknown ids are
// a no-op.
func (s *Store) ToggleFavorite(ctx context.Context, id string) {
	s.mu.Lock()
	coin, known := s.coins[id]
	_, fav := s.favorites[id]
	s.mu.Unlock()

	switch {
	case fav && known:
		s.RemoveFavorite(ctx, coin)
	case known:
		s.AddFavorite(ctx, coin)
	}
}

// AddFavorite inserts a stripped copy of the coin into the favorites subset
// and persists the whole subset to the gateway. The copy carries identity
// only; its price map starts empty and fills opportunistically on the next
// price sync.
func (s *Store) AddFavorite(ctx context.Context, coin entity.Coin) {
	s.mu.Lock()
	s.favorites[coin.ID] = entity.Coin{
		ID:               coin.ID,
		Name:             coin.Name,
		Symbol:           coin.Name,
		PricesByCurrency: map[string]entity.PriceSnapshot{},
	}
	pairs := entity.PairsFromMap(s.favorites)
	s.mu.Unlock()

	s.persistFavorites(ctx, pairs)
}

// RemoveFavorite deletes the coin from the favorites subset and persists
// the whole subset to the gateway.
func (s *Store) RemoveFavorite(ctx context.Context, coin entity.Coin) {
	s.mu.Lock()
	delete(s.favorites, coin.ID)
	pairs := entity.PairsFromMap(s.favorites)
	s.mu.Unlock()

	s.persistFavorites(ctx, pairs)
}

func (s *Store) persistFavorites(ctx context.Context, pairs []entity.CoinPair) {
	if err := s.kv.Set(ctx, keyFavorites, pairs); err != nil {
		slog.Warn("failed to persist favorites", "error", err)
	}
}

// ActiveCurrency returns the currently selected currency code.
func (s *Store) ActiveCurrency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currencyActive
}

// SetActiveCurrency replaces the selected currency and persists it.
// Snapshots already cached for other currencies stay where they are;
// per-currency price data is cumulative and never evicted.
func (s *Store) SetActiveCurrency(ctx context.Context, code string) {
	s.mu.Lock()
	s.currencyActive = code
	s.mu.Unlock()

	if err := s.kv.Set(ctx, keyCurrencyActive, code); err != nil {
		slog.Warn("failed to persist active currency", "error", err)
	}
}

// ActiveCategory returns the currently selected category id, empty when no
// category filter is active.
func (s *Store) ActiveCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryActive
}

// SetActiveCategory replaces the category filter. It is pure UI state and
// is not persisted.
func (s *Store) SetActiveCategory(id string) {
	s.mu.Lock()
	s.categoryActive = id
	s.mu.Unlock()
}
