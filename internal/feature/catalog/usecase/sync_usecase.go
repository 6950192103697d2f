package usecase

import (
	"context"
	"sync"

	"cryptowatch_backend/internal/feature/catalog/domain/entity"
)

// SyncPrices fetches market snapshots for the candidates that do not yet
// carry a snapshot in the given currency and merges the results into the
// store. Already-priced candidates never trigger a network call.
//
// Fetches are serialized per currency: a caller that loses the race
// re-checks after acquiring the lock and finds the winner's snapshots
// already merged, so overlapping candidate sets cost one request, not two.
func (s *Store) SyncPrices(ctx context.Context, candidates []entity.Coin, currency string) error {
	ids := s.missingPriceIDs(candidates, currency)
	if len(ids) == 0 {
		return nil
	}

	lock := s.fetchLock(currency)
	lock.Lock()
	defer lock.Unlock()

	ids = s.missingPriceIDs(candidates, currency)
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	pageSize := s.itemsByPage
	s.mu.Unlock()

	snapshots, err := s.catalog.FetchMarketSnapshots(ctx, ids, currency, pageSize)
	if err != nil {
		return err
	}

	s.applySnapshots(snapshots, currency)
	return nil
}

// missingPriceIDs filters the candidates to those whose live entity lacks a
// snapshot for the currency. The live entity wins over the candidate copy;
// ids the store has never seen pass through and are dropped at merge time.
func (s *Store) missingPriceIDs(candidates []entity.Coin, currency string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for _, cand := range candidates {
		coin, ok := s.coins[cand.ID]
		if !ok {
			coin = cand
		}
		if _, priced := coin.PricesByCurrency[currency]; !priced {
			ids = append(ids, cand.ID)
		}
	}
	return ids
}

// applySnapshots merges market snapshots into the coin map. Each update
// replaces the entity wholesale: image, raw history, derived sparkline and
// labels, plus the one currency snapshot written atomically. Snapshots of
// other currencies are carried over untouched, and favorites pick up the
// updated entity so they gain price data.
func (s *Store) applySnapshots(snapshots []entity.MarketSnapshot, currency string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snap := range snapshots {
		coin, ok := s.coins[snap.ID]
		if !ok {
			// A snapshot never creates an entity.
			continue
		}

		updated := coin
		updated.Image = snap.Image
		kept := Downsample(snap.SparklineIn7d)
		updated.CalculatedSparkline = kept
		updated.SparklineIn7d = snap.SparklineIn7d
		updated.OrderedSparkLabels = SparkLabels(kept)

		prices := make(map[string]entity.PriceSnapshot, len(coin.PricesByCurrency)+1)
		for code, p := range coin.PricesByCurrency {
			prices[code] = p
		}
		prices[currency] = entity.PriceSnapshot{
			CurrentPrice:   snap.CurrentPrice,
			MarketCap:      snap.MarketCap,
			TotalVolume:    snap.TotalVolume,
			PriceChange24h: snap.PriceChange24h,
		}
		updated.PricesByCurrency = prices

		s.coins[snap.ID] = updated
		if _, fav := s.favorites[snap.ID]; fav {
			s.favorites[snap.ID] = updated
		}
	}
}

// fetchLock returns the snapshot-fetch lock for a currency code.
func (s *Store) fetchLock(currency string) *sync.Mutex {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()
	lock, ok := s.fetchLocks[currency]
	if !ok {
		lock = &sync.Mutex{}
		s.fetchLocks[currency] = lock
	}
	return lock
}
