// warmup はカタログの参照データと価格キャッシュを事前に温めるバッチです。
// サーバー起動前や定期バッチとして実行することを想定しています。
package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"cryptowatch_backend/internal/app/di"
	catalogusecase "cryptowatch_backend/internal/feature/catalog/usecase"
	infradb "cryptowatch_backend/internal/platform/db"
	infraredis "cryptowatch_backend/internal/platform/redis"
	"cryptowatch_backend/internal/shared/ratelimiter"
)

func main() {
	db := infradb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to the database cache.")
		rdb = nil
	} else {
		rdb = tmp
	}

	kv := di.NewKVStore(rdb, db)
	store := catalogusecase.NewStore(di.NewCatalogClient(), kv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store.Load(ctx)

	if err := store.EnsureCurrencies(ctx); err != nil {
		log.Fatal("failed to load currencies:", err)
	}
	if err := store.EnsureCategories(ctx); err != nil {
		log.Fatal("failed to load categories:", err)
	}
	if err := store.EnsureCoins(ctx); err != nil {
		log.Fatal("failed to load coins:", err)
	}

	// 価格はページ単位で取得し、APIのレートリミットを考慮して待機を挟む
	rl := ratelimiter.NewRateLimiter(10, time.Minute)
	coins := store.Coins()
	pageSize := store.ItemsByPage()
	currency := store.ActiveCurrency()

	for start := 0; start < len(coins); start += pageSize {
		end := start + pageSize
		if end > len(coins) {
			end = len(coins)
		}
		rl.WaitIfNeeded()
		if err := store.SyncPrices(ctx, coins[start:end], currency); err != nil {
			log.Fatal("failed to sync prices:", err)
		}
	}

	log.Println("warmup ok")
}
