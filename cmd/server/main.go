package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"cryptowatch_backend/internal/app/di"
	"cryptowatch_backend/internal/app/router"
	authadapters "cryptowatch_backend/internal/feature/auth/adapters"
	authhandler "cryptowatch_backend/internal/feature/auth/transport/handler"
	authusecase "cryptowatch_backend/internal/feature/auth/usecase"
	cataloghandler "cryptowatch_backend/internal/feature/catalog/transport/handler"
	catalogusecase "cryptowatch_backend/internal/feature/catalog/usecase"
	"cryptowatch_backend/internal/feature/logomatch/adapters/gemini"
	"cryptowatch_backend/internal/feature/logomatch/adapters/vision"
	logomatchhandler "cryptowatch_backend/internal/feature/logomatch/transport/handler"
	logomatchusecase "cryptowatch_backend/internal/feature/logomatch/usecase"
	infradb "cryptowatch_backend/internal/platform/db"
	jwtmw "cryptowatch_backend/internal/platform/jwt"
	infraredis "cryptowatch_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to the database cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// カタログストア
	kv := di.NewKVStore(rdb, db)
	store := catalogusecase.NewStore(di.NewCatalogClient(), kv)
	// 前回保存した状態を復元（失敗してもデフォルトで起動）
	store.Load(ctx)

	// 認証
	userRepo := authadapters.NewUserRepository(db)
	tokenGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)

	// ロゴ照合
	logoDetector, err := vision.NewVisionLogoDetector(ctx)
	if err != nil {
		log.Fatal("failed to create vision client:", err)
	}
	defer func() {
		if err := logoDetector.Close(); err != nil {
			log.Println("[ERROR] Failed to close vision client:", err)
		}
	}()
	analyzer, err := gemini.NewGeminiAnalyzer(ctx)
	if err != nil {
		log.Fatal("failed to create gemini client:", err)
	}
	logoUC := logomatchusecase.NewLogoMatchUsecase(logoDetector, analyzer, store)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	catalogH := cataloghandler.NewCatalogHandler(store)
	logoH := logomatchhandler.NewLogoMatchHandler(logoUC)

	// ルータ生成
	router := router.NewRouter(authH, catalogH, logoH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
