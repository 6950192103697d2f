// Package db opens the application database via gorm.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "cryptowatch_backend/internal/feature/auth/domain/entity"
	"cryptowatch_backend/internal/platform/cache"
)

// OpenDB opens the configured database and retries until it is reachable.
// DB_DRIVER selects the backend: "postgres" for a server deployment,
// anything else falls back to a local SQLite file (DB_PATH, default
// cryptowatch.db) suited to the single-user case.
func OpenDB() *gorm.DB {
	var dial gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		dial = postgres.Open(dsn)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "cryptowatch.db"
		}
		dial = sqlite.Open(path)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&cache.KVEntry{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
