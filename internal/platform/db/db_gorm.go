// Package db bootstraps the GORM/Postgres connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "classifieds_backend/internal/feature/auth/adapters"
	authentity "classifieds_backend/internal/feature/auth/domain/entity"
	listingentity "classifieds_backend/internal/feature/listings/domain/entity"
	"classifieds_backend/internal/platform/config"
)

// OpenDB connects to Postgres, retrying for up to a minute before giving up.
// The process cannot serve anything without the database, so a connection
// failure after the retry window is fatal.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
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
		// users, user_uploads and the session fallback table
		if err := db.AutoMigrate(
			&authentity.User{},
			&listingentity.Listing{},
			&authadapters.SessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
