// Package di selects between alternative implementations at startup.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "classifieds_backend/internal/feature/auth/adapters"
	"classifieds_backend/internal/feature/auth/usecase"
	"classifieds_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns the Redis-backed implementation.
// Otherwise, it falls back to Postgres so the site stays servable.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionPostgres(db)
}
