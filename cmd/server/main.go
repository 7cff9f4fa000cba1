package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"classifieds_backend/internal/app/di"
	"classifieds_backend/internal/app/router"
	authadapters "classifieds_backend/internal/feature/auth/adapters"
	authhandler "classifieds_backend/internal/feature/auth/transport/handler"
	authusecase "classifieds_backend/internal/feature/auth/usecase"
	listingsadapters "classifieds_backend/internal/feature/listings/adapters"
	listingshandler "classifieds_backend/internal/feature/listings/transport/handler"
	listingsusecase "classifieds_backend/internal/feature/listings/usecase"
	"classifieds_backend/internal/platform/config"
	infradb "classifieds_backend/internal/platform/db"
	infraredis "classifieds_backend/internal/platform/redis"
	"classifieds_backend/internal/platform/storage"
)

func main() {
	cfg := config.Load()

	// db (fatal when unreachable, nothing works without it)
	db := infradb.OpenDB(cfg)

	// Redis; sessions fall back to Postgres when unavailable
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to Postgres.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserPostgres(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	listingRepo := listingsadapters.NewListingPostgres(db)
	imageStore := storage.NewLocalStore(cfg.UploadRoot)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, cfg.SessionTTL)
	listingsUC := listingsusecase.NewListingsUsecase(listingRepo, imageStore)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	listingsH := listingshandler.NewListingsHandler(listingsUC)

	r := router.NewRouter(authH, listingsH, authUC, cfg.UploadRoot)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
