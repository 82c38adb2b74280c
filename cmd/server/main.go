package main

import (
	"context"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/cache"
	"github.com/jhony29a/bliss/internal/config"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/logger"
	"github.com/jhony29a/bliss/internal/server"
	"github.com/jhony29a/bliss/pkg/auth"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log)
	jwtMgr := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	router := server.NewRouter(appCtx, cfg, jwtMgr)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := router.Run(addr); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}
