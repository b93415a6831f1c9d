// Command catalogsvc runs the course catalog service. MongoDB is required at
// startup; Elasticsearch and Redis are optional. When either is down the
// service starts anyway and the affected paths degrade (searches serve
// fallback rows, the cache always misses).
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/coursecompass/course-discovery/internal/api"
	"github.com/coursecompass/course-discovery/internal/core/ports"
	"github.com/coursecompass/course-discovery/internal/core/service"
	"github.com/coursecompass/course-discovery/internal/infrastructure/config"
	mongodb "github.com/coursecompass/course-discovery/internal/infrastructure/db/mongo"
	redisdb "github.com/coursecompass/course-discovery/internal/infrastructure/db/redis"
	"github.com/coursecompass/course-discovery/internal/infrastructure/search"
	"github.com/coursecompass/course-discovery/pkg/logger"
)

const defaultPort = "4002"

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	port := cfg.Port
	if port == "" {
		port = defaultPort
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongodb.Disconnect(ctx, client); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// Optional backends: log and continue without them.
	var index ports.SearchIndex
	esClient, err := search.Connect(ctx, search.Config{URL: cfg.Elasticsearch.URL})
	if err != nil {
		log.Warn().Err(err).Msg("elasticsearch unavailable, searches will serve fallback results")
	} else {
		index = esClient
	}

	var cache ports.Cache
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, responses will not be cached")
		rdb = nil
	} else {
		cache = redisdb.NewCache(rdb)
	}

	catalog := service.NewCatalogService(mongodb.NewCourseRepository(db), index, cache, log)

	e := api.NewCatalogRouter(api.CatalogRouterConfig{
		Catalog:            catalog,
		DB:                 db,
		Redis:              rdb,
		SearchUp:           index != nil,
		CORSOrigin:         cfg.CORSOrigin,
		IncludeErrorDetail: cfg.IsDevelopment(),
		Logger:             log,
	})

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("catalog service stopped")
		}
	}()
	log.Info().
		Str("port", port).
		Str("env", cfg.Env).
		Bool("search", index != nil).
		Bool("cache", cache != nil).
		Msg("catalog service running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
