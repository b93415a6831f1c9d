// Command authsvc runs the authentication service: admin registration, login
// and bearer token verification.
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
	"github.com/coursecompass/course-discovery/internal/core/service"
	"github.com/coursecompass/course-discovery/internal/infrastructure/config"
	mongodb "github.com/coursecompass/course-discovery/internal/infrastructure/db/mongo"
	"github.com/coursecompass/course-discovery/pkg/logger"
)

const defaultPort = "4000"

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		// Only reachable in development; Validate rejects this elsewhere.
		jwtSecret = "development-only-secret"
		log.Warn().Msg("JWT_SECRET not set, using a throwaway development secret")
	}
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

	repo := mongodb.NewAdminRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	e := api.NewAuthRouter(api.AuthRouterConfig{
		Auth:               service.NewAuthService(repo, jwtSecret, cfg.JWT.Expiry),
		JWTSecret:          jwtSecret,
		CORSOrigin:         cfg.CORSOrigin,
		IncludeErrorDetail: cfg.IsDevelopment(),
		Logger:             log,
	})

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("auth service stopped")
		}
	}()
	log.Info().Str("port", port).Str("env", cfg.Env).Msg("auth service running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
