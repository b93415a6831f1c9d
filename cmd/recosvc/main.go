// Command recosvc runs the AI recommendation service. It requires either a
// Gemini API key or an explicitly enabled simulation mode; there is no
// implicit fallback credential.
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
	"github.com/coursecompass/course-discovery/internal/infrastructure/ai"
	"github.com/coursecompass/course-discovery/internal/infrastructure/config"
	"github.com/coursecompass/course-discovery/pkg/logger"
)

const defaultPort = "4001"

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	if err := cfg.ValidateRecommender(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	port := cfg.Port
	if port == "" {
		port = defaultPort
	}

	var recommender ports.Recommender
	if cfg.Gemini.Simulation {
		log.Warn().Msg("AI_SIMULATION enabled, serving deterministic recommendations")
	} else {
		recommender, err = ai.NewGeminiRecommender(ctx, ai.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialise gemini client")
		}
	}

	e := api.NewRecommendationRouter(api.RecommendationRouterConfig{
		Recommendations:    service.NewRecommendationService(recommender, cfg.Gemini.Simulation, log),
		CORSOrigin:         cfg.CORSOrigin,
		IncludeErrorDetail: cfg.IsDevelopment(),
		Logger:             log,
	})

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("recommendation service stopped")
		}
	}()
	log.Info().Str("port", port).Str("env", cfg.Env).Bool("simulation", cfg.Gemini.Simulation).Msg("recommendation service running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
