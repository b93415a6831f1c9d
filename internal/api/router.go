package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursecompass/course-discovery/internal/api/handler"
	"github.com/coursecompass/course-discovery/internal/api/middleware"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

// AuthRouterConfig carries the explicitly constructed dependencies of the
// auth service; nothing is read from ambient globals.
type AuthRouterConfig struct {
	Auth       ports.AuthService
	JWTSecret  string
	CORSOrigin string
	// IncludeErrorDetail exposes raw error messages on 500s; development only.
	IncludeErrorDetail bool
	Logger             zerolog.Logger
}

// NewAuthRouter builds the Echo instance for the auth service.
func NewAuthRouter(cfg AuthRouterConfig) *echo.Echo {
	e := newEcho(cfg.CORSOrigin)
	e.HTTPErrorHandler = NewAuthErrorHandler(cfg.Logger, cfg.IncludeErrorDetail)

	h := handler.NewAuthHandler(cfg.Auth)

	e.GET("/", h.Describe)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/admin-only", h.AdminOnly, middleware.Auth(cfg.JWTSecret))
	e.GET("/auth/health", h.Health)

	return e
}

// RecommendationRouterConfig carries the recommendation service dependencies.
type RecommendationRouterConfig struct {
	Recommendations    ports.RecommendationService
	CORSOrigin         string
	IncludeErrorDetail bool
	Logger             zerolog.Logger
}

// NewRecommendationRouter builds the Echo instance for the recommendation
// service.
func NewRecommendationRouter(cfg RecommendationRouterConfig) *echo.Echo {
	e := newEcho(cfg.CORSOrigin)
	e.HTTPErrorHandler = NewAPIErrorHandler(cfg.Logger, cfg.IncludeErrorDetail)

	h := handler.NewRecommendationHandler(cfg.Recommendations)
	health := handler.NewHealthHandler()

	e.GET("/", h.Describe)
	e.POST("/api/recommendations", h.Generate)
	e.GET("/health", health.Liveness)

	return e
}

// CatalogRouterConfig carries the catalog service dependencies. DB, Redis and
// SearchUp feed the readiness probe; Redis may be nil and SearchUp false when
// the service runs degraded.
type CatalogRouterConfig struct {
	Catalog            ports.CatalogService
	DB                 *mongo.Database
	Redis              *redis.Client
	SearchUp           bool
	CORSOrigin         string
	IncludeErrorDetail bool
	Logger             zerolog.Logger
}

// NewCatalogRouter builds the Echo instance for the catalog service.
func NewCatalogRouter(cfg CatalogRouterConfig) *echo.Echo {
	e := newEcho(cfg.CORSOrigin)
	e.HTTPErrorHandler = NewAPIErrorHandler(cfg.Logger, cfg.IncludeErrorDetail)

	h := handler.NewCourseHandler(cfg.Catalog)
	health := handler.NewHealthHandler()
	readiness := handler.NewReadinessHandler(cfg.DB, cfg.Redis, cfg.SearchUp)

	e.GET("/", h.Describe)
	e.POST("/api/courses/upload", h.Upload)
	e.GET("/api/courses/search", h.Search)
	e.GET("/api/courses", h.List)
	e.GET("/api/courses/:id", h.Get)

	e.GET("/health", health.Liveness)
	e.GET("/health/ready", readiness.Readiness)

	return e
}

// newEcho applies the middleware stack shared by all three services.
func newEcho(corsOrigin string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{corsOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("discovery"))

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
