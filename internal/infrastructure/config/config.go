package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is shared by all three services; each binary reads the sections it
// needs. Port has no default here because the development default differs per
// service (auth 4000, recommendations 4001, catalog 4002) and is applied by
// the binary.
type Config struct {
	Port       string `env:"PORT"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:9002"`

	JWT           JWTConfig
	Mongo         MongoConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Gemini        GeminiConfig
}

// JWTConfig has no default secret. Development falls back to a throwaway
// value applied by the binary with a warning; everywhere else Validate
// refuses to start without an explicit secret.
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	Expiry time.Duration `env:"JWT_EXPIRY, default=4h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_discovery"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ElasticsearchConfig struct {
	URL string `env:"ELASTICSEARCH_URL, default=http://localhost:9200"`
}

// GeminiConfig carries no default credential. Simulation is an explicit mode,
// not an implicit fallback for a missing key.
type GeminiConfig struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	Model      string `env:"GEMINI_MODEL, default=gemini-2.0-flash"`
	Simulation bool   `env:"AI_SIMULATION, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate enforces that non-development deployments configure their secrets
// explicitly instead of shipping development defaults.
func (c *Config) Validate() error {
	if !c.IsDevelopment() && c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must be set outside development")
	}
	return nil
}

// ValidateRecommender enforces the explicit-mode rule for the recommendation
// service: run against Gemini with a real key, or run in declared simulation
// mode. Never both unset.
func (c *Config) ValidateRecommender() error {
	if c.Gemini.APIKey == "" && !c.Gemini.Simulation {
		return errors.New("set GEMINI_API_KEY or explicitly enable AI_SIMULATION")
	}
	return nil
}
