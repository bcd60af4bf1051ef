package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	SessionSecret string `env:"SESSION_SECRET"`

	Upstream UpstreamConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type UpstreamConfig struct {
	// BaseURL is the lending-platform API host; the client appends /api/v1.
	BaseURL string `env:"UPSTREAM_BASE_URL, default=http://localhost:4000"`
	// Timeout of 0 means no client timeout, matching the browser client
	// this gateway replaced. Set it in production.
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT, default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=admin_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
