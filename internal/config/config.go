// Package config loads runtime configuration from the environment.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the API server.
type Config struct {
	Addr         string        `env:"ADDR,default=:8080"`
	DatabaseURL  string        `env:"DATABASE_URL,required"`
	JWTSecretKey string        `env:"JWT_SECRET_KEY,required"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,default=24h"`
	Env          string        `env:"ENV,default=development"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
