package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"user:password@tcp(localhost:3306)/smartparker?charset=utf8mb4&parseTime=True&loc=Local"`

	// Redis response cache. Empty address falls back to the in-process cache.
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Per-client rate limit for the whole API.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	SeedData bool `env:"SEED_DATA" envDefault:"false"`
}

func Load() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("Failed to parse configuration:", err)
	}
	return cfg
}
