package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StartingBalance is the balance granted to newly registered users.
	// Kept as a string so the decimal parse is explicit.
	StartingBalance string `env:"STARTING_BALANCE, default=0"`

	// SweepInterval controls how often the maturity sweep runs.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL, default=1h"`

	// Seed admin credentials. Leave AdminPassword empty to skip seeding.
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Redis RedisConfig
}

// RedisConfig is optional: an empty Addr disables Redis and falls back to
// the in-process idempotency store.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ParsedStartingBalance returns StartingBalance as a decimal, or an error
// when the env value is not a valid number.
func (c *Config) ParsedStartingBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.StartingBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: invalid STARTING_BALANCE %q: %w", c.StartingBalance, err)
	}
	return d, nil
}
