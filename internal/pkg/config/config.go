package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	AdminAddr  string `env:"ADMIN_ADDR" envDefault:":9091"`

	// Reference data comes either from flat files or from Postgres.
	RegistryFile string `env:"REGISTRY_FILE"`
	CreditFile   string `env:"CREDIT_FILE"`
	PostgresURL  string `env:"POSTGRES_URL"`

	// Optional Redis result cache.
	RedisAddr string        `env:"REDIS_ADDR"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	MaxBodySize    int64         `env:"MAX_BODY_SIZE_BYTES" envDefault:"65536"` // 64KB
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL" envDefault:"0"` // 0 disables periodic reload

	// Strict domain validation variant (off by default).
	StrictDomainCheck bool          `env:"STRICT_DOMAIN_CHECK" envDefault:"false"`
	SuffixListURL     string        `env:"SUFFIX_LIST_URL" envDefault:"https://publicsuffix.org/list/public_suffix_list.dat"`
	SuffixListTimeout time.Duration `env:"SUFFIX_LIST_TIMEOUT" envDefault:"3s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.PostgresURL == "" && (cfg.RegistryFile == "" || cfg.CreditFile == "") {
		return nil, errors.New("no reference source configured: set POSTGRES_URL or both REGISTRY_FILE and CREDIT_FILE")
	}

	return cfg, nil
}
