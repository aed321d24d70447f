// Package config loads the site configuration from the environment.
//
// .env files are read first, in this order of precedence:
//
//  1. the file named by ENV_FILE, if set (and nothing else)
//  2. .env.local
//  3. .env
//
// Variables already present in the environment are never overwritten.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the portfolio binary.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	ContentFile string `env:"PORTFOLIO_CONTENT_FILE"`
	OutDir      string `env:"PORTFOLIO_OUT_DIR" envDefault:"dist"`
	SiteTitle   string `env:"PORTFOLIO_SITE_TITLE"`
	Description string `env:"PORTFOLIO_SITE_DESCRIPTION"`

	Tracking  bool          `env:"PORTFOLIO_TRACKING" envDefault:"true"`
	DBPath    string        `env:"PORTFOLIO_DB_PATH" envDefault:"portfolio.db"`
	HashSalt  string        `env:"PORTFOLIO_HASH_SALT"`
	Retention time.Duration `env:"PORTFOLIO_RETENTION" envDefault:"8760h"`

	// CleanupInterval is how often rows past Retention are deleted while
	// serving.
	CleanupInterval time.Duration `env:"PORTFOLIO_CLEANUP_INTERVAL" envDefault:"24h"`

	// AdminToken enables the /admin routes when set.
	AdminToken string `env:"PORTFOLIO_ADMIN_TOKEN"`

	// TrustedProxies lists the proxy addresses or CIDRs allowed to set
	// X-Forwarded-For. Empty trusts no proxy.
	TrustedProxies []string `env:"PORTFOLIO_TRUSTED_PROXIES" envSeparator:","`

	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
	GinMode        string `env:"GIN_MODE"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env files and parses the environment.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would make the server misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.Retention <= 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_RETENTION must be positive, got %s", c.Retention))
	}
	if c.CleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_CLEANUP_INTERVAL must be positive, got %s", c.CleanupInterval))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	// godotenv keeps the first value it sees, so the local file goes first.
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}
