package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/TN1ck/german-tax-id-validator/internal/constants"
)

var ErrDatabaseURIRequired = errors.New("DATABASE_URI is required")

// Config is filled from defaults, then flags, then environment variables.
type Config struct {
	RunAddr        string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
	Exclude2015    bool          `env:"EXCLUDE_ERA_2015"`
	Exclude2016    bool          `env:"EXCLUDE_ERA_2016"`
	MigrationsPath string        `env:"MIGRATIONS_PATH"`
}

func NewConfig(args []string) (*Config, error) {
	cfg := &Config{
		RunAddr:        constants.DefaultRunAddr,
		JWTSecret:      constants.DefaultJWTSecret,
		TokenTTL:       constants.DefaultTokenTTLHours * time.Hour,
		MigrationsPath: constants.DefaultMigrationsPath,
	}

	fs := flag.NewFlagSet("taxidserver", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")
	fs.BoolVar(&cfg.Exclude2015, "exclude-2015", cfg.Exclude2015, "reject tax-ids valid only under the 2015 rule")
	fs.BoolVar(&cfg.Exclude2016, "exclude-2016", cfg.Exclude2016, "reject tax-ids valid only under the 2016 rule")
	fs.StringVar(&cfg.MigrationsPath, "m", cfg.MigrationsPath, "migrations source URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DatabaseURI == "" {
		log.Printf("Error: DATABASE_URI is empty")
		return nil, ErrDatabaseURIRequired
	}

	if cfg.Exclude2015 && cfg.Exclude2016 {
		log.Printf("Both tax-id eras are excluded, every tax-id will be rejected")
	}

	log.Printf("Config loaded: RunAddr=%s, TokenTTL=%s, Exclude2015=%t, Exclude2016=%t",
		cfg.RunAddr, cfg.TokenTTL, cfg.Exclude2015, cfg.Exclude2016)
	return cfg, nil
}
