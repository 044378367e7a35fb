package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	CreatePass   string
	BaseURL      string
}

// ParseFlags validates flags and falls back to environment variables.
// A .env file in the working directory is loaded first, if present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("ars-canvas", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL for share links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CreatePass, "create-pass", "", "Room creation passphrase (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:ars.sqlite"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("ARS_BASE_URL")
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:3318"
		}
	}

	// Secrets - MUST be provided
	if cfg.CreatePass == "" {
		cfg.CreatePass = os.Getenv("ARS_CREATE_PASS")
	}
	if cfg.CreatePass == "" {
		return Config{}, errors.New("ARS_CREATE_PASS required")
	}

	return cfg, nil
}
